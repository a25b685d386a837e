package desktop

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
	"github.com/vovakirdan/flapper/internal/game"
)

var (
	skyBlue    = color.RGBA{135, 206, 235, 255}
	pipeGreen  = color.RGBA{34, 139, 34, 255}
	pipeBorder = color.RGBA{0, 100, 0, 255}
	groundFill = color.RGBA{139, 69, 19, 255}
	groundLine = color.RGBA{101, 67, 33, 255}
	textShadow = color.RGBA{0, 0, 0, 160}
)

const (
	groundStripe = 50

	// Glyph size of the debug font.
	glyphW = 6
	glyphH = 16

	// maxCachedTexts bounds the text image cache; HUD lines change with
	// every point scored.
	maxCachedTexts = 64
)

// renderer draws world-pixel commands onto an Ebiten image. The world and
// the window share one coordinate space.
type renderer struct {
	target  *ebiten.Image
	sprites Sprites
	cfg     config.Config
	texts   map[string]*ebiten.Image

	// titleOffset shifts title-sized text vertically (start screen bob).
	titleOffset float64
}

var _ game.Renderer = (*renderer)(nil)

func newRenderer(sprites Sprites, cfg config.Config) *renderer {
	return &renderer{
		sprites: sprites,
		cfg:     cfg,
		texts:   make(map[string]*ebiten.Image),
	}
}

// drawImage scales img to cover the rect at (x, y, w, h).
func (r *renderer) drawImage(img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	r.target.DrawImage(img, op)
}

// DrawBackground tiles the background image, scrolled at half speed.
func (r *renderer) DrawBackground(scroll float64) {
	w, h := float64(r.cfg.Screen.Width), float64(r.cfg.Screen.Height)
	r.target.Fill(skyBlue)

	bgX := math.Mod(-scroll*0.5, w)
	if bgX < 0 {
		bgX += w
	}
	for _, x := range []float64{bgX - w, bgX, bgX + w} {
		r.drawImage(r.sprites.Background, x, 0, w, h)
	}
}

// DrawGround fills the ground band and draws its pattern lines.
func (r *renderer) DrawGround(scroll float64) {
	w, h := float32(r.cfg.Screen.Width), float32(r.cfg.Screen.Height)
	top := float32(r.cfg.GroundY())

	vector.DrawFilledRect(r.target, 0, top, w, h-top, groundFill, false)

	offset := int(scroll) % groundStripe
	for i := -1; i < r.cfg.Screen.Width/groundStripe+2; i++ {
		x := float32(i*groundStripe - offset)
		vector.StrokeLine(r.target, x, top, x, h, 2, groundLine, false)
	}
}

// DrawObstacle draws both walls with a dark border.
func (r *renderer) DrawObstacle(top, bottom core.Rect) {
	for _, rect := range []core.Rect{top, bottom} {
		if rect.Empty() {
			continue
		}
		x, y := float32(rect.X), float32(rect.Y)
		w, h := float32(rect.W), float32(rect.H)
		vector.DrawFilledRect(r.target, x, y, w, h, pipeGreen, false)
		vector.StrokeRect(r.target, x+1.5, y+1.5, w-3, h-3, 3, pipeBorder, false)
	}
}

// DrawEnemy draws the enemy sprite.
func (r *renderer) DrawEnemy(rect core.Rect) {
	r.drawImage(r.sprites.Enemy, float64(rect.X), float64(rect.Y), float64(rect.W), float64(rect.H))
}

// DrawPlayer draws the player sprite.
func (r *renderer) DrawPlayer(rect core.Rect) {
	r.drawImage(r.sprites.Player, float64(rect.X), float64(rect.Y), float64(rect.W), float64(rect.H))
}

// DrawText draws text with the debug font, scaled to approximate the
// requested size.
func (r *renderer) DrawText(t game.Text) {
	img := r.textImage(t.Content)
	scale := float64(t.Size) / 24
	if scale < 1 {
		scale = 1
	}
	w := float64(img.Bounds().Dx()) * scale
	h := float64(img.Bounds().Dy()) * scale

	x, y := float64(t.X), float64(t.Y)
	if t.Centered {
		x -= w / 2
		y -= h / 2
	}
	if t.Size >= game.SizeTitle {
		y += r.titleOffset
	}

	// Shadow first so white text reads on the sky
	shadow := &ebiten.DrawImageOptions{}
	shadow.GeoM.Scale(scale, scale)
	shadow.GeoM.Translate(x+scale, y+scale)
	shadow.ColorScale.ScaleWithColor(textShadow)
	r.target.DrawImage(img, shadow)

	r.drawImage(img, x, y, w, h)
}

// textImage returns an unscaled image of s, cached by content.
func (r *renderer) textImage(s string) *ebiten.Image {
	if img, ok := r.texts[s]; ok {
		return img
	}
	if len(r.texts) >= maxCachedTexts {
		for k, img := range r.texts {
			img.Deallocate()
			delete(r.texts, k)
		}
	}

	img := ebiten.NewImage(max(len(s)*glyphW, 1), glyphH)
	ebitenutil.DebugPrintAt(img, s, 0, 0)
	r.texts[s] = img
	return img
}
