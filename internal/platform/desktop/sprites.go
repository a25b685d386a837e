// Package desktop runs flapper in an 800x600 window with Ebiten.
package desktop

import (
	"image/color"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// missingColor marks sprites whose file could not be loaded.
var missingColor = color.RGBA{255, 0, 255, 255}

// Sprites holds the images drawn by the window front end.
type Sprites struct {
	Background *ebiten.Image
	Player     *ebiten.Image
	Enemy      *ebiten.Image
}

// LoadSprites reads background.png, player.png and enemy.png from dir.
// A file that cannot be read is replaced by a magenta placeholder and
// logged; loading never fails.
func LoadSprites(dir string, logger *log.Logger) Sprites {
	return Sprites{
		Background: loadImage(filepath.Join(dir, "background.png"), logger),
		Player:     loadImage(filepath.Join(dir, "player.png"), logger),
		Enemy:      loadImage(filepath.Join(dir, "enemy.png"), logger),
	}
}

func loadImage(path string, logger *log.Logger) *ebiten.Image {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		logger.Warn("cannot load sprite, using placeholder", "path", path, "err", err)
		return placeholder()
	}
	return img
}

// placeholder is a 1x1 magenta image; draws scale it to the target rect.
func placeholder() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(missingColor)
	return img
}
