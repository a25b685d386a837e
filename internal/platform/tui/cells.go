package tui

import (
	"math"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
	"github.com/vovakirdan/flapper/internal/game"
)

// groundStripe is the spacing of the ground pattern lines in world pixels.
const groundStripe = 50

// cloud is a background decoration in world pixels.
type cloud struct {
	x, y int
	text string
}

var clouds = []cloud{
	{x: 60, y: 70, text: ".-~~~-."},
	{x: 330, y: 130, text: ".-~~-."},
	{x: 560, y: 40, text: ".-~~~~-."},
	{x: 720, y: 190, text: ".~~."},
}

// CellRenderer draws world-pixel commands onto a terminal Screen,
// scaling the world down to the screen's cell grid.
type CellRenderer struct {
	screen  *core.Screen
	worldW  int
	worldH  int
	groundY int
}

var _ game.Renderer = (*CellRenderer)(nil)

// NewCellRenderer creates a renderer for the world size in cfg.
func NewCellRenderer(screen *core.Screen, cfg config.Config) *CellRenderer {
	return &CellRenderer{
		screen:  screen,
		worldW:  cfg.Screen.Width,
		worldH:  cfg.Screen.Height,
		groundY: cfg.GroundY(),
	}
}

// col maps a world x to a cell column, rounding down.
func (c *CellRenderer) col(x int) int {
	return floorDiv(x*c.screen.Width(), c.worldW)
}

// row maps a world y to a cell row, rounding down.
func (c *CellRenderer) row(y int) int {
	return floorDiv(y*c.screen.Height(), c.worldH)
}

// cells maps a world rect to the cells it covers. A non-empty rect always
// covers at least one cell so small sprites stay visible.
func (c *CellRenderer) cells(r core.Rect) core.Rect {
	x0, y0 := c.col(r.X), c.row(r.Y)
	x1 := ceilDiv(r.Right()*c.screen.Width(), c.worldW)
	y1 := ceilDiv(r.Bottom()*c.screen.Height(), c.worldH)
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

// DrawBackground fills the sky and draws clouds scrolling at half speed.
func (c *CellRenderer) DrawBackground(scroll float64) {
	c.screen.Fill(' ', core.ColorSky)

	span := c.worldW + 200
	shift := int(math.Mod(scroll*0.5, float64(span)))
	for _, cl := range clouds {
		x := (cl.x-shift+span)%span - 100
		c.screen.Text(c.col(x), c.row(cl.y), cl.text, core.ColorCloud)
	}
}

// DrawGround draws the ground band with pattern lines every 50 world
// pixels, offset by the scroll.
func (c *CellRenderer) DrawGround(scroll float64) {
	top := c.row(c.groundY)
	height := c.screen.Height() - top
	if height <= 0 {
		return
	}

	c.screen.FillRect(core.NewRect(0, top, c.screen.Width(), height), '▒', core.ColorGround)
	c.screen.HLine(0, top, c.screen.Width(), '▀', core.ColorGroundLine)

	offset := int(math.Mod(scroll, groundStripe))
	for x := -offset; x < c.worldW; x += groundStripe {
		c.screen.VLine(c.col(x), top+1, height-1, '|', core.ColorGroundLine)
	}
}

// DrawObstacle draws both walls of an obstacle with a lip at the gap.
func (c *CellRenderer) DrawObstacle(top, bottom core.Rect) {
	if !top.Empty() {
		r := c.cells(top)
		c.screen.FillRect(r, '█', core.ColorPipe)
		c.screen.HLine(r.X, r.Bottom()-1, r.W, '▀', core.ColorPipeEdge)
	}
	if !bottom.Empty() {
		r := c.cells(bottom)
		c.screen.FillRect(r, '█', core.ColorPipe)
		c.screen.HLine(r.X, r.Y, r.W, '▄', core.ColorPipeEdge)
	}
}

// DrawEnemy draws an enemy.
func (c *CellRenderer) DrawEnemy(r core.Rect) {
	c.screen.FillRect(c.cells(r), '▓', core.ColorEnemy)
}

// DrawPlayer draws the player with an eye facing right.
func (c *CellRenderer) DrawPlayer(r core.Rect) {
	cr := c.cells(r)
	c.screen.FillRect(cr, '█', core.ColorPlayer)
	if cr.W > 1 {
		c.screen.Put(cr.Right()-1, cr.Y, 'o', core.ColorText)
	}
}

// DrawText draws one line of text. Size only selects the color; the
// terminal has one font.
func (c *CellRenderer) DrawText(t game.Text) {
	color := core.ColorText
	if t.Size >= game.SizeTitle {
		color = core.ColorTitle
	}

	y := c.row(t.Y)
	if t.Centered {
		c.screen.TextCentered(c.col(t.X), y, t.Content, color)
		return
	}
	c.screen.Text(c.col(t.X), y, t.Content, color)
}
