package desktop

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
	"github.com/vovakirdan/flapper/internal/game"
)

const (
	bobHeight   = 8   // pixels the start-screen title travels
	bobDuration = 0.9 // seconds per half cycle
)

// Options configures the window front end.
type Options struct {
	Game   config.Config
	Seed   int64
	TPS    int // overrides Game.Screen.FPS when positive
	Deps   game.Collaborators
	Logger *log.Logger
}

// Window is the ebiten.Game that runs one flapper machine.
type Window struct {
	machine  *game.Machine
	renderer *renderer
	cfg      config.Config
	tps      int
	logger   *log.Logger

	bob     *gween.Tween
	bobUp   bool
	lastWas game.State
}

var _ ebiten.Game = (*Window)(nil)

// NewWindow creates the window game and loads its sprites.
func NewWindow(opts Options) *Window {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	tps := opts.TPS
	if tps <= 0 {
		tps = opts.Game.Screen.FPS
	}

	return &Window{
		machine:  game.NewMachine(opts.Game, seed, opts.Deps),
		renderer: newRenderer(LoadSprites(opts.Game.AssetsDir, logger), opts.Game),
		cfg:      opts.Game,
		tps:      tps,
		logger:   logger,
		bob:      gween.New(0, bobHeight, bobDuration, ease.InOutSine),
		bobUp:    true,
	}
}

// pollInput collects the actions triggered since the previous tick.
func pollInput() core.InputFrame {
	in := core.NewInputFrame()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		in.Set(core.ActionFlap)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		in.Set(core.ActionConfirm)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Set(core.ActionPointer)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) ||
		ebiten.IsWindowBeingClosed() {
		in.Set(core.ActionQuit)
	}
	return in
}

// Update advances the machine one tick.
func (w *Window) Update() error {
	res := w.machine.Step(pollInput())
	if res.Quit {
		return ebiten.Termination
	}

	if res.State != w.lastWas {
		w.logger.Debug("state changed", "from", w.lastWas, "to", res.State, "score", res.Score)
		w.lastWas = res.State
	}

	w.updateBob()
	return nil
}

// updateBob runs the title tween back and forth while on the start screen.
func (w *Window) updateBob() {
	if w.machine.State() != game.StateStart {
		w.renderer.titleOffset = 0
		return
	}

	offset, done := w.bob.Update(1 / float32(w.tps))
	w.renderer.titleOffset = float64(offset)
	if done {
		if w.bobUp {
			w.bob = gween.New(bobHeight, 0, bobDuration, ease.InOutSine)
		} else {
			w.bob = gween.New(0, bobHeight, bobDuration, ease.InOutSine)
		}
		w.bobUp = !w.bobUp
	}
}

// Draw renders the current state.
func (w *Window) Draw(screen *ebiten.Image) {
	w.renderer.target = screen
	w.machine.Render(w.renderer)
}

// Layout keeps the world resolution regardless of the window size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.cfg.Screen.Width, w.cfg.Screen.Height
}

// Run opens the window and blocks until the player quits.
func Run(opts Options) error {
	w := NewWindow(opts)

	ebiten.SetWindowSize(opts.Game.Screen.Width, opts.Game.Screen.Height)
	ebiten.SetWindowTitle("Flappy Bird")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(w.tps)

	return ebiten.RunGame(w)
}
