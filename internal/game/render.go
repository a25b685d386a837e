package game

import "fmt"

// Font sizes used by the screens.
const (
	SizeTitle   = 72
	SizeLarge   = 48
	SizeMedium  = 36
	SizeBody    = 32
	SizeCaption = 28
)

// Render issues the draw commands for the current state.
func (m *Machine) Render(r Renderer) {
	w, h := m.cfg.Screen.Width, m.cfg.Screen.Height

	switch m.state {
	case StateStart:
		r.DrawBackground(0)
		r.DrawGround(0)
		r.DrawText(Text{Content: "FLAPPY BIRD", Size: SizeTitle, X: w / 2, Y: h / 3, Centered: true})
		r.DrawText(Text{Content: "Press SPACE or Click to Start", Size: SizeMedium, X: w / 2, Y: h / 2, Centered: true})
		r.DrawText(Text{Content: "Use SPACE to Flap", Size: SizeCaption, X: w / 2, Y: h/2 + 60, Centered: true})

	case StatePlaying, StateGameOverInline:
		m.renderField(r)
		if m.state == StateGameOverInline {
			r.DrawText(Text{Content: "GAME OVER", Size: SizeTitle, X: w / 2, Y: h / 2, Centered: true})
			r.DrawText(Text{Content: "Press SPACE to Continue", Size: SizeBody, X: w / 2, Y: h/2 + 60, Centered: true})
		}

	case StateGameOverScreen:
		r.DrawBackground(0)
		r.DrawGround(0)
		r.DrawText(Text{Content: "GAME OVER", Size: SizeTitle, X: w / 2, Y: h / 3, Centered: true})
		r.DrawText(Text{Content: fmt.Sprintf("Score: %d", m.Score()), Size: SizeLarge, X: w / 2, Y: h / 2, Centered: true})
		r.DrawText(Text{Content: fmt.Sprintf("High Score: %d", m.highScore), Size: SizeMedium, X: w / 2, Y: h/2 + 60, Centered: true})
		r.DrawText(Text{Content: "Press SPACE to Play Again", Size: SizeCaption, X: w / 2, Y: h/2 + 120, Centered: true})
	}
}

// renderField draws the play area and the HUD.
func (m *Machine) renderField(r Renderer) {
	s := m.session
	r.DrawBackground(s.Scroll())

	for _, o := range s.Obstacles() {
		r.DrawObstacle(o.TopRect(), o.BottomRect())
	}
	for _, e := range s.Enemies() {
		r.DrawEnemy(e.Rect())
	}
	r.DrawPlayer(s.Player().Rect())

	r.DrawGround(s.Scroll())

	r.DrawText(Text{Content: fmt.Sprintf("Score: %d", s.Score()), Size: SizeMedium, X: 100, Y: 30})
	r.DrawText(Text{Content: fmt.Sprintf("High: %d", m.highScore), Size: SizeCaption, X: 100, Y: 65})
}
