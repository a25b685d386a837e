package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
	"github.com/vovakirdan/flapper/internal/game"
)

func newTestModel(t *testing.T, scores *game.MemoryScores) Model {
	t.Helper()
	var deps game.Collaborators
	if scores != nil {
		deps.Scores = scores
	}
	return NewModel(Options{
		Game:          config.DefaultConfig(),
		Runtime:       core.Runtime{Cols: 80, Rows: 24, TPS: 60, Seed: 1},
		Deps:          deps,
		ScreenshotDir: t.TempDir(),
	})
}

// send feeds msg to the model and returns the updated model and command.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyQuit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	keyShot  = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func TestModelStartInputs(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
	}{
		{"space", keySpace},
		{"enter", keyEnter},
		{"mouse", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, nil)
			m, _ = send(t, m, tt.msg)
			m, cmd := send(t, m, TickMsg{})

			if got := m.Machine().State(); got != game.StatePlaying {
				t.Errorf("state = %v, expected playing", got)
			}
			if cmd == nil {
				t.Error("tick should schedule the next tick")
			}
		})
	}
}

func TestModelMouseReleaseIgnored(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = send(t, m, TickMsg{})

	if got := m.Machine().State(); got != game.StateStart {
		t.Errorf("state = %v, expected start", got)
	}
}

func TestModelInputClearedAfterTick(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, keyEnter)
	m, _ = send(t, m, TickMsg{})
	m, _ = send(t, m, TickMsg{})

	if m.Machine().Session().Player().Started {
		t.Error("enter must not carry over into a flap")
	}
}

func TestModelQuitIsImmediate(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := send(t, m, keyQuit)

	if !isQuit(cmd) {
		t.Fatal("q should quit without waiting for a tick")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.Screen().Width() != 100 || m.Screen().Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.Screen().Width(), m.Screen().Height())
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, &game.MemoryScores{High: 12})
	view := m.View()

	if !strings.Contains(view, "FLAPPY BIRD") {
		t.Error("start screen should show the title")
	}
	if !strings.Contains(view, "flap") {
		t.Error("footer should show key help")
	}

	m, _ = send(t, m, keySpace)
	m, _ = send(t, m, TickMsg{})
	if view := m.View(); !strings.Contains(view, "High: 12") {
		t.Error("HUD should show the stored high score")
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := send(t, m, keyShot)
	if cmd != nil {
		t.Error("screenshot should not schedule a command")
	}

	entries, err := os.ReadDir(m.shotDir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 screenshot, got %d", len(entries))
	}
	if !strings.HasPrefix(entries[0].Name(), "flapper_") {
		t.Errorf("unexpected screenshot name %q", entries[0].Name())
	}

	data, err := os.ReadFile(m.shotDir + "/" + entries[0].Name())
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "FLAPPY BIRD") {
		t.Error("screenshot should contain the start screen")
	}
	if !strings.Contains(m.View(), "saved flapper_") {
		t.Error("footer should confirm the screenshot")
	}
}

func TestKeyMapActions(t *testing.T) {
	k := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{keySpace, core.ActionFlap},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlap},
		{keyEnter, core.ActionConfirm},
		{keyQuit, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{keyShot, core.ActionNone},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone},
	}

	for _, tt := range tests {
		if got := k.Action(tt.msg); got != tt.want {
			t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}
