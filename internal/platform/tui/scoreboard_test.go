package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func seedScores(t *testing.T, store *storage.Store) {
	t.Helper()
	for _, g := range []struct {
		player string
		score  int
	}{{"alice", 3}, {"bob", 9}, {"alice", 5}} {
		_, err := store.SaveScore(g.player, g.score)
		require.NoError(t, err)
	}
}

func board(t *testing.T, m tea.Model, msg tea.Msg) (Scoreboard, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	b, ok := next.(Scoreboard)
	require.True(t, ok, "Update returned %T", next)
	return b, cmd
}

// loaded runs the pending load command and feeds its result back.
func loaded(t *testing.T, b Scoreboard, cmd tea.Cmd) Scoreboard {
	t.Helper()
	require.NotNil(t, cmd)
	b, _ = board(t, b, cmd())
	return b
}

func TestScoreboardTop(t *testing.T) {
	store := openStore(t)
	seedScores(t, store)

	b := NewScoreboard(store, "alice", 80, 24)
	assert.Contains(t, b.View(), "loading...")

	b = loaded(t, b, b.Init())
	view := b.View()
	assert.Contains(t, view, "top scores")
	assert.Contains(t, view, "bob")
	assert.Contains(t, view, "games 3")
	assert.Contains(t, view, "best 9")

	rows := b.table.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"1", "9", "bob"}, []string(rows[0][:3]))
}

func TestScoreboardSwitchToRecent(t *testing.T) {
	store := openStore(t)
	seedScores(t, store)

	b := NewScoreboard(store, "alice", 80, 24)
	first := b.Init()

	b, cmd := board(t, b, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, listRecent, b.list)

	// The top listing finishing late must not overwrite the recent one.
	b, _ = board(t, b, first())
	assert.Contains(t, b.View(), "loading...")

	b = loaded(t, b, cmd)
	rows := b.table.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "5", rows[0][1], "newest game first")
	assert.Equal(t, "3", rows[1][1])
	assert.Contains(t, b.View(), "of alice")
}

func TestScoreboardRefresh(t *testing.T) {
	store := openStore(t)
	b := NewScoreboard(store, "alice", 80, 24)
	b = loaded(t, b, b.Init())
	assert.Contains(t, b.View(), "No games recorded yet")

	seedScores(t, store)
	b, cmd := board(t, b, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	b = loaded(t, b, cmd)
	assert.Len(t, b.table.Rows(), 3)
}

func TestScoreboardWithoutStore(t *testing.T) {
	b := NewScoreboard(nil, storage.LocalPlayer, 40, 10)
	b = loaded(t, b, b.Init())
	assert.Contains(t, b.View(), "No games recorded yet")
}

func TestScoreboardReadError(t *testing.T) {
	store := openStore(t)
	b := NewScoreboard(store, "alice", 80, 24)
	cmd := b.Init()
	store.Close()

	b = loaded(t, b, cmd)
	assert.Contains(t, b.View(), "could not read scores")
}

func TestScoreboardQuitAndResize(t *testing.T) {
	b := NewScoreboard(nil, "alice", 80, 24)

	b, _ = board(t, b, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, b.width)
	assert.Equal(t, 40, b.height)

	_, cmd := board(t, b, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.True(t, isQuit(cmd))
}

func TestServerSessionOptions(t *testing.T) {
	store := openStore(t)
	srv, err := NewServer(ServeConfig{
		Addr:    "127.0.0.1:0",
		HostKey: filepath.Join(t.TempDir(), "keys", "host_key"),
		TPS:     30,
	}, config.DefaultConfig(), store, nil)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", srv.Addr())
	assert.Zero(t, srv.Active())

	opts := srv.sessionOptions("carol", 100, 30)
	assert.Equal(t, 100, opts.Runtime.Cols)
	assert.Equal(t, 30, opts.Runtime.TPS)
	assert.Empty(t, opts.ScreenshotDir)

	scores, ok := opts.Deps.Scores.(*storage.Scores)
	require.True(t, ok, "scores backed by the shared store")
	assert.Equal(t, "carol", scores.Player())

	opts.Deps.Recorder.Record(4)
	games, err := store.PlayerScores("carol", 10)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, 4, games[0].Score)
}

func TestServerWithoutStore(t *testing.T) {
	srv, err := NewServer(ServeConfig{
		Addr:    "127.0.0.1:0",
		HostKey: filepath.Join(t.TempDir(), "host_key"),
	}, config.DefaultConfig(), nil, nil)
	require.NoError(t, err)

	opts := srv.sessionOptions("dave", 80, 24)
	assert.Nil(t, opts.Deps.Scores)
	assert.Nil(t, opts.Deps.Recorder)

	// A plain model still starts; the machine falls back to memory scores.
	m := NewModel(opts)
	assert.True(t, strings.Contains(m.View(), "FLAPPY BIRD"))
}

func TestServerServeStopsOnCancel(t *testing.T) {
	srv, err := NewServer(ServeConfig{
		Addr:    "127.0.0.1:0",
		HostKey: filepath.Join(t.TempDir(), "host_key"),
	}, config.DefaultConfig(), nil, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, srv.Serve(ctx))
}
