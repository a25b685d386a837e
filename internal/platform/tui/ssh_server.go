package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
	"github.com/vovakirdan/flapper/internal/game"
	"github.com/vovakirdan/flapper/internal/storage"
)

const shutdownGrace = 10 * time.Second

// ServeConfig configures remote play over SSH.
type ServeConfig struct {
	Addr string // host:port

	// HostKey is the server key file, generated on first start when
	// missing. Empty means ~/.flapper/host_key.
	HostKey string

	IdleTimeout time.Duration
	TPS         int // overrides the game's frame rate when positive
	MaxSessions int // 0 means unlimited
}

// DefaultServeConfig listens on :23234 and drops idle players after half
// an hour.
func DefaultServeConfig() ServeConfig {
	return ServeConfig{
		Addr:        ":23234",
		IdleTimeout: 30 * time.Minute,
		MaxSessions: 64,
	}
}

// Server runs one game per SSH connection. Sessions share the score store
// and record games under their SSH user name.
type Server struct {
	cfg    ServeConfig
	game   config.Config
	store  *storage.Store
	logger *log.Logger
	ssh    *ssh.Server
	active atomic.Int32
}

// NewServer prepares the SSH server. store may be nil; games then keep
// their high score only for the length of the connection.
func NewServer(cfg ServeConfig, gameCfg config.Config, store *storage.Store, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.HostKey == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("tui: no host key path and no home directory: %w", err)
		}
		cfg.HostKey = filepath.Join(home, ".flapper", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.HostKey), 0o700); err != nil {
		return nil, fmt.Errorf("tui: host key directory: %w", err)
	}

	s := &Server{cfg: cfg, game: gameCfg, store: store, logger: logger}

	// The last middleware runs first.
	srv, err := wish.NewServer(
		wish.WithAddress(cfg.Addr),
		wish.WithHostKeyPath(cfg.HostKey),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			activeterm.Middleware(),
			s.admit,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: ssh server: %w", err)
	}
	s.ssh = srv
	return s, nil
}

// admit turns players away once MaxSessions are connected and logs the
// rest in and out.
func (s *Server) admit(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		n := s.active.Add(1)
		defer s.active.Add(-1)

		l := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		if s.cfg.MaxSessions > 0 && int(n) > s.cfg.MaxSessions {
			l.Warn("session refused, server full", "active", n-1)
			wish.Fatalln(sess, "flapper: server is full, try again later")
			return
		}

		start := time.Now()
		l.Info("session started", "active", n)
		next(sess)
		l.Info("session ended", "played", time.Since(start).Round(time.Second))
	}
}

// newSession builds the game for one connection. activeterm has already
// rejected sessions without a pty.
func (s *Server) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	opts := s.sessionOptions(sess.User(), pty.Window.Width, pty.Window.Height)
	return NewModel(opts), []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
}

// sessionOptions configures a silent game for user. Remote players cannot
// write screenshots on the server.
func (s *Server) sessionOptions(user string, cols, rows int) Options {
	logger := s.logger.With("user", user)
	deps := game.Collaborators{Audio: game.NopAudio{}}
	if s.store != nil {
		scores := storage.NewScores(s.store, user, logger)
		deps.Scores, deps.Recorder = scores, scores
	}
	return Options{
		Game:    s.game,
		Runtime: core.Runtime{Cols: cols, Rows: rows, TPS: s.cfg.TPS},
		Deps:    deps,
		Logger:  logger,
	}
}

// Serve accepts connections until ctx is done, then gives running games a
// grace period to finish.
func (s *Server) Serve(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errc <- s.ssh.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("tui: ssh server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "active", s.active.Load())
	sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := s.ssh.Shutdown(sctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("tui: ssh shutdown: %w", err)
	}
	return nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.cfg.Addr
}

// Active returns the number of connected sessions.
func (s *Server) Active() int {
	return int(s.active.Load())
}
