package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapper/internal/platform/tui"
	"github.com/vovakirdan/flapper/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKeyPath string
	flagIdleTimeout time.Duration
	flagMaxSessions int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server that lets users play flapper remotely.

Each connection gets its own game. Scores are recorded under the SSH
user name in the shared database. Remote sessions have no sound.

Examples:
  flapper serve
  flapper serve --ssh :2222
  flapper serve --ssh 0.0.0.0:23234 --host-key /etc/flapper/host_key

Connect with:
  ssh -p 23234 localhost`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	defaults := tui.DefaultServeConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Addr, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKeyPath, "host-key", "", "Path to host key (default: ~/.flapper/host_key)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", defaults.IdleTimeout, "Close idle connections after this long")
	serveCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", defaults.MaxSessions, "Refuse players beyond this many (0 = unlimited)")
}

func runServe(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)
	logger.SetPrefix("flapper-ssh")
	cfg := loadConfig(logger)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be kept", "path", flagDBPath, "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	srv, err := tui.NewServer(tui.ServeConfig{
		Addr:        flagSSHAddr,
		HostKey:     flagHostKeyPath,
		IdleTimeout: flagIdleTimeout,
		TPS:         flagFPS,
		MaxSessions: flagMaxSessions,
	}, cfg, store, logger)
	if err != nil {
		fail("creating SSH server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("flapper SSH server", "address", srv.Addr(), "connect", "ssh -p <port> <host>")
	if err := srv.Serve(ctx); err != nil {
		logger.Error("server error", "err", err)
		stop()
		os.Exit(1)
	}
}
