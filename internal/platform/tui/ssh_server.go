package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/wasteland-flyer/internal/config"
	"github.com/vovakirdan/wasteland-flyer/internal/core"
	"github.com/vovakirdan/wasteland-flyer/internal/storage"
)

// shutdownGrace bounds how long open sessions get to finish on shutdown.
const shutdownGrace = 10 * time.Second

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Address     string        // host:port, e.g. ":23234"
	HostKeyPath string        // Empty means ~/.flyer/host_key, generated on first start
	DBPath      string        // Shared best score and round history
	IdleTimeout time.Duration // Idle sessions are closed after this long
	TickRate    int           // Simulation rate for every session
	Flyer       config.FlyerConfig
}

// DefaultSSHServerConfig returns the settings used by `flyer serve`.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.flyer/flyer.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    core.DefaultTickRate,
		Flyer:       config.DefaultFlyerConfig(),
	}
}

// SSHServer hosts one flyer round per SSH session.
// Sessions never share an engine; they share the best score and the round history.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	store   *storage.Store
	logger  *log.Logger
	pilots  atomic.Int64
	started time.Time
}

// NewSSHServer prepares the server. A nil logger gets a default stderr logger.
// A database that cannot be opened only disables persistence.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "flyer-ssh",
		})
	}
	if err := cfg.Flyer.Validate(); err != nil {
		return nil, err
	}

	hostKeyPath, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{config: cfg, logger: logger}

	srv.store, err = storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("rounds will not be saved", "db", cfg.DBPath, "error", err)
		srv.store = nil
	}

	srv.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.requirePTY,
			srv.trackPilots,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	return srv, nil
}

// resolveHostKey returns the key path and makes sure its directory exists.
func resolveHostKey(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".flyer", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// teaHandler builds the model for one session, sized to its PTY.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	pilot := sess.User()

	model := NewModel(Options{
		Config: s.config.Flyer,
		Runtime: core.RuntimeConfig{
			ScreenW:  pty.Window.Width,
			ScreenH:  pty.Window.Height,
			TickRate: s.config.TickRate,
		},
		Store:  s.store,
		Player: pilot,
		Logger: s.logger.With("pilot", pilot),
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// requirePTY turns away clients that did not ask for a terminal.
func (s *SSHServer) requirePTY(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		if _, _, ok := sess.Pty(); !ok {
			s.logger.Warn("no PTY requested", "pilot", sess.User())
			wish.Fatalln(sess, "Wasteland Flyer needs a terminal. Try: ssh -t")
			return
		}
		next(sess)
	}
}

// trackPilots logs each session with the number of pilots in the air.
func (s *SSHServer) trackPilots(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		remote := sess.RemoteAddr().String()
		s.logger.Info("pilot connected", "pilot", sess.User(), "remote", remote, "online", s.pilots.Add(1))

		next(sess)

		s.logger.Info("pilot disconnected",
			"pilot", sess.User(),
			"remote", remote,
			"session", time.Since(start).Round(time.Second),
			"online", s.pilots.Add(-1),
		)
	}
}

// Pilots returns the number of open sessions.
func (s *SSHServer) Pilots() int {
	return int(s.pilots.Load())
}

// ListenAndServe serves until ctx is done, SIGINT or SIGTERM arrives,
// or the listener fails.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.started = time.Now()
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ssh server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "uptime", time.Since(s.started).Round(time.Second), "online", s.Pilots())
	return s.Shutdown()
}

// Shutdown stops accepting sessions, waits for open ones, and closes the store.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
