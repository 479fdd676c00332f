package main

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/pkg/errors"

	"github.com/tomz197/geometry2d/internal/config"
	"github.com/tomz197/geometry2d/internal/draw"
	"github.com/tomz197/geometry2d/internal/scene"
)

const sessionIdleTimeout = 2 * time.Minute

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal("failed to load .env", "err", err)
	}
	viewerCfg, err := config.ViewerFromEnv()
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}
	sshCfg := config.SSHFromEnv()

	logger, err := config.NewLogger(os.Stderr, "geomview-ssh", viewerCfg.LogLevel)
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}

	// Scenes are read-only once loaded; every session builds its own State on top.
	sc, err := scene.LoadOrDefault(viewerCfg.ScenePath)
	if err != nil {
		logger.Fatal("failed to load scene", "path", viewerCfg.ScenePath, "err", err)
	}

	logger.Info("SSH config", "host", sshCfg.Host, "port", sshCfg.Port,
		"hostKeyPath", sshCfg.HostKeyPath, "fps", viewerCfg.FPS)

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(sshCfg.Host, sshCfg.Port)),
		wish.WithMiddleware(
			viewerMiddleware(sc, viewerCfg.FPS, logger),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY so key presses reach the frame loop promptly
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if sshCfg.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(sshCfg.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting SSH server", "addr", net.JoinHostPort(sshCfg.Host, sshCfg.Port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// viewerMiddleware runs one viewer per SSH session.
func viewerMiddleware(sc *scene.Scene, fps int, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			sessLogger := logger.With("user", sess.User())
			sessLogger.Info("new viewer session", "terminal", pty.Term,
				"width", pty.Window.Width, "height", pty.Window.Height)

			// Create a terminal size tracker that updates on window changes
			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			err := scene.Run(bufio.NewReader(sess), sess, scene.Options{
				Scene:        sc,
				FPS:          fps,
				TermSizeFunc: sizeTracker.getSize,
				Logger:       sessLogger,
				IdleTimeout:  sessionIdleTimeout,
			})
			if err != nil {
				sessLogger.Error("viewer error", "err", err)
			}

			sessLogger.Info("session ended")
			next(sess)
		}
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
