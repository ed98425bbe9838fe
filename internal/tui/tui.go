// Package tui is the interactive terminal host for the canvas. Mouse
// gestures are translated into controller calls; the canvas is redrawn from
// the controller's state on every frame.
package tui

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mahisnghrwt/canvas-m-react-2/internal/config"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/controller"
)

type Options struct {
	// Start is the first day of the window; zero means today.
	Start time.Time
	// Config must be resolved (see config.Config.Resolved).
	Config config.Config
	// Logger receives controller debug logs and notifications. Nil means
	// EPICCANVAS_DEBUG_LOG, or nothing when that is unset.
	Logger *slog.Logger
	// Notifier, when set, also receives every notification.
	Notifier controller.Notifier
}

func Run(opts Options) error {
	applyThemePreference()
	applyColorProfilePreference()
	applyGlyphPreference(opts.Config.Glyphs)

	if opts.Logger == nil {
		logger, closeLog, err := openDebugLog(os.Getenv("EPICCANVAS_DEBUG_LOG"))
		if err != nil {
			return err
		}
		defer closeLog()
		opts.Logger = logger
	}

	m := newAppModel(opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

// openDebugLog opens path for appending and returns a Debug-level logger on
// it. An empty path yields a logger that discards everything.
func openDebugLog(path string) (*slog.Logger, func(), error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h).With("component", "tui"), func() { _ = f.Close() }, nil
}
