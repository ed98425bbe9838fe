package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mahisnghrwt/canvas-m-react-2/internal/config"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/controller"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/datemath"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/format"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/tui"
)

type App struct {
	Start     string
	Days      int
	Rows      int
	CellWidth int
	RowHeight int
	Growth    string

	Format     string
	PrettyJSON bool
	LogLevel   string

	Logger *slog.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "epiccanvas",
		Short:        "Plan epics on a calendar canvas in the terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Open the canvas starting today
  epiccanvas

  # Start on a given day with more room
  epiccanvas --start 2024-01-01 --days 60 --rows 5

  # Replay a gesture script and render it
  epiccanvas replay plan.yaml --format svg > plan.svg
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if !format.Valid(app.Format) {
			return writeErr(cmd, flagError{flag: "format", value: app.Format, reason: "want json, edn, yaml, svg or png"})
		}
		if app.Growth != "" {
			if _, ok := controller.ParseGrowthMode(app.Growth); !ok {
				return writeErr(cmd, flagError{flag: "growth", value: app.Growth, reason: "want overflow or fixed"})
			}
		}
		level, err := parseLevel(app.LogLevel)
		if err != nil {
			return writeErr(cmd, err)
		}
		app.Logger = newLogger(cmd.ErrOrStderr(), level)
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.Start, "start", envOr("EPICCANVAS_START", ""), "First day of the window (YYYY-MM-DD or 'today')")
	cmd.PersistentFlags().IntVar(&app.Days, "days", envIntOr("EPICCANVAS_DAYS", 0), "Initial number of days in the window")
	cmd.PersistentFlags().IntVar(&app.Rows, "rows", envIntOr("EPICCANVAS_ROWS", 0), "Initial number of lanes")
	cmd.PersistentFlags().IntVar(&app.CellWidth, "cell-width", envIntOr("EPICCANVAS_CELL_WIDTH", 0), "Terminal columns per day")
	cmd.PersistentFlags().IntVar(&app.RowHeight, "row-height", envIntOr("EPICCANVAS_ROW_HEIGHT", 0), "Terminal lines per lane")
	cmd.PersistentFlags().StringVar(&app.Growth, "growth", envOr("EPICCANVAS_GROWTH", ""), "Window growth mode (overflow|fixed)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("EPICCANVAS_FORMAT", "json"), "Output format (json|edn|yaml|svg|png)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON/EDN output")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("EPICCANVAS_LOG_LEVEL", "warn"), "Log level for stderr (debug|info|warn|error)")

	cmd.AddCommand(newReplayCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	cfg, err := loadConfig(app)
	if err != nil {
		return writeErr(cmd, err)
	}
	start, err := startDate(app)
	if err != nil {
		return writeErr(cmd, err)
	}
	// The TUI owns the terminal, so stderr logging is off; it logs to
	// EPICCANVAS_DEBUG_LOG instead.
	return tui.Run(tui.Options{Start: start, Config: cfg})
}

// loadConfig reads the config file and lays non-zero flags over it.
func loadConfig(app *App) (config.Config, error) {
	file, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	cfg := *file
	if app.Days > 0 {
		cfg.Days = app.Days
	}
	if app.Rows > 0 {
		cfg.Rows = app.Rows
	}
	if app.CellWidth > 0 {
		cfg.CellWidth = app.CellWidth
	}
	if app.RowHeight > 0 {
		cfg.RowHeight = app.RowHeight
	}
	if app.Growth != "" {
		cfg.Growth = app.Growth
	}
	cfg = cfg.Resolved()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func startDate(app *App) (time.Time, error) {
	if strings.TrimSpace(app.Start) == "" {
		return datemath.Normalize(time.Now()), nil
	}
	t, err := datemath.ParseDate(app.Start, time.Now())
	if err != nil {
		return time.Time{}, flagError{flag: "start", value: app.Start, reason: err.Error()}
	}
	return t, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envIntOr(k string, d int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return d
	}
	return n
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, flagError{flag: "log-level", value: s, reason: "want debug, info, warn or error"}
	}
	return l, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
