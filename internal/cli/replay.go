package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mahisnghrwt/canvas-m-react-2/internal/format"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/render"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/replay"
)

func newReplayCmd(app *App) *cobra.Command {
	var (
		trace   bool
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Play a gesture script against an empty canvas and print the result",
		Long: `Play a gesture script against an empty canvas and print the result.

Run "epiccanvas docs replay" for the script format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := replay.Load(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}

			cfg, err := loadConfig(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			// Flags beat the script; the script beats the config file.
			if app.Start != "" {
				script.Window.Start = app.Start
			}
			if app.Days > 0 {
				script.Window.Days = app.Days
			}
			if app.Rows > 0 {
				script.Window.Rows = app.Rows
			}
			if app.Growth != "" {
				script.Growth = app.Growth
			}
			if script.Growth == "" {
				script.Growth = cfg.Growth
			}
			if script.ExtendThreshold == nil {
				script.ExtendThreshold = cfg.ExtendThreshold
			}

			res, err := script.Run(replay.Options{Logger: app.Logger, Palette: cfg.Colors})
			if err != nil {
				return writeErr(cmd, err)
			}
			app.Logger.Debug("replay finished", "steps", len(script.Steps), "notifications", len(res.Notifications))

			w := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return writeErr(cmd, err)
				}
				defer f.Close()
				w = f
			}
			return writeReplay(w, app, res, trace)
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, "Include the per-step trace and notifications (text formats only)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write output to a file instead of stdout")
	return cmd
}

func writeReplay(w io.Writer, app *App, res *replay.Result, trace bool) error {
	switch format.Normalize(app.Format) {
	case format.SVG:
		return render.WriteSVG(w, res.State, res.Window, res.Cell)
	case format.PNG:
		return render.WritePNG(w, res.State, res.Window, res.Cell)
	}

	data := map[string]any{"canvas": render.NewSnapshot(res.State, res.Window)}
	if trace {
		data["trace"] = res.Trace
		data["notifications"] = res.Notifications
	}
	if err := format.Write(w, map[string]any{"data": data}, app.Format, app.PrettyJSON); err != nil {
		return fmt.Errorf("write replay output: %w", err)
	}
	return nil
}
