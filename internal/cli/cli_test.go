package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mahisnghrwt/canvas-m-react-2/internal/config"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/replay"
)

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()
	t.Setenv("EPICCANVAS_CONFIG_DIR", t.TempDir())

	cmd := NewRootCmd()
	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "script.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return p
}

const twoEpicScript = `
window: {start: 2024-01-01, days: 10, rows: 2}
cell: {width: 10, height: 10}
steps:
  - dblclick: {col: 1, row: 0}
  - dblclick: {col: 5, row: 1}
  - press: {x: 19, y: 5}
  - drag: {col: 5, row: 1}
  - drop: {col: 5, row: 1}
`

func TestReplay_JSON(t *testing.T) {
	p := writeScript(t, twoEpicScript)
	out, _, err := runCLI(t, []string{"replay", p, "--trace"})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}

	var env struct {
		Data struct {
			Canvas struct {
				Window struct {
					StartDate string `json:"startDate"`
					Days      int    `json:"days"`
				} `json:"window"`
				Epics []map[string]any `json:"epics"`
				Paths []map[string]any `json:"paths"`
			} `json:"canvas"`
			Trace         []map[string]any `json:"trace"`
			Notifications []map[string]any `json:"notifications"`
		} `json:"data"`
	}
	if err := json.Unmarshal(out, &env); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	c := env.Data.Canvas
	if c.Window.StartDate != "2024-01-01" || c.Window.Days != 10 {
		t.Fatalf("window = %+v", c.Window)
	}
	if len(c.Epics) != 2 || len(c.Paths) != 1 {
		t.Fatalf("epics=%d paths=%d", len(c.Epics), len(c.Paths))
	}
	if len(env.Data.Trace) != 5 || len(env.Data.Notifications) != 3 {
		t.Fatalf("trace=%d notifications=%d", len(env.Data.Trace), len(env.Data.Notifications))
	}
}

func TestReplay_FlagsOverrideScript(t *testing.T) {
	p := writeScript(t, twoEpicScript)
	out, _, err := runCLI(t, []string{"replay", p, "--days", "20", "--format", "edn"})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !strings.Contains(string(out), ":days 20") {
		t.Fatalf("edn output should reflect --days:\n%s", out)
	}
}

func TestReplay_SVGToFile(t *testing.T) {
	p := writeScript(t, twoEpicScript)
	dst := filepath.Join(t.TempDir(), "out.svg")
	if _, _, err := runCLI(t, []string{"replay", p, "--format", "svg", "-o", dst}); err != nil {
		t.Fatalf("replay: %v", err)
	}
	b, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(b), "<svg") || strings.Count(string(b), "<path ") != 1 {
		t.Fatalf("unexpected svg:\n%s", b)
	}
}

func TestReplay_PNG(t *testing.T) {
	p := writeScript(t, twoEpicScript)
	out, _, err := runCLI(t, []string{"replay", p, "--format", "png"})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("\x89PNG")) {
		t.Fatalf("not a png")
	}
}

func TestReplay_UnknownStep(t *testing.T) {
	p := writeScript(t, "steps:\n  - teleport: {col: 1, row: 1}\n")
	_, stderr, err := runCLI(t, []string{"replay", p})
	if !errors.Is(err, replay.ErrUnknownStep) {
		t.Fatalf("expected ErrUnknownStep, got %v", err)
	}
	if !strings.Contains(string(stderr), "teleport") {
		t.Fatalf("stderr should name the step: %s", stderr)
	}
}

func TestInvalidFlags(t *testing.T) {
	p := writeScript(t, twoEpicScript)
	cases := [][]string{
		{"replay", p, "--format", "xml"},
		{"replay", p, "--growth", "sideways"},
		{"replay", p, "--log-level", "loud"},
		{"replay", p, "--start", "01/02/2024"},
	}
	for _, args := range cases {
		if _, _, err := runCLI(t, args); err == nil {
			t.Fatalf("%v: expected error", args)
		}
	}
}

func TestDocs(t *testing.T) {
	out, _, err := runCLI(t, []string{"docs"})
	if err != nil {
		t.Fatalf("docs: %v", err)
	}
	if !strings.Contains(string(out), `"gestures"`) {
		t.Fatalf("topics missing: %s", out)
	}

	out, _, err = runCLI(t, []string{"docs", "gestures", "--raw"})
	if err != nil || !strings.HasPrefix(string(out), "# Gestures") {
		t.Fatalf("raw docs: %v\n%s", err, out)
	}

	if _, _, err := runCLI(t, []string{"docs", "nope"}); err == nil {
		t.Fatalf("expected error for unknown topic")
	}
}

func TestConfigShowAndInit(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EPICCANVAS_CONFIG_DIR", dir)

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"config", "init", "--rows", "7"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config init: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Rows != 7 || cfg.CellWidth != config.DefaultCellWidth {
		t.Fatalf("saved config = %+v", cfg)
	}

	cmd = NewRootCmd()
	out.Reset()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "show", "--format", "yaml"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out.String(), "rows: 7") {
		t.Fatalf("show should read the saved file:\n%s", out.String())
	}
}

func TestConfigInvalidFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EPICCANVAS_CONFIG_DIR", dir)
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"growth":"sideways"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"config", "show"})
	if err := cmd.Execute(); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

const growthScript = `
window: {start: 2024-01-01, days: 10, rows: 1}
cell: {width: 10, height: 10}
%s
steps:
  - dblclick: {col: 1, row: 0}
  - press: {x: 15, y: 5}
  - drag: {col: 7, row: 0}
  - drop: {col: 7, row: 0}
`

func TestReplay_ConfigFileFillsGrowthSettings(t *testing.T) {
	cases := []struct {
		name   string
		header string
		days   int
	}{
		// threshold 3, fixed: the epic ends two days before the window end.
		{name: "config", header: "", days: 11},
		{name: "script wins", header: "growth: overflow", days: 12},
		{name: "script threshold wins", header: "extendThreshold: 1", days: 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Setenv("EPICCANVAS_CONFIG_DIR", dir)
			if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"growth":"fixed","extendThreshold":3}`), 0o644); err != nil {
				t.Fatal(err)
			}
			p := writeScript(t, fmt.Sprintf(growthScript, tc.header))

			cmd := NewRootCmd()
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs([]string{"replay", p})
			if err := cmd.Execute(); err != nil {
				t.Fatalf("replay: %v", err)
			}

			var env struct {
				Data struct {
					Canvas struct {
						Window struct {
							Days int `json:"days"`
						} `json:"window"`
					} `json:"canvas"`
				} `json:"data"`
			}
			if err := json.Unmarshal(out.Bytes(), &env); err != nil {
				t.Fatalf("decode: %v\n%s", err, out.String())
			}
			if got := env.Data.Canvas.Window.Days; got != tc.days {
				t.Fatalf("window days = %d, want %d", got, tc.days)
			}
		})
	}
}
