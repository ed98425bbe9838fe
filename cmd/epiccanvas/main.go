package main

import (
	"os"
	"strings"

	"github.com/mahisnghrwt/canvas-m-react-2/internal/cli"
)

func isScriptPath(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.HasSuffix(s, ".yaml") || strings.HasSuffix(s, ".yml")
}

// rewriteScriptArgs makes `epiccanvas plan.yaml` behave like
// `epiccanvas replay plan.yaml`. Cobra treats the first positional token as
// a subcommand, so argv is rewritten before parsing. Persistent flags may
// come first; their values are skipped.
func rewriteScriptArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}
	valueFlags := map[string]bool{
		"--start":      true,
		"--days":       true,
		"--rows":       true,
		"--cell-width": true,
		"--row-height": true,
		"--growth":     true,
		"--format":     true,
		"--log-level":  true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}
		if !isScriptPath(a) {
			return argv
		}
		out := make([]string, 0, len(argv)+1)
		out = append(out, argv[:i]...)
		out = append(out, "replay")
		return append(out, argv[i:]...)
	}
	return argv
}

func main() {
	os.Args = rewriteScriptArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
