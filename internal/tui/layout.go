package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// normalizePane forces every line of s to exactly width columns (ANSI-aware)
// and, when height > 0, pads or cuts s to height lines.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}
	for i, ln := range lines {
		if xansi.StringWidth(ln) > width {
			ln = xansi.Truncate(ln, width, "")
		}
		if w := xansi.StringWidth(ln); w < width {
			ln += strings.Repeat(" ", width-w)
		}
		lines[i] = ln
	}
	return strings.Join(lines, "\n")
}

// overlay writes label over base starting at column col. Both are plain
// text; the result keeps base's width.
func overlay(base []rune, col int, label string) {
	for i, r := range []rune(label) {
		if col+i < 0 || col+i >= len(base) {
			continue
		}
		base[col+i] = r
	}
}
