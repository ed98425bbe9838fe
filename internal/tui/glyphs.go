package tui

import (
	"os"
	"strings"
	"sync"
)

// Some terminal fonts render box and block characters badly, so every glyph
// the canvas draws has an ASCII fallback.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func parseGlyphSet(v string) (glyphSet, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "unicode", "utf8":
		return glyphSetUnicode, true
	case "ascii":
		return glyphSetASCII, true
	}
	return 0, false
}

// applyGlyphPreference applies the configured set, then EPICCANVAS_GLYPHS on
// top of it. Unknown values are ignored.
func applyGlyphPreference(configured string) {
	if gs, ok := parseGlyphSet(configured); ok {
		setGlyphs(gs)
	}
	if gs, ok := parseGlyphSet(os.Getenv("EPICCANVAS_GLYPHS")); ok {
		setGlyphs(gs)
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func pick(unicode, ascii string) string {
	if glyphs() == glyphSetASCII {
		return ascii
	}
	return unicode
}

func glyphEpicBody() string { return pick("█", "=") }
func glyphStartHandle() string { return pick("▐", "[") }
func glyphEndHandle() string { return pick("▌", "]") }
func glyphStartTip() string { return pick("◖", "<") }
func glyphEndTip() string { return pick("◗", ">") }
func glyphPath() string { return pick("•", "*") }
func glyphDraft() string { return pick("∙", ".") }
func glyphGridTick() string { return pick("┊", ":") }
func glyphArrow() string { return pick("→", "->") }
func glyphLaneDivider() string { return pick("│", "|") }
