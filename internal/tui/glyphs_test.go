package tui

import "testing"

func TestGlyphs_ConfigThenEnv(t *testing.T) {
	t.Setenv("EPICCANVAS_GLYPHS", "")
	setGlyphs(glyphSetUnicode)

	applyGlyphPreference("ascii")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected ascii from config; got %v", got)
	}

	t.Setenv("EPICCANVAS_GLYPHS", "unicode")
	applyGlyphPreference("ascii")
	if got := glyphs(); got != glyphSetUnicode {
		t.Fatalf("env should override config; got %v", got)
	}

	setGlyphs(glyphSetASCII)
	t.Setenv("EPICCANVAS_GLYPHS", "bogus")
	applyGlyphPreference("")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("unknown values should be ignored; got %v", got)
	}
	setGlyphs(glyphSetUnicode)
}

func TestGlyphs_ASCIIFallbacks(t *testing.T) {
	setGlyphs(glyphSetASCII)
	defer setGlyphs(glyphSetUnicode)

	for name, g := range map[string]string{
		"body":  glyphEpicBody(),
		"tip":   glyphStartTip(),
		"path":  glyphPath(),
		"grid":  glyphGridTick(),
		"arrow": glyphArrow(),
	} {
		for _, r := range g {
			if r > 127 {
				t.Fatalf("%s glyph %q is not ascii", name, g)
			}
		}
	}
}
