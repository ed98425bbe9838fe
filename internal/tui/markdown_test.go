package tui

import (
	"strings"
	"testing"
)

func TestMarkdownStyle_FollowsTheme(t *testing.T) {
	t.Setenv("EPICCANVAS_MD_STYLE", "")
	t.Setenv("EPICCANVAS_DARKBG", "")
	t.Setenv("COLORFGBG", "")

	t.Setenv("EPICCANVAS_THEME", "light")
	if got := markdownStyle(); got != "light" {
		t.Fatalf("expected light; got %q", got)
	}
	t.Setenv("EPICCANVAS_THEME", "dark")
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("expected dark; got %q", got)
	}

	t.Setenv("EPICCANVAS_MD_STYLE", "light")
	if got := markdownStyle(); got != "light" {
		t.Fatalf("md style should win; got %q", got)
	}
}

func TestThemePreference_ColorFGBG(t *testing.T) {
	t.Setenv("EPICCANVAS_THEME", "")
	t.Setenv("EPICCANVAS_DARKBG", "")

	t.Setenv("COLORFGBG", "0;15")
	if dark, ok := themePreference(); !ok || dark {
		t.Fatalf("0;15 should be light: dark=%v ok=%v", dark, ok)
	}
	t.Setenv("COLORFGBG", "15;default;0")
	if dark, ok := themePreference(); !ok || !dark {
		t.Fatalf("bg 0 should be dark: dark=%v ok=%v", dark, ok)
	}
	t.Setenv("COLORFGBG", "")
	if _, ok := themePreference(); ok {
		t.Fatalf("nothing set should be undecided")
	}
}

func TestRenderMarkdown(t *testing.T) {
	t.Setenv("EPICCANVAS_MD_STYLE", "dark")
	out := renderMarkdown("# Gestures\n\nDrag the **body** to move.", 60)
	if !strings.Contains(out, "Gestures") || !strings.Contains(out, "body") {
		t.Fatalf("unexpected render:\n%s", out)
	}
	if renderMarkdown("   ", 60) != "" {
		t.Fatalf("blank markdown should render empty")
	}
}
