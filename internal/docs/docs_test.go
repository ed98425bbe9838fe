package docs

import (
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	got := strings.Join(Topics(), ",")
	if got != "canvas,gestures,replay" {
		t.Fatalf("topics = %s", got)
	}
}

func TestGet(t *testing.T) {
	body, ok := Get(" Gestures ")
	if !ok || !strings.HasPrefix(body, "# Gestures") {
		t.Fatalf("Get(gestures) = %q, %v", body, ok)
	}
	for _, bad := range []string{"", "nope", "../docs"} {
		if _, ok := Get(bad); ok {
			t.Fatalf("Get(%q) should fail", bad)
		}
	}
}
