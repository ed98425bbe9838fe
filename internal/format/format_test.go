package format

import (
	"bytes"
	"strings"
	"testing"
)

type payload struct {
	StartDate string   `json:"startDate"`
	Rows      int      `json:"rows"`
	Ratio     float64  `json:"ratio"`
	Tags      []string `json:"tags"`
	Extra     *int     `json:"extra"`
}

func TestWriteEDN_Compact(t *testing.T) {
	var buf bytes.Buffer
	v := payload{StartDate: "2024-01-01", Rows: 3, Ratio: 0.5, Tags: []string{"a", "b"}}
	if err := Write(&buf, v, "edn", false); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := strings.TrimSpace(buf.String())
	want := `{:extra nil :ratio 0.5 :rows 3 :start-date "2024-01-01" :tags ["a" "b"]}`
	if got != want {
		t.Fatalf("edn:\n got %s\nwant %s", got, want)
	}
}

func TestWriteEDN_PrettyEmptyCollections(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEDN(&buf, map[string]any{"epics": []any{}, "window": map[string]any{}}, true); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "{\n  :epics []\n  :window {}\n}\n"
	if buf.String() != want {
		t.Fatalf("pretty edn:\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestWriteJSONAndYAML(t *testing.T) {
	var j bytes.Buffer
	if err := Write(&j, map[string]int{"rows": 3}, "", false); err != nil {
		t.Fatalf("json: %v", err)
	}
	if strings.TrimSpace(j.String()) != `{"rows":3}` {
		t.Fatalf("json = %q", j.String())
	}

	var y bytes.Buffer
	if err := Write(&y, payload{StartDate: "2024-01-01", Rows: 2}, "YML", false); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if !strings.Contains(y.String(), "startDate: \"2024-01-01\"") && !strings.Contains(y.String(), "startDate: 2024-01-01") {
		t.Fatalf("yaml missing startDate:\n%s", y.String())
	}
	if !strings.Contains(y.String(), "rows: 2") {
		t.Fatalf("yaml missing rows:\n%s", y.String())
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, 1, "svg", false); err == nil {
		t.Fatalf("expected error for image format in Write")
	}
	if !Valid("yaml") || Valid("xml") {
		t.Fatalf("Valid misclassified")
	}
}

func TestKeyword(t *testing.T) {
	cases := map[string]string{
		"startDate":        "start-date",
		"intermediatePath": "intermediate-path",
		"rows":             "rows",
		"request_id":       "request-id",
	}
	for in, want := range cases {
		if got := Keyword(in); got != want {
			t.Fatalf("Keyword(%q) = %q, want %q", in, got, want)
		}
	}
}
