// Package format writes command payloads as JSON, EDN or YAML.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Text formats accepted by Write. Image formats (svg, png) are handled by
// the render package.
const (
	JSON = "json"
	EDN  = "edn"
	YAML = "yaml"
	SVG  = "svg"
	PNG  = "png"
)

// Normalize lower-cases and trims a format name; an empty name is JSON.
func Normalize(f string) string {
	f = strings.ToLower(strings.TrimSpace(f))
	switch f {
	case "":
		return JSON
	case "yml":
		return YAML
	}
	return f
}

// Valid reports whether f names a format this program can produce.
func Valid(f string) bool {
	switch Normalize(f) {
	case JSON, EDN, YAML, SVG, PNG:
		return true
	}
	return false
}

// Write writes v in the requested text format.
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch Normalize(format) {
	case JSON:
		return WriteJSON(w, v, pretty)
	case EDN:
		return WriteEDN(w, v, pretty)
	case YAML:
		return WriteYAML(w, v)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// WriteYAML goes through JSON first so json tags decide the key names, the
// same as the other text formats.
func WriteYAML(w io.Writer, v any) error {
	x, err := viaJSON(v)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(x); err != nil {
		return err
	}
	return enc.Close()
}

func viaJSON(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return nil, err
	}
	return x, nil
}
