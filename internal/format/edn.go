package format

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// WriteEDN writes the JSON shape of v as EDN. Map keys become keywords in
// kebab case (startDate -> :start-date); JSON null becomes nil.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	x, err := viaJSON(v)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	enc := ednEncoder{pretty: pretty, indent: 2}
	enc.value(&buf, x, 0)
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

type ednEncoder struct {
	pretty bool
	indent int
}

func (e ednEncoder) value(buf *bytes.Buffer, v any, level int) {
	switch t := v.(type) {
	case nil:
		buf.WriteString("nil")
	case bool:
		buf.WriteString(strconv.FormatBool(t))
	case string:
		buf.WriteString(strconv.Quote(t))
	case float64:
		if t == float64(int64(t)) {
			buf.WriteString(strconv.FormatInt(int64(t), 10))
			return
		}
		buf.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
	case []any:
		e.open(buf, '[', len(t) == 0)
		for i, it := range t {
			e.sep(buf, i, level)
			e.value(buf, it, level+1)
		}
		e.close(buf, ']', len(t) == 0, level)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		e.open(buf, '{', len(keys) == 0)
		for i, k := range keys {
			e.sep(buf, i, level)
			buf.WriteByte(':')
			buf.WriteString(Keyword(k))
			buf.WriteByte(' ')
			e.value(buf, t[k], level+1)
		}
		e.close(buf, '}', len(keys) == 0, level)
	default:
		buf.WriteString(strconv.Quote(fmt.Sprint(v)))
	}
}

func (e ednEncoder) open(buf *bytes.Buffer, c byte, empty bool) {
	buf.WriteByte(c)
	if e.pretty && !empty {
		buf.WriteByte('\n')
	}
}

func (e ednEncoder) sep(buf *bytes.Buffer, i, level int) {
	if i > 0 {
		if e.pretty {
			buf.WriteByte('\n')
		} else {
			buf.WriteByte(' ')
		}
	}
	if e.pretty {
		buf.WriteString(strings.Repeat(" ", (level+1)*e.indent))
	}
}

func (e ednEncoder) close(buf *bytes.Buffer, c byte, empty bool, level int) {
	if e.pretty && !empty {
		buf.WriteByte('\n')
		buf.WriteString(strings.Repeat(" ", level*e.indent))
	}
	buf.WriteByte(c)
}

// Keyword turns a JSON field name into an EDN keyword name.
func Keyword(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == ' ' || r == '_':
			b.WriteByte('-')
		case unicode.IsUpper(r):
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
