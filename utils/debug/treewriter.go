// Package debug has helpers producing human readable dumps of internal
// structures.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

const indent = "  "

// TreeWriter builds indented multi-line text.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) pad(depth int) {
	for range depth {
		tw.w.WriteString(indent)
	}
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Field writes "label: value" line. Strings are quoted so empty values and
// surrounding spaces are visible, other values use default formatting.
func (tw TreeWriter) Field(depth int, label string, value any) {
	tw.pad(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	switch v := value.(type) {
	case string:
		tw.w.WriteString(encodeText(v))
	case fmt.Stringer:
		tw.w.WriteString(encodeText(v.String()))
	default:
		fmt.Fprint(tw.w, v)
	}
	tw.w.WriteByte('\n')
}

func encodeText(raw string) string {
	if raw == "" {
		return `""`
	}
	return strconv.Quote(raw)
}
