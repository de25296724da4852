// Package debug renders nested structures as indented text for debug reports
// and preview dumps.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

const indent = "  "

// TreeWriter accumulates indented lines, depth 0 is the left margin.
type TreeWriter struct {
	b *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{b: &strings.Builder{}}
}

func (tw *TreeWriter) String() string {
	return tw.b.String()
}

func (tw *TreeWriter) pad(depth int) {
	tw.b.WriteString(strings.Repeat(indent, max(depth, 0)))
}

func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(tw.b, format, args...)
	tw.b.WriteByte('\n')
}

// TextBlock writes labeled value quoted, so that line breaks and trailing
// spaces are visible. Empty value is left bare.
func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	tw.pad(depth)
	tw.b.WriteString(label)
	tw.b.WriteString(": ")
	tw.b.WriteString(encodeText(value))
	tw.b.WriteByte('\n')
}

// Rule writes separator line with label in the middle.
func (tw *TreeWriter) Rule(depth int, label string) {
	tw.Line(depth, "---- %s ----", label)
}

// List writes label with item count followed by items one level deeper.
func (tw *TreeWriter) List(depth int, label string, items []string) {
	tw.Line(depth, "%s: %d", label, len(items))
	for _, item := range items {
		tw.pad(depth + 1)
		tw.b.WriteString(item)
		tw.b.WriteByte('\n')
	}
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
