package model

import (
	"slices"
	"strconv"
	"strings"

	"github.com/maruel/natural"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"thesisdoc/utils/debug"
)

// Dump returns readable tree of the document stream. Used by preview command
// and debug report.
func Dump(doc *Document) string {
	if doc == nil {
		return "<nil Document>"
	}

	upper := cases.Upper(language.Und)

	tw := debug.NewTreeWriter()
	tw.Line(0, "Document %q blocks[%d]", doc.Title, len(doc.Blocks))
	l := &doc.Layout
	tw.Line(1, "Page size[%dx%d] landscape[%t] margins[%d %d %d %d]", l.Width, l.Height, l.Landscape,
		l.Margins.Top, l.Margins.Right, l.Margins.Bottom, l.Margins.Left)
	tw.TextBlock(1, "Header", l.HeaderText)
	tw.TextBlock(1, "Footer", l.FooterText)

	depth := 1
	for i := range doc.Blocks {
		b := &doc.Blocks[i]
		switch b.Kind {
		case KindHeading:
			depth = b.Heading.Level
			tw.TextBlock(depth, "Heading"+strings.Repeat("#", b.Heading.Level), b.Heading.Text)
			depth++
		case KindPageBreak:
			tw.Rule(1, "page break")
		case KindListItem:
			marker := "-"
			if b.ListItem.Ordered {
				marker = strconv.Itoa(b.ListItem.Index) + "."
			}
			tw.TextBlock(depth+b.ListItem.Level-1, "ListItem "+marker, b.ListItem.Text)
		case KindImage:
			tw.Line(depth, "Image[%s] %s %dx%d data[%d bytes]", b.Image.Name, b.Image.MIME, b.Image.Width, b.Image.Height, len(b.Image.Data))
			tw.TextBlock(depth+1, "Description", b.Image.Description)
		case KindTableRow:
			cells := make([]string, 0, len(b.Row.Cells))
			for _, c := range b.Row.Cells {
				text := c.Text
				if c.Uppercase {
					text = upper.String(text)
				}
				cells = append(cells, text)
			}
			label := "Row"
			if b.Row.Header {
				label = "HeaderRow"
			}
			tw.TextBlock(depth, label+"["+b.Row.TableID+"]", strings.Join(cells, " | "))
		default:
			label := b.Kind.String()
			if b.Paragraph != nil && b.Paragraph.Align != "" {
				label += "(" + b.Paragraph.Align.String() + ")"
			}
			tw.TextBlock(depth, label, b.Text())
		}
	}

	if media := MediaNames(doc); len(media) > 0 {
		tw.List(0, "Media", media)
	}
	return tw.String()
}

// MediaNames returns names of all embedded images in natural order.
func MediaNames(doc *Document) []string {
	var names []string
	for i := range doc.Blocks {
		if img := doc.Blocks[i].Image; img != nil {
			names = append(names, img.Name)
		}
	}
	slices.SortFunc(names, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		}
		return 0
	})
	return names
}
