package content

import (
	"maps"
	"slices"
	"sort"

	"github.com/maruel/natural"

	"thesisdoc/thesis"
	"thesisdoc/utils/debug"
)

// String returns a readable outline of prepared thesis. It exists solely for
// manual inspection during debugging.
func (c *Content) String() string {
	if c == nil || c.Thesis == nil {
		return "<nil Content>"
	}
	doc := c.Thesis

	tw := debug.NewTreeWriter()
	tw.Line(0, "Thesis ref[%s] src[%s] format[%s]", c.RefID, c.SrcName, c.Format)
	tw.TextBlock(1, "Title", doc.Title())
	tw.TextBlock(1, "Author", doc.Metadata.AuthorName)
	if !doc.Metadata.CreatedAt.IsZero() {
		tw.Line(1, "Created: %s", doc.Metadata.CreatedAt.Format("2006-01-02T15:04:05Z07:00"))
	}

	tw.Line(0, "Front matter: %d", len(doc.FrontMatter))
	for i := range doc.FrontMatter {
		sectionOutline(tw, 1, &doc.FrontMatter[i])
	}
	tw.Line(0, "Chapters: %d", len(doc.Chapters))
	for i := range doc.Chapters {
		ch := &doc.Chapters[i]
		tw.Line(1, "Chapter[%s] order[%d] %q", ch.ID, ch.Order, ch.Title)
		for j := range ch.Sections {
			sectionOutline(tw, 2, &ch.Sections[j])
		}
	}
	tw.Line(0, "Back matter: %d", len(doc.BackMatter))
	for i := range doc.BackMatter {
		sectionOutline(tw, 1, &doc.BackMatter[i])
	}

	if ids := elementIDs(doc); len(ids) > 0 {
		keys := slices.Collect(maps.Keys(ids))
		sort.Sort(natural.StringSlice(keys))
		items := make([]string, 0, len(keys))
		for _, k := range keys {
			items = append(items, k+" => "+ids[k])
		}
		tw.List(0, "Elements index", items)
	}
	return tw.String()
}

func sectionOutline(tw *debug.TreeWriter, depth int, s *thesis.Section) {
	tw.Line(depth, "Section[%s] type[%s] order[%d] %q", s.ID, s.Type, s.Order, s.Title)
	if len(s.Content) > 0 {
		tw.Line(depth+1, "content: %d bytes", len(s.Content))
	}
	for _, f := range s.Figures {
		tw.Line(depth+1, "Figure[%s] number[%d] data[%d bytes]", f.ID, f.Number, len(f.ImageData))
	}
	for _, t := range s.Tables {
		tw.Line(depth+1, "Table[%s] shape[%s] number[%d]", t.ID, t.Shape, t.Number)
	}
	if n := len(s.Citations); n > 0 {
		tw.Line(depth+1, "citations: %d", n)
	}
	if n := len(s.References); n > 0 {
		tw.Line(depth+1, "references: %d", n)
	}
}

// elementIDs maps figure and table IDs to sections holding them.
func elementIDs(doc *thesis.Document) map[string]string {
	ids := make(map[string]string)
	add := func(s *thesis.Section) {
		for _, f := range s.Figures {
			ids[f.ID] = s.ID
		}
		for _, t := range s.Tables {
			ids[t.ID] = s.ID
		}
	}
	for i := range doc.FrontMatter {
		add(&doc.FrontMatter[i])
	}
	for i := range doc.Chapters {
		for j := range doc.Chapters[i].Sections {
			add(&doc.Chapters[i].Sections[j])
		}
	}
	for i := range doc.BackMatter {
		add(&doc.BackMatter[i])
	}
	return ids
}
