package thesis

import (
	"cmp"
	"slices"
)

// Normalize returns normalized copy of the document: chapters and sections
// inside chapters are put in their Order (stable), front and back matter
// keep sequence order. Receiver is never modified.
func (d *Document) Normalize() *Document {
	out := &Document{
		Metadata:    d.Metadata.clone(),
		FrontMatter: cloneSections(d.FrontMatter),
		BackMatter:  cloneSections(d.BackMatter),
	}
	if len(d.Chapters) > 0 {
		out.Chapters = make([]Chapter, 0, len(d.Chapters))
		for _, ch := range d.Chapters {
			ch.Sections = cloneSections(ch.Sections)
			slices.SortStableFunc(ch.Sections, func(a, b Section) int {
				return cmp.Compare(a.Order, b.Order)
			})
			out.Chapters = append(out.Chapters, ch)
		}
		slices.SortStableFunc(out.Chapters, func(a, b Chapter) int {
			return cmp.Compare(a.Order, b.Order)
		})
	}
	return out
}

func (m Metadata) clone() Metadata {
	m.Keywords = slices.Clone(m.Keywords)
	m.CommitteeMembers = slices.Clone(m.CommitteeMembers)
	return m
}

func cloneSections(in []Section) []Section {
	if in == nil {
		return nil
	}
	out := make([]Section, len(in))
	for i, s := range in {
		s.Figures = slices.Clone(s.Figures)
		s.Tables = cloneTables(s.Tables)
		s.Citations = cloneCitations(s.Citations)
		if s.References != nil {
			refs := make([]Reference, len(s.References))
			for j, r := range s.References {
				r.Authors = slices.Clone(r.Authors)
				refs[j] = r
			}
			s.References = refs
		}
		out[i] = s
	}
	return out
}

func cloneCitations(in []Citation) []Citation {
	if in == nil {
		return nil
	}
	out := make([]Citation, len(in))
	for i, c := range in {
		c.Authors = slices.Clone(c.Authors)
		out[i] = c
	}
	return out
}

func cloneTables(in []Table) []Table {
	if in == nil {
		return nil
	}
	out := make([]Table, len(in))
	for i, t := range in {
		if t.Grid != nil {
			g := &GridTable{
				Headers: slices.Clone(t.Grid.Headers),
			}
			if t.Grid.Rows != nil {
				g.Rows = make([][]string, len(t.Grid.Rows))
				for j, r := range t.Grid.Rows {
					g.Rows[j] = slices.Clone(r)
				}
			}
			if t.Grid.Formatting != nil {
				g.Formatting = make(map[string]CellFormat, len(t.Grid.Formatting))
				for k, v := range t.Grid.Formatting {
					g.Formatting[k] = v
				}
			}
			t.Grid = g
		}
		if t.Opaque != nil {
			o := *t.Opaque
			t.Opaque = &o
		}
		out[i] = t
	}
	return out
}
