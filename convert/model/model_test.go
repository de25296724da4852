package model

import (
	"strings"
	"testing"

	"thesisdoc/common"
)

func TestBlockKindString(t *testing.T) {
	if KindPageBreak.String() != "pageBreak" {
		t.Errorf("KindPageBreak.String() = %q", KindPageBreak.String())
	}
	if BlockKind(100).String() != "unknown" {
		t.Errorf("out of range kind = %q", BlockKind(100).String())
	}
}

func TestBlockText(t *testing.T) {
	tests := []struct {
		block Block
		want  string
	}{
		{NewHeading(1, "H"), "H"},
		{NewParagraph("P"), "P"},
		{NewListItem(true, 1, 2, "L"), "L"},
		{NewCaption("C"), "C"},
		{NewImage(&Image{Description: "D"}), "D"},
		{NewPageBreak(), ""},
	}
	for _, tt := range tests {
		if got := tt.block.Text(); got != tt.want {
			t.Errorf("%s Text() = %q, want %q", tt.block.Kind, got, tt.want)
		}
	}
	if c := NewCaption("x"); c.Paragraph.Align != common.AlignCenter {
		t.Errorf("caption alignment = %q, want center", c.Paragraph.Align)
	}
}

func TestDump(t *testing.T) {
	doc := &Document{
		Title: "T",
		Blocks: []Block{
			NewHeading(1, "Chapter"),
			NewListItem(true, 1, 1, "first"),
			NewRow(&Row{TableID: "t1", Header: true, Columns: 2, Cells: []Cell{{Text: "a", Uppercase: true}, {Text: "b"}}}),
			NewImage(&Image{Name: "image10.png", MIME: "image/png", Width: 4, Height: 3}),
			NewImage(&Image{Name: "image2.png", MIME: "image/png", Width: 4, Height: 3}),
			NewPageBreak(),
			NewPlaceholder("[Error loading table: Untitled]"),
		},
	}
	out := Dump(doc)
	for _, want := range []string{
		`Heading#: "Chapter"`,
		`ListItem 1.: "first"`,
		`HeaderRow[t1]: "A | b"`,
		"---- page break ----",
		`placeholder(center): "[Error loading table: Untitled]"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump() does not contain %q:\n%s", want, out)
		}
	}
	if i, j := strings.Index(out, "\n  image2.png"), strings.Index(out, "\n  image10.png"); i < 0 || j < 0 || i > j {
		t.Errorf("media not in natural order:\n%s", out)
	}
}
