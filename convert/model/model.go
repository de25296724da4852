// Package model defines intermediate document representation: a flat stream
// of blocks plus page layout, produced by structural builder and consumed by
// the package serializer.
package model

import (
	"time"

	"thesisdoc/common"
)

// BlockKind enumerates stream element kinds.
type BlockKind int

const (
	KindHeading BlockKind = iota
	KindParagraph
	KindListItem
	KindImage
	KindCaption
	KindTableRow
	KindCitation
	KindReference
	KindPlaceholder
	KindPageBreak
)

var kindNames = [...]string{
	KindHeading:     "heading",
	KindParagraph:   "paragraph",
	KindListItem:    "listItem",
	KindImage:       "image",
	KindCaption:     "caption",
	KindTableRow:    "tableRow",
	KindCitation:    "citation",
	KindReference:   "reference",
	KindPlaceholder: "placeholder",
	KindPageBreak:   "pageBreak",
}

func (k BlockKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParagraphStyle names a paragraph style of the produced document.
type ParagraphStyle string

const (
	StyleNormal   ParagraphStyle = ""
	StyleTitle    ParagraphStyle = "Title"
	StyleSubtitle ParagraphStyle = "Subtitle"
	StyleCaption  ParagraphStyle = "Caption"
)

// Block is a single element of the document stream. Kind says which payload
// is set, text kinds (paragraph, caption, citation, reference, placeholder)
// use Paragraph.
type Block struct {
	Kind      BlockKind
	Heading   *Heading
	Paragraph *Paragraph
	ListItem  *ListItem
	Image     *Image
	Row       *Row
}

type Heading struct {
	Level int
	Text  string
}

type Paragraph struct {
	Text  string
	Align common.Align
	Style ParagraphStyle
	Bold  bool
}

// ListItem is an item of a list run. Index is 1-based position within the
// run, numbering restarts whenever it is 1.
type ListItem struct {
	Ordered bool
	Level   int
	Index   int
	Text    string
}

// Image is an embedded raster picture. Width and Height are in CSS pixels.
type Image struct {
	Data        []byte
	MIME        string
	Ext         string
	Width       int
	Height      int
	Description string
	Name        string
}

// Row is a table row. A table is its header row followed by consecutive data
// rows with the same TableID, Columns is column count of that table.
type Row struct {
	TableID string
	Header  bool
	Columns int
	Cells   []Cell
}

type Cell struct {
	Text      string
	Align     common.Align
	Bold      bool
	Italic    bool
	Underline bool
	Uppercase bool
	Shading   string // hex fill, empty for none
}

// PageLayout describes page setup. Dimensions are in twips.
type PageLayout struct {
	Width, Height int
	Landscape     bool
	Margins       Margins
	HeaderText    string
	FooterText    string
	PageNumbers   bool
	// TitlePageDistinct suppresses header and footer on the first page.
	TitlePageDistinct bool
	FontName          string
	FontSize          int
}

type Margins struct {
	Top, Right, Bottom, Left, Header, Footer int
}

// Meta is package level document information.
type Meta struct {
	Title       string
	Subject     string
	Creator     string
	Keywords    []string
	Description string
	Language    string
	Created     time.Time
	Identifier  string
}

// Document is ready to be serialized.
type Document struct {
	Title  string
	Blocks []Block
	Layout PageLayout
	Meta   Meta
}
