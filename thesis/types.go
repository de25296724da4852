// Package thesis defines the export input: an immutable snapshot of a thesis
// handed over by the authoring surface.
package thesis

import (
	"time"

	"thesisdoc/common"
)

// Document is the whole thesis: metadata, front matter, chapters and back
// matter, in reading order.
type Document struct {
	Metadata    Metadata
	FrontMatter []Section
	Chapters    []Chapter
	BackMatter  []Section
}

type Metadata struct {
	Description      string
	Keywords         []string
	CreatedAt        time.Time
	UniversityName   string
	DepartmentName   string
	AuthorName       string
	ThesisDate       string
	CommitteeMembers []string
}

type Chapter struct {
	ID       string
	Title    string
	Order    int
	Sections []Section
}

// Section is a single unit of writing. Content is always a single markdown
// string by the time it gets here, block lists are joined during parsing.
type Section struct {
	ID         string
	Title      string
	Type       common.SectionType
	Required   bool
	Order      int
	Content    string
	Figures    []Figure
	Tables     []Table
	Citations  []Citation
	References []Reference
}

type Dimensions struct {
	Width  float64
	Height float64
}

// Figure carries image as data URI.
type Figure struct {
	ID         string
	Caption    string
	ImageData  string
	AltText    string
	Number     int
	Dimensions *Dimensions
}

// Table is a tagged variant: Shape says which one of Grid or Opaque is set.
type Table struct {
	ID      string
	Caption string
	Title   string
	Number  int
	Shape   common.TableShape
	Grid    *GridTable
	Opaque  *OpaqueTable
}

// GridTable is a table entered cell by cell. Formatting is keyed by
// "row:col" where row 0 is the header row and data rows start at 1.
type GridTable struct {
	Headers    []string
	Rows       [][]string
	Formatting map[string]CellFormat
}

// CellFormat keeps optional per cell flags exactly as they were entered.
// Align and HeaderStyle are resolved when table is normalized.
type CellFormat struct {
	Align       string
	Bold        bool
	Italic      bool
	Underline   bool
	HeaderStyle string
}

// OpaqueTable is a table pasted as pre-rendered markup.
type OpaqueTable struct {
	Markup string
}

// Citation is a bibliographic record cited from a section. Year 0 means
// unknown.
type Citation struct {
	ID        string
	Text      string
	Source    string
	Authors   []string
	Year      int
	Type      common.CitationType
	DOI       string
	URL       string
	Journal   string
	Volume    string
	Issue     string
	Pages     string
	Publisher string
}

// Reference is an entry of the references section.
type Reference struct {
	Citation
	Title string
}

// TitleSection returns the front matter section feeding the title page or
// nil when there is none.
func (d *Document) TitleSection() *Section {
	return d.FrontSection(common.SectionTypeTitle)
}

// FrontSection returns first front matter section of requested type.
func (d *Document) FrontSection(t common.SectionType) *Section {
	for i := range d.FrontMatter {
		if d.FrontMatter[i].Type == t {
			return &d.FrontMatter[i]
		}
	}
	return nil
}

// Title returns thesis title as entered on the title section.
func (d *Document) Title() string {
	if s := d.TitleSection(); s != nil {
		return s.Title
	}
	return ""
}

// IsGrid reports whether table was entered cell by cell.
func (t *Table) IsGrid() bool {
	return t.Shape == common.TableShapeGrid && t.Grid != nil
}

// Label returns text used to refer to the table in captions and messages.
func (t *Table) Label() string {
	if t.Caption != "" {
		return t.Caption
	}
	return t.Title
}
