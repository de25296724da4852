package thesis

import (
	"os"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"thesisdoc/common"
)

func parseFile(t *testing.T, path string, format common.SnapshotFormat) *Document {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	doc, err := Parse(f, format, zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller())))
	if err != nil {
		t.Fatalf("Parse(%s) error = %v", path, err)
	}
	return doc
}

func TestParse_JSONSample(t *testing.T) {
	doc := parseFile(t, "testdata/sample.json", common.SnapshotFormatJson)

	if got := doc.Title(); got != "On Things" {
		t.Errorf("Title() = %q, want %q", got, "On Things")
	}
	if want := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC); !doc.Metadata.CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", doc.Metadata.CreatedAt, want)
	}
	if len(doc.FrontMatter) != 3 || len(doc.Chapters) != 2 || len(doc.BackMatter) != 2 {
		t.Fatalf("unexpected structure: front=%d chapters=%d back=%d", len(doc.FrontMatter), len(doc.Chapters), len(doc.BackMatter))
	}

	findings := doc.Chapters[0].Sections[0]
	if want := "First block.\n\nSecond block.\n\nThird block."; findings.Content != want {
		t.Errorf("joined content = %q, want %q", findings.Content, want)
	}

	tbl := findings.Tables[0]
	if !tbl.IsGrid() {
		t.Fatalf("table t1 expected grid shape, got %v", tbl.Shape)
	}
	if got := strings.Join(tbl.Grid.Rows[0], "|"); got != "1|2" {
		t.Errorf("row 0 = %q, want %q", got, "1|2")
	}
	if got := strings.Join(tbl.Grid.Rows[1], "|"); got != "true|" {
		t.Errorf("row 1 = %q, want %q", got, "true|")
	}
	if f := tbl.Grid.Formatting["1:1"]; f.Align != "right" || !f.Italic {
		t.Errorf("formatting 1:1 = %+v", f)
	}

	bg := doc.Chapters[1].Sections[1]
	if c := bg.Citations[0]; c.Year != 2020 || c.Type != common.CitationTypeBook {
		t.Errorf("citation = %+v, want year 2020 book", c)
	}

	refs := doc.BackMatter[0].References
	if len(refs) != 1 || refs[0].Title != "Paper" || refs[0].Volume != "3" {
		t.Errorf("references = %+v", refs)
	}

	opaque := doc.BackMatter[1].Tables[0]
	if opaque.Shape != common.TableShapeOpaque || opaque.Opaque == nil || opaque.Grid != nil {
		t.Errorf("table t2 expected opaque shape, got %+v", opaque)
	}
}

func TestParse_YAMLSample(t *testing.T) {
	doc := parseFile(t, "testdata/sample.yaml", common.SnapshotFormatYaml)

	if want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC); !doc.Metadata.CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", doc.Metadata.CreatedAt, want)
	}
	s := doc.Chapters[0].Sections[0]
	if s.Content != "First.\n\nSecond." {
		t.Errorf("content = %q", s.Content)
	}
	if got := strings.Join(s.Tables[0].Grid.Rows[0], "|"); got != "1|2.5" {
		t.Errorf("row = %q, want %q", got, "1|2.5")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `{`},
		{"unknown section type", `{"frontMatter":[{"id":"x","type":"preface"}]}`},
		{"unknown citation type", `{"frontMatter":[{"id":"x","type":"title","citations":[{"id":"c","type":"podcast"}]}]}`},
		{"bad year", `{"frontMatter":[{"id":"x","type":"title","citations":[{"id":"c","year":"soon"}]}]}`},
		{"bad created at", `{"metadata":{"createdAt":"yesterday"}}`},
		{"bad content", `{"frontMatter":[{"id":"x","type":"title","content":42}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), common.SnapshotFormatJson, zaptest.NewLogger(t))
			if err == nil {
				t.Error("Parse() expected error, got nil")
			}
		})
	}
}

func TestParse_TableShapes(t *testing.T) {
	input := `{"frontMatter":[{"id":"x","type":"title","tables":[
		{"id":"both","headers":["A"],"rows":[["1"]],"html":"<table></table>"},
		{"id":"markup","markup":"<table><tr><td>1</td></tr></table>"},
		{"id":"empty"}
	]}]}`
	doc, err := Parse(strings.NewReader(input), common.SnapshotFormatJson, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	tables := doc.FrontMatter[0].Tables
	if !tables[0].IsGrid() || tables[0].Opaque != nil {
		t.Errorf("table with cells and markup must be grid, got %+v", tables[0])
	}
	if tables[1].Shape != common.TableShapeOpaque {
		t.Errorf("markup table shape = %v, want opaque", tables[1].Shape)
	}
	if !tables[2].IsGrid() || len(tables[2].Grid.Headers) != 0 {
		t.Errorf("empty table must be zero column grid, got %+v", tables[2])
	}
}

func TestParse_CitationTypeDefaultsToOther(t *testing.T) {
	input := `{"frontMatter":[{"id":"x","type":"title","citations":[{"id":"c","text":"T"}]}]}`
	doc, err := Parse(strings.NewReader(input), common.SnapshotFormatJson, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	c := doc.FrontMatter[0].Citations[0]
	if c.Type != common.CitationTypeOther || c.Year != 0 {
		t.Errorf("citation = %+v, want type other and no year", c)
	}
}

func TestParse_YAMLScalarsKeepSourceText(t *testing.T) {
	input := `metadata:
  thesisDate: 2024-05-01
  createdAt: 2024-05-01T08:30:00Z
  authorName: 42
  keywords: [2024, true, ~]
frontMatter:
  - id: 1
    type: title
    title: 1.10
chapters:
  - id: ch1
    title: 2024
    order: "2"
    sections:
      - id: s1
        type: custom
        title: yes
        order: 007
        citations:
          - id: c1
            text: Text
            authors: [Doe]
            year: "2020"
            volume: 0x1F
            pages: 10-12
`
	doc, err := Parse(strings.NewReader(input), common.SnapshotFormatYaml, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	md := doc.Metadata
	if md.ThesisDate != "2024-05-01" {
		t.Errorf("ThesisDate = %q, want %q", md.ThesisDate, "2024-05-01")
	}
	if want := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC); !md.CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", md.CreatedAt, want)
	}
	if md.AuthorName != "42" {
		t.Errorf("AuthorName = %q, want %q", md.AuthorName, "42")
	}
	if got := strings.Join(md.Keywords, "|"); got != "2024|true|" {
		t.Errorf("Keywords = %q, want %q", got, "2024|true|")
	}

	if fm := doc.FrontMatter[0]; fm.ID != "1" || fm.Title != "1.10" {
		t.Errorf("front matter id/title = %q/%q, want 1/1.10", fm.ID, fm.Title)
	}
	ch := doc.Chapters[0]
	if ch.Title != "2024" || ch.Order != 2 {
		t.Errorf("chapter = %q order %d, want 2024 order 2", ch.Title, ch.Order)
	}
	s := ch.Sections[0]
	if s.Title != "yes" || s.Order != 7 {
		t.Errorf("section = %q order %d, want yes order 7", s.Title, s.Order)
	}
	c := s.Citations[0]
	if c.Year != 2020 || c.Volume != "0x1F" || c.Pages != "10-12" {
		t.Errorf("citation = %+v", c)
	}
}

func TestParse_JSONScalarsKeepSourceText(t *testing.T) {
	input := `{"metadata":{"authorName":7},"frontMatter":[{"id":3,"type":"title","title":1.50}]}`
	doc, err := Parse(strings.NewReader(input), common.SnapshotFormatJson, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if doc.Metadata.AuthorName != "7" {
		t.Errorf("AuthorName = %q, want 7", doc.Metadata.AuthorName)
	}
	if fm := doc.FrontMatter[0]; fm.ID != "3" || fm.Title != "1.50" {
		t.Errorf("front matter id/title = %q/%q, want 3/1.50", fm.ID, fm.Title)
	}
	if _, err := Parse(strings.NewReader(`{"metadata":{"authorName":{"a":1}}}`), common.SnapshotFormatJson, zaptest.NewLogger(t)); err == nil {
		t.Error("Parse() accepted object in text field")
	}
}
