package cite

import (
	"strings"
	"testing"

	"thesisdoc/common"
	"thesisdoc/thesis"
)

var (
	article = thesis.Citation{
		Text:    "Deep Things",
		Authors: []string{"John Ronald Smith", "Lee, Ann"},
		Year:    2019,
		Type:    common.CitationTypeArticle,
		Journal: "Journal of Things",
		Volume:  "3",
		Issue:   "2",
		Pages:   "10-20",
		DOI:     "10.1000/xyz",
	}
	book = thesis.Citation{
		Text:    "Book Title",
		Source:  "Publisher",
		Authors: []string{"John Smith"},
		Year:    2020,
		Type:    common.CitationTypeBook,
	}
)

func TestExport(t *testing.T) {
	tests := []struct {
		name string
		c    thesis.Citation
		want string
	}{
		{"full", book, "(John Smith, 2020): Book Title, Publisher"},
		{"several authors", thesis.Citation{Text: "T", Source: "S", Authors: []string{"A", " ", "B"}, Year: 1999}, "(A, B, 1999): T, S"},
		{"no year", thesis.Citation{Text: "T", Source: "S", Authors: []string{"A"}}, "(A): T, S"},
		{"no authors", thesis.Citation{Text: "T", Source: "S", Year: 2001}, "(2001): T, S"},
		{"nothing in parentheses", thesis.Citation{Text: "T", Source: "S"}, "T, S"},
		{"no source", thesis.Citation{Text: "T", Authors: []string{"A"}, Year: 2001}, "(A, 2001): T"},
		{"empty", thesis.Citation{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Export(&tt.c); got != tt.want {
				t.Errorf("Export() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExportReference_PrefersTitle(t *testing.T) {
	r := thesis.Reference{Citation: thesis.Citation{Text: "text", Authors: []string{"A"}, Year: 2000}, Title: "Title"}
	if got := ExportReference(&r); got != "(A, 2000): Title" {
		t.Errorf("ExportReference() = %q", got)
	}
	r.Title = ""
	if got := ExportReference(&r); got != "(A, 2000): text" {
		t.Errorf("ExportReference() = %q", got)
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name  string
		c     thesis.Citation
		style common.CitationStyle
		want  string
	}{
		{"apa article", article, common.CitationStyleApa,
			"Smith, J. R., & Lee, A. (2019). Deep Things. Journal of Things, 3(2), 10-20. https://doi.org/10.1000/xyz"},
		{"apa book", book, common.CitationStyleApa, "Smith, J. (2020). Book Title"},
		{"apa book with publisher", thesis.Citation{Text: "B", Authors: []string{"Ann Lee"}, Year: 2001, Type: common.CitationTypeBook, Publisher: "Press"},
			common.CitationStyleApa, "Lee, A. (2001). B. Press"},
		{"apa pages need volume", thesis.Citation{Text: "T", Journal: "J", Pages: "1-2", Type: common.CitationTypeArticle}, common.CitationStyleApa, "T. J"},
		{"apa three authors", thesis.Citation{Text: "T", Authors: []string{"A B", "C D", "E F"}}, common.CitationStyleApa, "B, A., D, C., & F, E. T"},
		{"mla article", article, common.CitationStyleMla,
			`Smith, John Ronald, and Ann Lee. "Deep Things." Journal of Things 3.2 (2019): 10-20. https://doi.org/10.1000/xyz.`},
		{"mla book", book, common.CitationStyleMla, `Smith, John. "Book Title." 2020.`},
		{"mla book with publisher", thesis.Citation{Text: "B", Authors: []string{"Ann Lee"}, Year: 2001, Type: common.CitationTypeBook, Publisher: "Press"},
			common.CitationStyleMla, `Lee, Ann. "B." Press, 2001.`},
		{"mla three authors", thesis.Citation{Text: "T?", Authors: []string{"A B", "C D", "E F"}}, common.CitationStyleMla, `B, A, C D, and E F. "T?"`},
		{"chicago article", article, common.CitationStyleChicago,
			`Smith, John Ronald, and Ann Lee. "Deep Things." Journal of Things 3, no. 2 (2019): 10-20. https://doi.org/10.1000/xyz.`},
		{"chicago no issue", thesis.Citation{Text: "T", Journal: "J", Volume: "4", Year: 2000}, common.CitationStyleChicago, `"T." J 4 (2000).`},
		{"website url", thesis.Citation{Text: "Page", Type: common.CitationTypeWebsite, URL: "https://example.org"}, common.CitationStyleApa, "Page. https://example.org"},
		{"export style", book, common.CitationStyleExport, "(John Smith, 2020): Book Title, Publisher"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preview(&tt.c, tt.style); got != tt.want {
				t.Errorf("Preview() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestPreview_NeverLeaksAbsentFields(t *testing.T) {
	records := []thesis.Citation{
		book,
		article,
		{},
		{Text: "Only text"},
		{Authors: []string{"Only Author"}},
		{Year: 2000},
		{Journal: "J"},
		{Journal: "J", Issue: "4"},
		{Type: common.CitationTypeBook, Journal: "Ignored", Publisher: "P"},
	}
	for _, style := range common.CitationStyleValues() {
		for _, r := range records {
			got := Preview(&r, style)
			for _, bad := range []string{"undefined", "null", "()", ", ,", "..", ". .", " ,", "(0)"} {
				if strings.Contains(got, bad) {
					t.Errorf("%s: Preview(%+v) = %q contains %q", style, r, got, bad)
				}
			}
			if strings.HasPrefix(got, ".") || strings.HasPrefix(got, ",") || strings.HasPrefix(got, " ") {
				t.Errorf("%s: Preview(%+v) = %q starts with punctuation", style, r, got)
			}
		}
	}
}

func TestParseName(t *testing.T) {
	tests := []struct {
		in       string
		inverted string
		initials string
		natural  string
	}{
		{"John Smith", "Smith, John", "Smith, J.", "John Smith"},
		{"Smith, John Ronald", "Smith, John Ronald", "Smith, J. R.", "John Ronald Smith"},
		{"Jean-Paul  Sartre", "Sartre, Jean-Paul", "Sartre, J.-P.", "Jean-Paul Sartre"},
		{"Plato", "Plato", "Plato", "Plato"},
	}
	for _, tt := range tests {
		n := parseName(tt.in)
		if got := n.inverted(false); got != tt.inverted {
			t.Errorf("inverted(%q) = %q, want %q", tt.in, got, tt.inverted)
		}
		if got := n.inverted(true); got != tt.initials {
			t.Errorf("initials(%q) = %q, want %q", tt.in, got, tt.initials)
		}
		if got := n.natural(); got != tt.natural {
			t.Errorf("natural(%q) = %q, want %q", tt.in, got, tt.natural)
		}
	}
}
