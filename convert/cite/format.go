// Package cite formats citations and references. Export format is fixed and
// used in generated documents, preview styles follow common academic
// conventions. Absent fields never leave their punctuation behind.
package cite

import (
	"strconv"
	"strings"

	"thesisdoc/common"
	"thesisdoc/thesis"
)

// Export formats citation in fixed export form:
// "({authors}, {year}): {text}, {source}".
func Export(c *thesis.Citation) string {
	return exportWith(c, c.Text)
}

// ExportReference is Export for references, title is preferred over text.
func ExportReference(r *thesis.Reference) string {
	return exportWith(&r.Citation, referenceTitle(r))
}

// Preview formats citation in requested style. Export style is accepted as
// well.
func Preview(c *thesis.Citation, style common.CitationStyle) string {
	return format(c, c.Text, style)
}

// PreviewReference is Preview for references, title is preferred over text.
func PreviewReference(r *thesis.Reference, style common.CitationStyle) string {
	return format(&r.Citation, referenceTitle(r), style)
}

func referenceTitle(r *thesis.Reference) string {
	if t := strings.TrimSpace(r.Title); t != "" {
		return t
	}
	return r.Text
}

func format(c *thesis.Citation, title string, style common.CitationStyle) string {
	switch style {
	case common.CitationStyleApa:
		return previewWith(c, title, &apaStyle)
	case common.CitationStyleMla:
		return previewWith(c, title, &mlaStyle)
	case common.CitationStyleChicago:
		return previewWith(c, title, &chicagoStyle)
	}
	return exportWith(c, title)
}

func exportWith(c *thesis.Citation, text string) string {
	head := joinNonEmpty(", ", strings.Join(cleanAuthors(c.Authors), ", "), year(c))
	tail := joinNonEmpty(", ", strings.TrimSpace(text), strings.TrimSpace(c.Source))
	switch {
	case head == "":
		return tail
	case tail == "":
		return "(" + head + ")"
	}
	return "(" + head + "): " + tail
}

func previewWith(c *thesis.Citation, title string, cfg *styleConfig) string {
	var names []personName
	for _, a := range cleanAuthors(c.Authors) {
		names = append(names, parseName(a))
	}

	head := cfg.names(names)
	if cfg.yearAfterNames && c.Year > 0 {
		head = joinNonEmpty(" ", head, "("+year(c)+")")
	}

	title = strings.TrimSpace(title)
	if cfg.quoteTitle && title != "" {
		title = `"` + withPeriod(title) + `"`
	}

	segments := []string{head, title, container(c, cfg)}
	if doi := strings.TrimSpace(c.DOI); doi != "" {
		segments = append(segments, "https://doi.org/"+strings.TrimPrefix(doi, "https://doi.org/"))
	} else if u := strings.TrimSpace(c.URL); u != "" {
		segments = append(segments, u)
	}

	out := sentences(segments)
	if cfg.finalPeriod && out != "" {
		out = withPeriod(out)
	}
	return out
}

// container is the part describing where the work was published.
func container(c *thesis.Citation, cfg *styleConfig) string {
	yr := ""
	if !cfg.yearAfterNames && c.Year > 0 {
		yr = year(c)
	}

	journal := strings.TrimSpace(c.Journal)
	if journal == "" || c.Type == common.CitationTypeBook {
		return joinNonEmpty(", ", strings.TrimSpace(c.Publisher), yr)
	}

	vi := cfg.volumeIssue(strings.TrimSpace(c.Volume), strings.TrimSpace(c.Issue))
	out := joinNonEmpty(cfg.journalSep, journal, vi)
	if yr != "" {
		out += " (" + yr + ")"
	}
	if pages := strings.TrimSpace(c.Pages); pages != "" && (!cfg.pagesNeedVolume || strings.TrimSpace(c.Volume) != "") {
		out += cfg.pagesSep + pages
	}
	if cfg.yearAfterNames {
		// publisher is its own sentence in author-date styles
		return joinSentence(out, strings.TrimSpace(c.Publisher))
	}
	return out
}

// sentences joins non-empty segments into sentences, punctuation already
// present at the end of a segment is not doubled.
func sentences(segments []string) string {
	var out string
	for _, s := range segments {
		out = joinSentence(out, s)
	}
	return out
}

func joinSentence(a, b string) string {
	switch {
	case b == "":
		return a
	case a == "":
		return b
	case endsSentence(a):
		return a + " " + b
	}
	return a + ". " + b
}

func withPeriod(s string) string {
	if endsSentence(s) {
		return s
	}
	return s + "."
}

func endsSentence(s string) bool {
	s = strings.TrimSuffix(s, `"`)
	return strings.HasSuffix(s, ".") || strings.HasSuffix(s, "?") || strings.HasSuffix(s, "!")
}

func year(c *thesis.Citation) string {
	if c.Year <= 0 {
		return ""
	}
	return strconv.Itoa(c.Year)
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
