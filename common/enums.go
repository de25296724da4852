// Package common holds enumerations shared by configuration and the thesis
// data model. Kept separate so that thesis does not depend on config.
package common

//go:generate go tool go-enum --marshal --names --values

// Closed set of section tags produced by the authoring surface.
// ENUM(title, abstract, acknowledgements, dedication, table_of_contents, list_of_figures, list_of_tables, introduction, literature_review, methodology, results, discussion, conclusion, references, appendix, custom)
type SectionType string

// Kind of bibliographic record.
// ENUM(book, article, conference, website, other)
type CitationType string

// Citation rendering convention. Export is the fixed format used in
// generated documents, the rest are preview styles.
// ENUM(export, apa, mla, chicago)
type CitationStyle string

// Cell text alignment.
// ENUM(left, center, right, justify)
type Align string

// Table header cell emphasis.
// ENUM(none, primary, secondary)
type HeaderStyle string

// Shape a table arrived in from the authoring surface.
// ENUM(grid, opaque)
type TableShape int

// Export variant.
// ENUM(full, preview)
type Variant int

// IsPreview reports whether reduced variant was requested.
func (v Variant) IsPreview() bool {
	return v == VariantPreview
}

// Encoding of thesis snapshot file.
// ENUM(json, yaml)
type SnapshotFormat int
