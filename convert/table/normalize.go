// Package table brings both table shapes to a canonical grid and renders it
// as row blocks.
package table

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"thesisdoc/common"
	"thesisdoc/convert/model"
	"thesisdoc/thesis"
)

var (
	// ErrZeroColumns is structural, table could not be rendered at all.
	ErrZeroColumns = thesis.ErrZeroColumns
	// ErrMalformedMarkup is recoverable, table is replaced with placeholder.
	ErrMalformedMarkup = errors.New("malformed table markup")
)

const (
	primaryShading   = "D9D9D9"
	secondaryShading = "F2F2F2"
)

// Grid is canonical table: header row and data rows all having exactly
// Columns cells with resolved styling.
type Grid struct {
	Columns int
	Header  []model.Cell
	Rows    [][]model.Cell
}

// Normalize converts table of any shape into canonical grid.
func Normalize(t *thesis.Table) (*Grid, error) {
	switch t.Shape {
	case common.TableShapeOpaque:
		if t.Opaque == nil {
			return nil, fmt.Errorf("%w: no markup", ErrMalformedMarkup)
		}
		return fromMarkup(t.Opaque.Markup)
	default:
		if t.Grid == nil {
			return nil, ErrZeroColumns
		}
		return fromGrid(t.Grid)
	}
}

func fromGrid(g *thesis.GridTable) (*Grid, error) {
	cols := len(g.Headers)
	if cols == 0 {
		return nil, ErrZeroColumns
	}

	out := &Grid{Columns: cols, Header: make([]model.Cell, cols)}
	for c := range cols {
		out.Header[c] = styledCell(g.Headers[c], g.Formatting, 0, c, true)
	}
	for r, row := range g.Rows {
		cells := make([]model.Cell, cols)
		for c := range cols {
			var text string
			if c < len(row) {
				text = row[c]
			}
			cells[c] = styledCell(text, g.Formatting, r+1, c, false)
		}
		out.Rows = append(out.Rows, cells)
	}
	return out, nil
}

// styledCell resolves optional formatting flags into cell style. Header cells
// without explicit formatting are bold.
func styledCell(text string, formatting map[string]thesis.CellFormat, row, col int, header bool) model.Cell {
	cell := model.Cell{Text: text}
	f, ok := formatting[strconv.Itoa(row)+":"+strconv.Itoa(col)]
	if !ok {
		cell.Bold = header
		return cell
	}

	if a, err := common.ParseAlign(strings.ToLower(f.Align)); err == nil {
		cell.Align = a
	}
	cell.Bold, cell.Italic, cell.Underline = f.Bold, f.Italic, f.Underline

	hs, err := common.ParseHeaderStyle(strings.ToLower(f.HeaderStyle))
	if err != nil {
		hs = common.HeaderStyleNone
	}
	switch hs {
	case common.HeaderStylePrimary:
		cell.Shading, cell.Bold, cell.Uppercase = primaryShading, true, true
	case common.HeaderStyleSecondary:
		// package has no semibold, closest is bold
		cell.Shading, cell.Bold = secondaryShading, true
	}
	return cell
}

// fromMarkup extracts rows and cells from pre-rendered table markup. Original
// styling is not recoverable, result is unstyled except for bold header.
func fromMarkup(markup string) (*Grid, error) {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedMarkup, err)
	}

	tbl := findFirst(root, atom.Table)
	if tbl == nil {
		return nil, fmt.Errorf("%w: no table element", ErrMalformedMarkup)
	}

	type rawRow struct {
		cells  []string
		header bool
	}
	var rows []rawRow
	for tr := range descendants(tbl, atom.Tr) {
		var r rawRow
		r.header = true
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || (c.DataAtom != atom.Td && c.DataAtom != atom.Th) {
				continue
			}
			if c.DataAtom == atom.Td {
				r.header = false
			}
			r.cells = append(r.cells, textContent(c))
		}
		if len(r.cells) > 0 {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedMarkup)
	}

	cols := 0
	for _, r := range rows {
		cols = max(cols, len(r.cells))
	}

	pad := func(in []string, bold bool) []model.Cell {
		out := make([]model.Cell, cols)
		for i := range out {
			if i < len(in) {
				out[i].Text = in[i]
			}
			out[i].Bold = bold
		}
		return out
	}

	// first row is header whether or not it was marked up as such
	g := &Grid{Columns: cols, Header: pad(rows[0].cells, true)}
	for _, r := range rows[1:] {
		g.Rows = append(g.Rows, pad(r.cells, false))
	}
	return g, nil
}

func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}

// descendants yields matching elements in document order without entering
// nested tables.
func descendants(n *html.Node, a atom.Atom) func(yield func(*html.Node) bool) {
	return func(yield func(*html.Node) bool) {
		var walk func(*html.Node) bool
		walk = func(n *html.Node) bool {
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type != html.ElementNode {
					continue
				}
				if c.DataAtom == a {
					if !yield(c) {
						return false
					}
					continue
				}
				if c.DataAtom == atom.Table {
					continue
				}
				if !walk(c) {
					return false
				}
			}
			return true
		}
		walk(n)
	}
}

// inlineAtoms do not separate their text from surrounding text.
var inlineAtoms = map[atom.Atom]bool{
	atom.A: true, atom.Abbr: true, atom.B: true, atom.Code: true, atom.Em: true,
	atom.I: true, atom.Mark: true, atom.S: true, atom.Small: true, atom.Span: true,
	atom.Strong: true, atom.Sub: true, atom.Sup: true, atom.U: true,
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		boundary := n.Type == html.ElementNode && !inlineAtoms[n.DataAtom]
		if boundary {
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if boundary {
			sb.WriteByte(' ')
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
