// Package markdown turns lightweight markdown used in section content into
// document blocks. Only the subset the authoring surface produces is
// recognized: level one headings, flat bulleted and numbered lists, plain
// paragraphs.
package markdown

import (
	"regexp"
	"strings"

	"thesisdoc/convert/model"
)

var orderedItemRe = regexp.MustCompile(`^(\d+)\.\s`)

type listKind int

const (
	listNone listKind = iota
	listUnordered
	listOrdered
)

// listState tracks currently open list run.
type listState struct {
	kind  listKind
	count int
}

func (ls *listState) close() {
	ls.kind, ls.count = listNone, 0
}

// next returns 1-based index of the next item of requested kind, opening new
// run when kind changes.
func (ls *listState) next(kind listKind) int {
	if ls.kind != kind {
		ls.kind, ls.count = kind, 0
	}
	ls.count++
	return ls.count
}

// Convert produces exactly one block per input line. It never fails: text
// that does not match any known construct becomes a paragraph.
func Convert(md string) []model.Block {
	lines := strings.Split(md, "\n")
	blocks := make([]model.Block, 0, len(lines))

	var ls listState
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")

		switch {
		case strings.HasPrefix(line, "# "):
			ls.close()
			blocks = append(blocks, model.NewHeading(1, strings.TrimPrefix(line, "# ")))

		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
			idx := ls.next(listUnordered)
			blocks = append(blocks, model.NewListItem(false, 1, idx, line[2:]))

		case orderedItemRe.MatchString(line):
			idx := ls.next(listOrdered)
			loc := orderedItemRe.FindStringIndex(line)
			blocks = append(blocks, model.NewListItem(true, 1, idx, line[loc[1]:]))

		default:
			ls.close()
			blocks = append(blocks, model.NewParagraph(line))
		}
	}
	return blocks
}
