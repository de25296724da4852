package docx

import (
	"strconv"

	"github.com/beevik/etree"

	"thesisdoc/convert/model"
)

const (
	defaultFont     = "Times New Roman"
	defaultFontSize = 12
)

type styleDef struct {
	id, name string
	size     int // points, 0 inherits
	bold     bool
	italic   bool
	align    string
	outline  int // outline level + 1, 0 for body styles
	before   int // spacing in twips
	after    int
	keepNext bool
	hanging  int
}

func paragraphStyles(base int) []styleDef {
	return []styleDef{
		{id: "Title", name: "Title", size: base * 2, bold: true, align: "center", before: 2400, after: 480},
		{id: "Subtitle", name: "Subtitle", size: base + 2, italic: true, align: "center", after: 480},
		{id: "Heading1", name: "heading 1", size: base + 6, bold: true, outline: 1, before: 480, after: 240, keepNext: true},
		{id: "Heading2", name: "heading 2", size: base + 4, bold: true, outline: 2, before: 360, after: 180, keepNext: true},
		{id: "Heading3", name: "heading 3", size: base + 2, bold: true, outline: 3, before: 240, after: 120, keepNext: true},
		{id: "Caption", name: "caption", size: max(base-2, 8), italic: true, align: "center", after: 240},
		{id: "ListParagraph", name: "List Paragraph", after: 60},
		{id: "Bibliography", name: "Bibliography", hanging: 720, after: 120},
		{id: "Header", name: "header", size: max(base-2, 8)},
		{id: "Footer", name: "footer", size: max(base-2, 8)},
	}
}

// styles defines every style body and header parts refer to.
func styles(l *model.PageLayout, lang string) *etree.Document {
	font, size := l.FontName, l.FontSize
	if font == "" {
		font = defaultFont
	}
	if size <= 0 {
		size = defaultFontSize
	}

	doc := newXMLDocument()
	root := doc.CreateElement("w:styles")
	root.CreateAttr("xmlns:w", nsW)

	defaults := root.CreateElement("w:docDefaults")
	rpr := defaults.CreateElement("w:rPrDefault").CreateElement("w:rPr")
	fonts := rpr.CreateElement("w:rFonts")
	for _, a := range []string{"w:ascii", "w:hAnsi", "w:cs", "w:eastAsia"} {
		fonts.CreateAttr(a, font)
	}
	// sizes are in half-points
	setVal(rpr.CreateElement("w:sz"), strconv.Itoa(size*2))
	setVal(rpr.CreateElement("w:szCs"), strconv.Itoa(size*2))
	setVal(rpr.CreateElement("w:lang"), lang)
	spacing := defaults.CreateElement("w:pPrDefault").CreateElement("w:pPr").CreateElement("w:spacing")
	spacing.CreateAttr("w:after", "120")
	spacing.CreateAttr("w:line", "360")
	spacing.CreateAttr("w:lineRule", "auto")

	normal := root.CreateElement("w:style")
	normal.CreateAttr("w:type", "paragraph")
	normal.CreateAttr("w:default", "1")
	normal.CreateAttr("w:styleId", "Normal")
	setVal(normal.CreateElement("w:name"), "Normal")
	normal.CreateElement("w:qFormat")

	for _, sd := range paragraphStyles(size) {
		paragraphStyle(root, sd)
	}
	tableGrid(root)
	return doc
}

func paragraphStyle(root *etree.Element, sd styleDef) {
	st := root.CreateElement("w:style")
	st.CreateAttr("w:type", "paragraph")
	st.CreateAttr("w:styleId", sd.id)
	setVal(st.CreateElement("w:name"), sd.name)
	setVal(st.CreateElement("w:basedOn"), "Normal")
	setVal(st.CreateElement("w:next"), "Normal")
	st.CreateElement("w:qFormat")

	ppr := st.CreateElement("w:pPr")
	if sd.keepNext {
		ppr.CreateElement("w:keepNext")
	}
	if sd.before != 0 || sd.after != 0 {
		sp := ppr.CreateElement("w:spacing")
		sp.CreateAttr("w:before", strconv.Itoa(sd.before))
		sp.CreateAttr("w:after", strconv.Itoa(sd.after))
	}
	if sd.hanging != 0 {
		ind := ppr.CreateElement("w:ind")
		ind.CreateAttr("w:left", strconv.Itoa(sd.hanging))
		ind.CreateAttr("w:hanging", strconv.Itoa(sd.hanging))
	}
	if sd.align != "" {
		setVal(ppr.CreateElement("w:jc"), sd.align)
	}
	if sd.outline > 0 {
		setVal(ppr.CreateElement("w:outlineLvl"), strconv.Itoa(sd.outline-1))
	}

	if sd.bold || sd.italic || sd.size > 0 {
		rpr := st.CreateElement("w:rPr")
		if sd.bold {
			rpr.CreateElement("w:b")
		}
		if sd.italic {
			rpr.CreateElement("w:i")
		}
		if sd.size > 0 {
			setVal(rpr.CreateElement("w:sz"), strconv.Itoa(sd.size*2))
		}
	}
}

func tableGrid(root *etree.Element) {
	st := root.CreateElement("w:style")
	st.CreateAttr("w:type", "table")
	st.CreateAttr("w:styleId", "TableGrid")
	setVal(st.CreateElement("w:name"), "Table Grid")

	spacing := st.CreateElement("w:pPr").CreateElement("w:spacing")
	spacing.CreateAttr("w:after", "0")
	spacing.CreateAttr("w:line", "240")
	spacing.CreateAttr("w:lineRule", "auto")

	tblPr := st.CreateElement("w:tblPr")
	borders := tblPr.CreateElement("w:tblBorders")
	for _, side := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		b := borders.CreateElement("w:" + side)
		setVal(b, "single")
		b.CreateAttr("w:sz", "4")
		b.CreateAttr("w:space", "0")
		b.CreateAttr("w:color", "auto")
	}
	mar := tblPr.CreateElement("w:tblCellMar")
	for _, side := range []string{"left", "right"} {
		m := mar.CreateElement("w:" + side)
		m.CreateAttr("w:w", "108")
		m.CreateAttr("w:type", "dxa")
	}
}
