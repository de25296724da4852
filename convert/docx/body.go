package docx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"thesisdoc/common"
	"thesisdoc/convert/model"
)

const (
	headerRelID = "rIdHeader1"
	footerRelID = "rIdFooter1"
)

type mediaPart struct {
	relID string
	name  string
	mime  string
	data  []byte
}

// bodyWriter renders block stream as word/document.xml collecting media and
// list instances on the way.
type bodyWriter struct {
	doc   *model.Document
	body  *etree.Element
	media []mediaPart
	nums  *numbering

	hasHeader bool
	hasFooter bool
	// drawing object ids must be unique in the document
	drawingID int
}

func newBodyWriter(doc *model.Document) *bodyWriter {
	return &bodyWriter{
		doc:       doc,
		nums:      newNumbering(),
		hasHeader: doc.Layout.HeaderText != "",
		hasFooter: doc.Layout.FooterText != "" || doc.Layout.PageNumbers,
	}
}

func (bw *bodyWriter) render() *etree.Document {
	xdoc := newXMLDocument()
	root := xdoc.CreateElement("w:document")
	root.CreateAttr("xmlns:w", nsW)
	root.CreateAttr("xmlns:r", nsR)
	root.CreateAttr("xmlns:wp", nsWP)
	root.CreateAttr("xmlns:a", nsA)
	root.CreateAttr("xmlns:pic", nsPic)
	bw.body = root.CreateElement("w:body")

	blocks := bw.doc.Blocks
	for i := 0; i < len(blocks); i++ {
		b := &blocks[i]
		if b.Kind == model.KindTableRow {
			j := i + 1
			for j < len(blocks) && sameTable(b.Row, blocks[j]) {
				j++
			}
			bw.table(blocks[i:j])
			// tables may not touch each other or the section end
			if j == len(blocks) || blocks[j].Kind == model.KindTableRow {
				bw.body.CreateElement("w:p")
			}
			i = j - 1
			continue
		}
		bw.block(b)
	}
	bw.sectionProperties()
	return xdoc
}

func (bw *bodyWriter) block(b *model.Block) {
	switch b.Kind {
	case model.KindHeading:
		p := bw.body.CreateElement("w:p")
		setStyle(p, fmt.Sprintf("Heading%d", b.Heading.Level))
		addText(p, b.Heading.Text, runProps{})

	case model.KindListItem:
		li := b.ListItem
		p := bw.body.CreateElement("w:p")
		ppr := setStyle(p, "ListParagraph")
		numPr := ppr.CreateElement("w:numPr")
		setVal(numPr.CreateElement("w:ilvl"), strconv.Itoa(min(max(li.Level-1, 0), listLevels-1)))
		setVal(numPr.CreateElement("w:numId"), strconv.Itoa(bw.nums.forItem(li)))
		addText(p, li.Text, runProps{})

	case model.KindImage:
		bw.image(b.Image)

	case model.KindPageBreak:
		br := bw.body.CreateElement("w:p").CreateElement("w:r").CreateElement("w:br")
		br.CreateAttr("w:type", "page")

	case model.KindCaption:
		bw.paragraph(b.Paragraph, "Caption", runProps{})

	case model.KindReference:
		bw.paragraph(b.Paragraph, "Bibliography", runProps{})

	case model.KindPlaceholder:
		bw.paragraph(b.Paragraph, "", runProps{italic: true})

	default:
		style := ""
		if b.Paragraph.Style != model.StyleNormal {
			style = string(b.Paragraph.Style)
		}
		bw.paragraph(b.Paragraph, style, runProps{bold: b.Paragraph.Bold})
	}
}

func (bw *bodyWriter) paragraph(para *model.Paragraph, style string, rp runProps) {
	p := bw.body.CreateElement("w:p")
	if style != "" || para.Align != "" {
		ppr := p.CreateElement("w:pPr")
		if style != "" {
			setVal(ppr.CreateElement("w:pStyle"), style)
		}
		if para.Align != "" {
			setVal(ppr.CreateElement("w:jc"), justification(para.Align))
		}
	}
	addText(p, para.Text, rp)
}

func (bw *bodyWriter) image(img *model.Image) {
	bw.drawingID++
	relID := fmt.Sprintf("rIdImage%d", bw.drawingID)
	bw.media = append(bw.media, mediaPart{relID: relID, name: img.Name, mime: img.MIME, data: img.Data})

	cx := strconv.Itoa(img.Width * emuPerPixel)
	cy := strconv.Itoa(img.Height * emuPerPixel)
	id := strconv.Itoa(bw.drawingID)

	p := bw.body.CreateElement("w:p")
	setVal(p.CreateElement("w:pPr").CreateElement("w:jc"), "center")

	inline := p.CreateElement("w:r").CreateElement("w:drawing").CreateElement("wp:inline")
	for _, a := range []string{"distT", "distB", "distL", "distR"} {
		inline.CreateAttr(a, "0")
	}
	ext := inline.CreateElement("wp:extent")
	ext.CreateAttr("cx", cx)
	ext.CreateAttr("cy", cy)
	eff := inline.CreateElement("wp:effectExtent")
	for _, a := range []string{"l", "t", "r", "b"} {
		eff.CreateAttr(a, "0")
	}
	docPr := inline.CreateElement("wp:docPr")
	docPr.CreateAttr("id", id)
	docPr.CreateAttr("name", "Picture "+id)
	docPr.CreateAttr("descr", img.Description)
	inline.CreateElement("wp:cNvGraphicFramePr").CreateElement("a:graphicFrameLocks").CreateAttr("noChangeAspect", "1")

	gd := inline.CreateElement("a:graphic").CreateElement("a:graphicData")
	gd.CreateAttr("uri", nsPic)
	pic := gd.CreateElement("pic:pic")

	nv := pic.CreateElement("pic:nvPicPr")
	cNvPr := nv.CreateElement("pic:cNvPr")
	cNvPr.CreateAttr("id", id)
	cNvPr.CreateAttr("name", img.Name)
	cNvPr.CreateAttr("descr", img.Description)
	nv.CreateElement("pic:cNvPicPr")

	fill := pic.CreateElement("pic:blipFill")
	fill.CreateElement("a:blip").CreateAttr("r:embed", relID)
	fill.CreateElement("a:stretch").CreateElement("a:fillRect")

	sp := pic.CreateElement("pic:spPr")
	xfrm := sp.CreateElement("a:xfrm")
	off := xfrm.CreateElement("a:off")
	off.CreateAttr("x", "0")
	off.CreateAttr("y", "0")
	aext := xfrm.CreateElement("a:ext")
	aext.CreateAttr("cx", cx)
	aext.CreateAttr("cy", cy)
	geom := sp.CreateElement("a:prstGeom")
	geom.CreateAttr("prst", "rect")
	geom.CreateElement("a:avLst")
}

// sameTable reports whether block continues table started by first row.
// Every table starts with its header row, so a header row always opens a new
// one even when table ids repeat.
func sameTable(first *model.Row, b model.Block) bool {
	return b.Kind == model.KindTableRow && !b.Row.Header && b.Row.TableID == first.TableID
}

func (bw *bodyWriter) table(rows []model.Block) {
	cols := 1
	for i := range rows {
		cols = max(cols, rows[i].Row.Columns, len(rows[i].Row.Cells))
	}
	colWidth := max(bw.textWidth()/cols, 1)

	tbl := bw.body.CreateElement("w:tbl")
	tblPr := tbl.CreateElement("w:tblPr")
	setVal(tblPr.CreateElement("w:tblStyle"), "TableGrid")
	tw := tblPr.CreateElement("w:tblW")
	tw.CreateAttr("w:w", strconv.Itoa(colWidth*cols))
	tw.CreateAttr("w:type", "dxa")

	grid := tbl.CreateElement("w:tblGrid")
	for range cols {
		grid.CreateElement("w:gridCol").CreateAttr("w:w", strconv.Itoa(colWidth))
	}

	for i := range rows {
		row := rows[i].Row
		tr := tbl.CreateElement("w:tr")
		if row.Header {
			tr.CreateElement("w:trPr").CreateElement("w:tblHeader")
		}
		for c := range cols {
			var cell model.Cell
			if c < len(row.Cells) {
				cell = row.Cells[c]
			}
			tc := tr.CreateElement("w:tc")
			tcPr := tc.CreateElement("w:tcPr")
			w := tcPr.CreateElement("w:tcW")
			w.CreateAttr("w:w", strconv.Itoa(colWidth))
			w.CreateAttr("w:type", "dxa")
			if cell.Shading != "" {
				shd := tcPr.CreateElement("w:shd")
				shd.CreateAttr("w:val", "clear")
				shd.CreateAttr("w:color", "auto")
				shd.CreateAttr("w:fill", cell.Shading)
			}
			// every cell must hold a paragraph, even an empty one
			p := tc.CreateElement("w:p")
			if cell.Align != "" {
				setVal(p.CreateElement("w:pPr").CreateElement("w:jc"), justification(cell.Align))
			}
			addText(p, cell.Text, runProps{bold: cell.Bold, italic: cell.Italic, underline: cell.Underline, caps: cell.Uppercase})
		}
	}
}

func (bw *bodyWriter) textWidth() int {
	l := &bw.doc.Layout
	return max(l.Width-l.Margins.Left-l.Margins.Right, twipsPerPixel)
}

func (bw *bodyWriter) sectionProperties() {
	l := &bw.doc.Layout
	sect := bw.body.CreateElement("w:sectPr")
	if bw.hasHeader {
		ref := sect.CreateElement("w:headerReference")
		ref.CreateAttr("w:type", "default")
		ref.CreateAttr("r:id", headerRelID)
	}
	if bw.hasFooter {
		ref := sect.CreateElement("w:footerReference")
		ref.CreateAttr("w:type", "default")
		ref.CreateAttr("r:id", footerRelID)
	}
	sz := sect.CreateElement("w:pgSz")
	sz.CreateAttr("w:w", strconv.Itoa(l.Width))
	sz.CreateAttr("w:h", strconv.Itoa(l.Height))
	if l.Landscape {
		sz.CreateAttr("w:orient", "landscape")
	}
	mar := sect.CreateElement("w:pgMar")
	for _, m := range []struct {
		name string
		val  int
	}{
		{"w:top", l.Margins.Top},
		{"w:right", l.Margins.Right},
		{"w:bottom", l.Margins.Bottom},
		{"w:left", l.Margins.Left},
		{"w:header", l.Margins.Header},
		{"w:footer", l.Margins.Footer},
		{"w:gutter", 0},
	} {
		mar.CreateAttr(m.name, strconv.Itoa(m.val))
	}
	if l.TitlePageDistinct {
		sect.CreateElement("w:titlePg")
	}
}

type runProps struct {
	bold, italic, underline, caps bool
}

// addText adds run with text to paragraph, line breaks in text become
// explicit breaks.
func addText(p *etree.Element, text string, rp runProps) {
	r := p.CreateElement("w:r")
	if rp.bold || rp.italic || rp.underline || rp.caps {
		rpr := r.CreateElement("w:rPr")
		if rp.bold {
			rpr.CreateElement("w:b")
		}
		if rp.italic {
			rpr.CreateElement("w:i")
		}
		if rp.caps {
			rpr.CreateElement("w:caps")
		}
		if rp.underline {
			setVal(rpr.CreateElement("w:u"), "single")
		}
	}
	for i, line := range strings.Split(xmlSafe(text), "\n") {
		if i > 0 {
			r.CreateElement("w:br")
		}
		if line == "" {
			continue
		}
		t := r.CreateElement("w:t")
		t.CreateAttr("xml:space", "preserve")
		t.SetText(line)
	}
}

// xmlSafe drops characters XML 1.0 does not allow.
func xmlSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n':
			return r
		case r < 0x20, r == 0xFFFE, r == 0xFFFF:
			return -1
		}
		return r
	}, s)
}

func setStyle(p *etree.Element, style string) *etree.Element {
	ppr := p.CreateElement("w:pPr")
	setVal(ppr.CreateElement("w:pStyle"), style)
	return ppr
}

func setVal(el *etree.Element, val string) {
	el.CreateAttr("w:val", val)
}

func justification(a common.Align) string {
	if a == common.AlignJustify {
		return "both"
	}
	return a.String()
}
