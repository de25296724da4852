package docx

import (
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"golang.org/x/text/language"

	"thesisdoc/convert/model"
	"thesisdoc/misc"
)

func contentTypes(bw *bodyWriter) *etree.Document {
	doc := newXMLDocument()
	root := doc.CreateElement("Types")
	root.CreateAttr("xmlns", nsCT)

	def := func(ext, ct string) {
		d := root.CreateElement("Default")
		d.CreateAttr("Extension", ext)
		d.CreateAttr("ContentType", ct)
	}
	def("rels", ctRels)
	def("xml", "application/xml")

	seen := map[string]bool{}
	for _, m := range bw.media {
		ext := strings.TrimPrefix(path.Ext(m.name), ".")
		if ext == "" || seen[ext] {
			continue
		}
		seen[ext] = true
		def(ext, m.mime)
	}

	override := func(part, ct string) {
		o := root.CreateElement("Override")
		o.CreateAttr("PartName", "/"+part)
		o.CreateAttr("ContentType", ct)
	}
	override(partDocument, ctMainPrefix+"document.main+xml")
	override(partStyles, ctMainPrefix+"styles+xml")
	override(partNumbering, ctMainPrefix+"numbering+xml")
	override(partSettings, ctMainPrefix+"settings+xml")
	if bw.hasHeader {
		override(partHeader, ctMainPrefix+"header+xml")
	}
	if bw.hasFooter {
		override(partFooter, ctMainPrefix+"footer+xml")
	}
	override(partCore, ctCoreProps)
	override(partApp, ctExtProps)
	return doc
}

func relationships(rels []relationship) *etree.Document {
	doc := newXMLDocument()
	root := doc.CreateElement("Relationships")
	root.CreateAttr("xmlns", nsPR)
	for _, r := range rels {
		el := root.CreateElement("Relationship")
		el.CreateAttr("Id", r.id)
		el.CreateAttr("Type", r.typ)
		el.CreateAttr("Target", r.target)
	}
	return doc
}

// Identifier returns stable package identifier derived from document
// metadata.
func Identifier(meta *model.Meta) string {
	if meta.Identifier != "" {
		return meta.Identifier
	}
	key := strings.Join([]string{meta.Title, meta.Creator, meta.Created.UTC().Format(time.RFC3339)}, "\x00")
	return "urn:uuid:" + uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
}

func coreProperties(meta *model.Meta) *etree.Document {
	doc := newXMLDocument()
	root := doc.CreateElement("cp:coreProperties")
	root.CreateAttr("xmlns:cp", "http://schemas.openxmlformats.org/package/2006/metadata/core-properties")
	root.CreateAttr("xmlns:dc", "http://purl.org/dc/elements/1.1/")
	root.CreateAttr("xmlns:dcterms", "http://purl.org/dc/terms/")
	root.CreateAttr("xmlns:dcmitype", "http://purl.org/dc/dcmitype/")
	root.CreateAttr("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance")

	text := func(tag, value string) {
		if value != "" {
			root.CreateElement(tag).SetText(xmlSafe(value))
		}
	}
	text("dc:title", meta.Title)
	text("dc:subject", meta.Subject)
	text("dc:creator", meta.Creator)
	text("cp:keywords", strings.Join(meta.Keywords, ", "))
	text("dc:description", meta.Description)
	text("dc:identifier", Identifier(meta))
	text("dc:language", docLanguage(meta.Language))
	text("cp:lastModifiedBy", meta.Creator)

	if !meta.Created.IsZero() {
		stamp := meta.Created.UTC().Format(time.RFC3339)
		for _, tag := range []string{"dcterms:created", "dcterms:modified"} {
			el := root.CreateElement(tag)
			el.CreateAttr("xsi:type", "dcterms:W3CDTF")
			el.SetText(stamp)
		}
	}
	return doc
}

func appProperties(d *model.Document) *etree.Document {
	doc := newXMLDocument()
	root := doc.CreateElement("Properties")
	root.CreateAttr("xmlns", "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties")
	root.CreateAttr("xmlns:vt", "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes")
	root.CreateElement("Application").SetText(misc.GetAppName())
	root.CreateElement("DocSecurity").SetText("0")

	paragraphs := 0
	for i := range d.Blocks {
		if d.Blocks[i].Kind != model.KindPageBreak && d.Blocks[i].Kind != model.KindTableRow {
			paragraphs++
		}
	}
	root.CreateElement("Paragraphs").SetText(strconv.Itoa(paragraphs))
	return doc
}

// docLanguage normalizes BCP 47 tag, falls back to en-US.
func docLanguage(tag string) string {
	t, err := language.Parse(tag)
	if err != nil || t == language.Und {
		return language.AmericanEnglish.String()
	}
	return t.String()
}

func settings() *etree.Document {
	doc := newXMLDocument()
	root := doc.CreateElement("w:settings")
	root.CreateAttr("xmlns:w", nsW)
	setVal(root.CreateElement("w:defaultTabStop"), "720")
	setVal(root.CreateElement("w:characterSpacingControl"), "doNotCompress")
	return doc
}

func header(text string) *etree.Document {
	doc := newXMLDocument()
	root := doc.CreateElement("w:hdr")
	root.CreateAttr("xmlns:w", nsW)
	root.CreateAttr("xmlns:r", nsR)

	p := root.CreateElement("w:p")
	ppr := setStyle(p, "Header")
	setVal(ppr.CreateElement("w:jc"), "center")
	addText(p, text, runProps{})
	return doc
}

// footer holds optional text followed by running page number field.
func footer(text string, pageNumbers bool) *etree.Document {
	doc := newXMLDocument()
	root := doc.CreateElement("w:ftr")
	root.CreateAttr("xmlns:w", nsW)
	root.CreateAttr("xmlns:r", nsR)

	p := root.CreateElement("w:p")
	ppr := setStyle(p, "Footer")
	setVal(ppr.CreateElement("w:jc"), "center")
	if text != "" {
		addText(p, text, runProps{})
	}
	if !pageNumbers {
		return doc
	}

	fldChar := func(kind string) {
		p.CreateElement("w:r").CreateElement("w:fldChar").CreateAttr("w:fldCharType", kind)
	}
	fldChar("begin")
	instr := p.CreateElement("w:r").CreateElement("w:instrText")
	instr.CreateAttr("xml:space", "preserve")
	instr.SetText(" PAGE ")
	fldChar("separate")
	p.CreateElement("w:r").CreateElement("w:t").SetText("1")
	fldChar("end")
	return doc
}
