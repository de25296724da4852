// Package docx serializes document stream into WordprocessingML package
// (ECMA-376, the format of .docx files).
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"thesisdoc/convert/model"
)

const (
	nsW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsWP  = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	nsA   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPic = "http://schemas.openxmlformats.org/drawingml/2006/picture"
	nsPR  = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsCT  = "http://schemas.openxmlformats.org/package/2006/content-types"

	relBase       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/"
	relOfficeDoc  = relBase + "officeDocument"
	relExtProps   = relBase + "extended-properties"
	relCoreProps  = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relStyles     = relBase + "styles"
	relNumbering  = relBase + "numbering"
	relSettings   = relBase + "settings"
	relHeader     = relBase + "header"
	relFooter     = relBase + "footer"
	relImage      = relBase + "image"
	ctMainPrefix  = "application/vnd.openxmlformats-officedocument.wordprocessingml."
	ctRels        = "application/vnd.openxmlformats-package.relationships+xml"
	ctCoreProps   = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtProps    = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	emuPerPixel   = 9525
	twipsPerPixel = 15
)

// Part names, fixed so that identical input always results in identical
// package.
const (
	partContentTypes = "[Content_Types].xml"
	partRootRels     = "_rels/.rels"
	partCore         = "docProps/core.xml"
	partApp          = "docProps/app.xml"
	partDocument     = "word/document.xml"
	partDocumentRels = "word/_rels/document.xml.rels"
	partStyles       = "word/styles.xml"
	partNumbering    = "word/numbering.xml"
	partSettings     = "word/settings.xml"
	partHeader       = "word/header1.xml"
	partFooter       = "word/footer1.xml"
	mediaDir         = "word/media/"
)

// zipEpoch is used for entry timestamps when document has no creation time.
var zipEpoch = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)

type xmlPart struct {
	name string
	doc  *etree.Document
}

// relationship of word/document.xml.
type relationship struct {
	id, typ, target string
}

// Write serializes document as a complete package.
func Write(w io.Writer, doc *model.Document, log *zap.Logger) error {
	pw := &packageWriter{
		zw:    zip.NewWriter(w),
		stamp: zipEpoch,
		log:   log,
	}
	if !doc.Meta.Created.IsZero() {
		pw.stamp = doc.Meta.Created.UTC()
	}

	body := newBodyWriter(doc)
	docXML := body.render()

	rels := []relationship{
		{"rIdStyles", relStyles, "styles.xml"},
		{"rIdNumbering", relNumbering, "numbering.xml"},
		{"rIdSettings", relSettings, "settings.xml"},
	}
	if body.hasHeader {
		rels = append(rels, relationship{headerRelID, relHeader, "header1.xml"})
	}
	if body.hasFooter {
		rels = append(rels, relationship{footerRelID, relFooter, "footer1.xml"})
	}
	for _, m := range body.media {
		rels = append(rels, relationship{m.relID, relImage, "media/" + m.name})
	}

	parts := []xmlPart{
		{partContentTypes, contentTypes(body)},
		{partRootRels, relationships([]relationship{
			{"rId1", relOfficeDoc, partDocument},
			{"rId2", relCoreProps, partCore},
			{"rId3", relExtProps, partApp},
		})},
		{partCore, coreProperties(&doc.Meta)},
		{partApp, appProperties(doc)},
		{partDocument, docXML},
		{partDocumentRels, relationships(rels)},
		{partStyles, styles(&doc.Layout, docLanguage(doc.Meta.Language))},
		{partNumbering, body.nums.render()},
		{partSettings, settings()},
	}
	if body.hasHeader {
		parts = append(parts, xmlPart{partHeader, header(doc.Layout.HeaderText)})
	}
	if body.hasFooter {
		parts = append(parts, xmlPart{partFooter, footer(doc.Layout.FooterText, doc.Layout.PageNumbers)})
	}

	for _, p := range parts {
		if err := pw.writeXML(p.name, p.doc); err != nil {
			return fmt.Errorf("unable to write %s: %w", p.name, err)
		}
	}
	for _, m := range body.media {
		if err := pw.writeData(mediaDir+m.name, m.data, zip.Store); err != nil {
			return fmt.Errorf("unable to write image %s: %w", m.name, err)
		}
	}

	if err := pw.zw.Close(); err != nil {
		return fmt.Errorf("unable to finalize package: %w", err)
	}
	log.Debug("Package written", zap.Int("blocks", len(doc.Blocks)), zap.Int("media", len(body.media)), zap.Int("lists", body.nums.count()))
	return nil
}

// Bytes is Write into memory.
func Bytes(doc *model.Document, log *zap.Logger) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, doc, log); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type packageWriter struct {
	zw    *zip.Writer
	stamp time.Time
	log   *zap.Logger
}

func (pw *packageWriter) writeXML(name string, doc *etree.Document) error {
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return err
	}
	return pw.writeData(name, buf.Bytes(), zip.Deflate)
}

func (pw *packageWriter) writeData(name string, data []byte, method uint16) error {
	w, err := pw.zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   method,
		Modified: pw.stamp,
	})
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func newXMLDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	return doc
}
