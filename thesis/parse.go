package thesis

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"thesisdoc/common"
)

// Wire shape of the snapshot. Everything ambiguous is kept raw here and
// resolved once when converting to the model.

type rawDocument struct {
	Metadata    rawMetadata  `json:"metadata"`
	FrontMatter []rawSection `json:"frontMatter"`
	Chapters    []rawChapter `json:"chapters"`
	BackMatter  []rawSection `json:"backMatter"`
}

type rawMetadata struct {
	Description      scalarText   `json:"description"`
	Keywords         []scalarText `json:"keywords"`
	CreatedAt        scalarText   `json:"createdAt"`
	UniversityName   scalarText   `json:"universityName"`
	DepartmentName   scalarText   `json:"departmentName"`
	AuthorName       scalarText   `json:"authorName"`
	ThesisDate       scalarText   `json:"thesisDate"`
	CommitteeMembers []scalarText `json:"committeeMembers"`
}

type rawChapter struct {
	ID       scalarText   `json:"id"`
	Title    scalarText   `json:"title"`
	Order    flexInt      `json:"order"`
	Sections []rawSection `json:"sections"`
}

type rawSection struct {
	ID         scalarText      `json:"id"`
	Title      scalarText      `json:"title"`
	Type       string          `json:"type"`
	Required   bool            `json:"required"`
	Order      flexInt         `json:"order"`
	Content    json.RawMessage `json:"content"`
	Figures    []rawFigure     `json:"figures"`
	Tables     []rawTable      `json:"tables"`
	Citations  []rawCitation   `json:"citations"`
	References []rawCitation   `json:"references"`
}

type rawFigure struct {
	ID         scalarText  `json:"id"`
	Caption    scalarText  `json:"caption"`
	ImageData  scalarText  `json:"imageData"`
	AltText    scalarText  `json:"altText"`
	Number     flexInt     `json:"number"`
	Dimensions *Dimensions `json:"dimensions"`
}

type rawTable struct {
	ID         scalarText               `json:"id"`
	Caption    scalarText               `json:"caption"`
	Title      scalarText               `json:"title"`
	Number     flexInt                  `json:"number"`
	Headers    []scalarText             `json:"headers"`
	Rows       [][]scalarText           `json:"rows"`
	Formatting map[string]rawCellFormat `json:"formatting"`
	Content    scalarText               `json:"content"`
	HTML       scalarText               `json:"html"`
	Markup     scalarText               `json:"markup"`
}

type rawCellFormat struct {
	Align       string `json:"align"`
	Bold        bool   `json:"bold"`
	Italic      bool   `json:"italic"`
	Underline   bool   `json:"underline"`
	HeaderStyle string `json:"headerStyle"`
}

type rawCitation struct {
	ID        scalarText   `json:"id"`
	Text      scalarText   `json:"text"`
	Title     scalarText   `json:"title"`
	Source    scalarText   `json:"source"`
	Authors   []scalarText `json:"authors"`
	Year      flexInt      `json:"year"`
	Type      string       `json:"type"`
	DOI       scalarText   `json:"doi"`
	URL       scalarText   `json:"url"`
	Journal   scalarText   `json:"journal"`
	Volume    scalarText   `json:"volume"`
	Issue     scalarText   `json:"issue"`
	Pages     scalarText   `json:"pages"`
	Publisher scalarText   `json:"publisher"`
}

// flexInt accepts both numbers and numeric strings, empty means zero.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a number: %s", s)
	}
	*f = flexInt(v)
	return nil
}

// scalarText accepts any scalar and keeps it as written: numbers and booleans
// are not reformatted.
type scalarText string

func (s *scalarText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*s = ""
	case data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = scalarText(v)
	case data[0] == '{' || data[0] == '[':
		return fmt.Errorf("unexpected value, want scalar: %s", string(data))
	default:
		*s = scalarText(data)
	}
	return nil
}

func texts(in []scalarText) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, string(v))
	}
	return out
}

// Parse reads thesis snapshot in requested format and returns its model.
// Snapshot shape variations (content as block list, table shapes, numbers as
// strings) are resolved here.
func Parse(r io.Reader, format common.SnapshotFormat, log *zap.Logger) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read snapshot: %w", err)
	}

	if format == common.SnapshotFormatYaml {
		if data, err = yamlToJSON(data); err != nil {
			return nil, err
		}
	}

	var raw rawDocument
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("unable to decode snapshot: %w", err)
	}
	return raw.toModel(log)
}

// yamlToJSON lets a single set of decoding rules serve both encodings. Scalars
// are carried over as written so that dates and numbers in text fields reach
// the model unchanged.
func yamlToJSON(data []byte) ([]byte, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("unable to decode yaml snapshot: %w", err)
	}
	var buf bytes.Buffer
	if err := writeJSON(&buf, &root); err != nil {
		return nil, fmt.Errorf("unable to transcode yaml snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeJSON(buf, n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil {
			return fmt.Errorf("line %d: unresolved alias", n.Line)
		}
		return writeJSON(buf, n.Alias)
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(n.Content[i].Value)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeJSON(buf, n.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, c := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, c); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case yaml.ScalarNode:
		return writeScalar(buf, n)
	default:
		return fmt.Errorf("line %d: unsupported yaml node", n.Line)
	}
	return nil
}

func writeScalar(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.ShortTag() {
	case "!!null":
		buf.WriteString("null")
		return nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return err
		}
		buf.WriteString(strconv.FormatBool(b))
		return nil
	case "!!int", "!!float":
		if json.Valid([]byte(n.Value)) {
			buf.WriteString(n.Value)
			return nil
		}
	}
	// strings, timestamps and numbers json cannot express keep source text
	v, err := json.Marshal(n.Value)
	if err != nil {
		return err
	}
	buf.Write(v)
	return nil
}

func (raw *rawDocument) toModel(log *zap.Logger) (*Document, error) {
	doc := &Document{}

	var err error
	if doc.Metadata, err = raw.Metadata.toModel(); err != nil {
		return nil, err
	}
	if doc.FrontMatter, err = sectionsToModel(raw.FrontMatter, log); err != nil {
		return nil, fmt.Errorf("front matter: %w", err)
	}
	for i := range raw.Chapters {
		ch := Chapter{
			ID:    string(raw.Chapters[i].ID),
			Title: string(raw.Chapters[i].Title),
			Order: int(raw.Chapters[i].Order),
		}
		if ch.Sections, err = sectionsToModel(raw.Chapters[i].Sections, log); err != nil {
			return nil, fmt.Errorf("chapter %q: %w", ch.ID, err)
		}
		doc.Chapters = append(doc.Chapters, ch)
	}
	if doc.BackMatter, err = sectionsToModel(raw.BackMatter, log); err != nil {
		return nil, fmt.Errorf("back matter: %w", err)
	}
	return doc, nil
}

func (raw *rawMetadata) toModel() (Metadata, error) {
	md := Metadata{
		Description:      string(raw.Description),
		Keywords:         texts(raw.Keywords),
		UniversityName:   string(raw.UniversityName),
		DepartmentName:   string(raw.DepartmentName),
		AuthorName:       string(raw.AuthorName),
		ThesisDate:       string(raw.ThesisDate),
		CommitteeMembers: texts(raw.CommitteeMembers),
	}
	if raw.CreatedAt != "" {
		t, err := parseTime(string(raw.CreatedAt))
		if err != nil {
			return md, fmt.Errorf("metadata createdAt: %w", err)
		}
		md.CreatedAt = t
	}
	return md, nil
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, time.DateTime, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported time format: %q", s)
}

func sectionsToModel(raws []rawSection, log *zap.Logger) ([]Section, error) {
	if len(raws) == 0 {
		return nil, nil
	}
	out := make([]Section, 0, len(raws))
	for i := range raws {
		s, err := raws[i].toModel(log)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", raws[i].ID, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func (raw *rawSection) toModel(log *zap.Logger) (Section, error) {
	st, err := common.ParseSectionType(raw.Type)
	if err != nil {
		return Section{}, err
	}
	content, err := joinContent(raw.Content)
	if err != nil {
		return Section{}, err
	}

	s := Section{
		ID:       string(raw.ID),
		Title:    string(raw.Title),
		Type:     st,
		Required: raw.Required,
		Order:    int(raw.Order),
		Content:  content,
	}
	for _, f := range raw.Figures {
		s.Figures = append(s.Figures, Figure{
			ID:         string(f.ID),
			Caption:    string(f.Caption),
			ImageData:  string(f.ImageData),
			AltText:    string(f.AltText),
			Number:     int(f.Number),
			Dimensions: f.Dimensions,
		})
	}
	for i := range raw.Tables {
		s.Tables = append(s.Tables, raw.Tables[i].toModel(log))
	}
	for i := range raw.Citations {
		c, err := raw.Citations[i].toModel()
		if err != nil {
			return Section{}, fmt.Errorf("citation %q: %w", raw.Citations[i].ID, err)
		}
		s.Citations = append(s.Citations, c)
	}
	for i := range raw.References {
		c, err := raw.References[i].toModel()
		if err != nil {
			return Section{}, fmt.Errorf("reference %q: %w", raw.References[i].ID, err)
		}
		s.References = append(s.References, Reference{Citation: c, Title: string(raw.References[i].Title)})
	}
	if len(s.References) > 0 && s.Type != common.SectionTypeReferences {
		log.Debug("References ignored outside of references section", zap.String("section", s.ID), zap.Stringer("type", s.Type))
	}
	return s, nil
}

// joinContent normalizes section content to a single markdown string. Block
// lists (strings or objects with content/text) are joined with blank lines.
func joinContent(data json.RawMessage) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s, nil
	}

	var blocks []json.RawMessage
	if err := json.Unmarshal(data, &blocks); err != nil {
		return "", errors.New("content is neither string nor list of blocks")
	}
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		var text string
		if err := json.Unmarshal(b, &text); err == nil {
			parts = append(parts, text)
			continue
		}
		var obj struct {
			Content *string `json:"content"`
			Text    *string `json:"text"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return "", fmt.Errorf("unexpected content block: %s", string(b))
		}
		switch {
		case obj.Content != nil:
			parts = append(parts, *obj.Content)
		case obj.Text != nil:
			parts = append(parts, *obj.Text)
		}
	}
	return strings.Join(parts, "\n\n"), nil
}

func (raw *rawTable) toModel(log *zap.Logger) Table {
	t := Table{
		ID:      string(raw.ID),
		Caption: string(raw.Caption),
		Title:   string(raw.Title),
		Number:  int(raw.Number),
	}

	markup := firstNonEmpty(string(raw.Content), string(raw.HTML), string(raw.Markup))
	grid := raw.Headers != nil || raw.Rows != nil

	switch {
	case grid:
		if markup != "" {
			log.Warn("Table has both cells and markup, using cells", zap.String("table", string(raw.ID)))
		}
		t.Shape = common.TableShapeGrid
		t.Grid = raw.gridToModel()
	case markup != "":
		t.Shape = common.TableShapeOpaque
		t.Opaque = &OpaqueTable{Markup: markup}
	default:
		// nothing usable, will not pass validation
		t.Shape = common.TableShapeGrid
		t.Grid = &GridTable{}
	}
	return t
}

func (raw *rawTable) gridToModel() *GridTable {
	g := &GridTable{Headers: make([]string, 0, len(raw.Headers))}
	for _, h := range raw.Headers {
		g.Headers = append(g.Headers, string(h))
	}
	for _, row := range raw.Rows {
		cells := make([]string, 0, len(row))
		for _, c := range row {
			cells = append(cells, string(c))
		}
		g.Rows = append(g.Rows, cells)
	}
	if len(raw.Formatting) > 0 {
		g.Formatting = make(map[string]CellFormat, len(raw.Formatting))
		for k, f := range raw.Formatting {
			g.Formatting[k] = CellFormat(f)
		}
	}
	return g
}

func (raw *rawCitation) toModel() (Citation, error) {
	c := Citation{
		ID:        string(raw.ID),
		Text:      string(raw.Text),
		Source:    string(raw.Source),
		Authors:   texts(raw.Authors),
		Year:      int(raw.Year),
		DOI:       string(raw.DOI),
		URL:       string(raw.URL),
		Journal:   string(raw.Journal),
		Volume:    string(raw.Volume),
		Issue:     string(raw.Issue),
		Pages:     string(raw.Pages),
		Publisher: string(raw.Publisher),
		Type:      common.CitationTypeOther,
	}
	if raw.Type != "" {
		t, err := common.ParseCitationType(raw.Type)
		if err != nil {
			return c, err
		}
		c.Type = t
	}
	return c, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
