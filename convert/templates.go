package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"thesisdoc/common"
	"thesisdoc/config"
	"thesisdoc/thesis"
)

// Values holds variables available for template expansion.
type Values struct {
	Context    string
	Title      string
	Subtitle   string
	Author     string
	University string
	Department string
	Date       string
	Keywords   []string
	Committee  []string
	Variant    string
	SourceFile string
	RefID      string
}

// newValues collects template variables from thesis. srcName and refID are
// empty when thesis did not come from a file.
func newValues(th *thesis.Document, variant common.Variant, srcName, refID string) Values {
	md := &th.Metadata
	v := Values{
		Title:      th.Title(),
		Author:     md.AuthorName,
		University: md.UniversityName,
		Department: md.DepartmentName,
		Date:       md.ThesisDate,
		Keywords:   md.Keywords,
		Committee:  md.CommitteeMembers,
		Variant:    variant.String(),
		RefID:      refID,
	}
	if s := th.TitleSection(); s != nil {
		v.Subtitle = s.Content
	}
	if v.Date == "" && !md.CreatedAt.IsZero() {
		v.Date = md.CreatedAt.Format("2006-01-02")
	}
	if srcName != "" {
		v.SourceFile = strings.TrimSuffix(filepath.Base(srcName), filepath.Ext(srcName))
	}
	return v
}

func expandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values.Context = string(name)

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
