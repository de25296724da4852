package convert

import (
	"strings"
	"testing"
	"time"

	"thesisdoc/common"
	"thesisdoc/config"
)

func TestExpandTemplate(t *testing.T) {
	values := newValues(parseSample(t), common.VariantFull, "drafts/thesis.json", "ref-1")

	tests := []struct {
		name    string
		field   string
		want    string
		wantErr bool
	}{
		{"plain text", "simple-text", "simple-text", false},
		{"title", "{{ .Title }}", "On Things", false},
		{"author and date", "{{ .Author }} - {{ .Date }}", "Jane Doe - May 2024", false},
		{"university", "{{ .University }}/{{ .Department }}", "Example University/Department of Studies", false},
		{"keywords with sprig", `{{ join ", " .Keywords }}`, "things, study", false},
		{"committee count", "{{ len .Committee }}", "2", false},
		{"sprig pipeline", "{{ .Title | lower | replace \" \" \"_\" }}", "on_things", false},
		{"context", "{{ .Context }}", string(config.OutputNameTemplateFieldName), false},
		{"variant", "{{ .Variant }}", "full", false},
		{"source file without extension", "{{ .SourceFile }}", "thesis", false},
		{"ref id", "{{ .RefID }}", "ref-1", false},
		{"conditional", `{{ if .Subtitle }}{{ .Subtitle }}{{ else }}none{{ end }}`, "none", false},
		{"parse error", "{{ .Title", "", true},
		{"unknown field", "{{ .Publisher }}", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandTemplate(config.OutputNameTemplateFieldName, tt.field, values)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expandTemplate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("expandTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandTemplate_ParseErrorNamesField(t *testing.T) {
	_, err := expandTemplate(config.HeaderTemplateFieldName, "{{ .Title", Values{})
	if err == nil || !strings.Contains(err.Error(), string(config.HeaderTemplateFieldName)) {
		t.Errorf("expandTemplate() error = %v", err)
	}
}

func TestNewValues(t *testing.T) {
	th := parseSample(t)
	th.Metadata.ThesisDate = ""
	th.Metadata.CreatedAt = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	th.FrontMatter[0].Content = "A Study"

	v := newValues(th, common.VariantPreview, "", "")
	if v.Date != "2024-03-01" {
		t.Errorf("Date = %q, want creation date", v.Date)
	}
	if v.Subtitle != "A Study" || v.Variant != "preview" || v.SourceFile != "" {
		t.Errorf("values = %+v", v)
	}
}
