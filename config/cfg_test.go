package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"

	"thesisdoc/common"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	d := cfg.Document

	if d.FixZip {
		t.Error("FixZip should be off by default")
	}
	if d.Language != "en-US" {
		t.Errorf("Language = %q, want en-US", d.Language)
	}
	if !d.FileNameTransliterate {
		t.Error("FileNameTransliterate should be on by default")
	}
	if d.OutputNameTemplate != "" {
		t.Errorf("OutputNameTemplate = %q, want empty", d.OutputNameTemplate)
	}

	if d.Page.Size != PageSizeLetter || d.Page.Orientation != OrientationPortrait {
		t.Errorf("Page = %s/%s, want letter/portrait", d.Page.Size, d.Page.Orientation)
	}
	want := MarginsConfig{Top: 1440, Right: 1440, Bottom: 1440, Left: 1440, Header: 720, Footer: 720}
	if d.Page.Margins != want {
		t.Errorf("Margins = %+v, want %+v", d.Page.Margins, want)
	}
	if d.Page.HeaderTemplate != "{{ .Title }}" {
		t.Errorf("HeaderTemplate = %q, template must not be expanded on load", d.Page.HeaderTemplate)
	}
	if d.Page.FooterText != "Page " || !d.Page.PageNumbers || d.Page.NumberTitlePage {
		t.Errorf("footer defaults = %q/%v/%v", d.Page.FooterText, d.Page.PageNumbers, d.Page.NumberTitlePage)
	}

	if d.Font.Name != "Times New Roman" || d.Font.Size != 12 {
		t.Errorf("Font = %+v", d.Font)
	}
	if d.Images.DefaultWidth != 400 || d.Images.DefaultHeight != 300 || !d.Images.FitToPage {
		t.Errorf("Images = %+v", d.Images)
	}
	if d.Titles.Abstract != "Abstract" || d.Titles.TOC != "Table of Contents" || d.Titles.References != "References" {
		t.Errorf("Titles = %+v", d.Titles)
	}
	if d.References.Style != common.CitationStyleExport {
		t.Errorf("References.Style = %s, want export", d.References.Style)
	}

	if cfg.Logging.ConsoleLogger.Level != "normal" || cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if !strings.HasSuffix(cfg.Reporting.Destination, "thesisdoc-report.zip") {
		t.Errorf("Reporting.Destination = %q", cfg.Reporting.Destination)
	}
}

func TestLoadConfiguration_ExpandedPaths(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	paths := map[string]string{
		"thesisdoc.log":        cfg.Logging.FileLogger.Destination,
		"thesisdoc-report.zip": cfg.Reporting.Destination,
	}
	for name, got := range paths {
		if strings.Contains(got, "{{") || strings.Contains(got, "joinPath") {
			t.Errorf("destination %q was not expanded", got)
		}
		if filepath.Base(got) != name {
			t.Errorf("destination %q, want file name %q", got, name)
		}
	}

	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if strings.Contains(string(data), "joinPath") {
		t.Errorf("Prepare() left unexpanded paths:\n%s", data)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, `version: 1
document:
  fix_zip: true
  language: de-DE
  output_name_template: "{{ .Author }}/{{ .Title }}"
  page:
    size: a4
    orientation: landscape
    page_numbers: false
  font:
    name: Arial
    size: 11
  references:
    style: apa
logging:
  console:
    level: debug
  file:
    level: debug
    destination: `+filepath.Join(tmpDir, "test.log")+`
    mode: append
reporting:
  destination: `+filepath.Join(tmpDir, "report.zip")+`
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	d := cfg.Document

	if !d.FixZip {
		t.Error("Expected FixZip to be true")
	}
	if d.Language != "de-DE" {
		t.Errorf("Language = %q, want de-DE", d.Language)
	}
	if d.OutputNameTemplate != "{{ .Author }}/{{ .Title }}" {
		t.Errorf("OutputNameTemplate = %q", d.OutputNameTemplate)
	}
	if d.Page.Size != PageSizeA4 || d.Page.Orientation != OrientationLandscape {
		t.Errorf("Page = %s/%s, want a4/landscape", d.Page.Size, d.Page.Orientation)
	}
	if d.Page.PageNumbers {
		t.Error("PageNumbers should be overridden")
	}
	if d.Font.Name != "Arial" || d.Font.Size != 11 {
		t.Errorf("Font = %+v", d.Font)
	}
	if d.References.Style != common.CitationStyleApa {
		t.Errorf("References.Style = %s, want apa", d.References.Style)
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("FileLogger.Mode = %q", cfg.Logging.FileLogger.Mode)
	}
}

func TestLoadConfiguration_MergeWithDefaults(t *testing.T) {
	path := writeConfig(t, `version: 1
document:
  page:
    margins:
      left: 2000
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	m := cfg.Document.Page.Margins
	if m.Left != 2000 {
		t.Errorf("Margins.Left = %d, want 2000", m.Left)
	}
	if m.Right != 1440 || m.Top != 1440 {
		t.Errorf("untouched margins lost defaults: %+v", m)
	}
	if cfg.Document.Font.Name != "Times New Roman" {
		t.Errorf("Font.Name = %q, want default", cfg.Document.Font.Name)
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "invalid yaml",
			content: `version: 1
document:
  fix_zip: true
  invalid indent
`,
		},
		{
			name: "unknown field",
			content: `version: 1
unknown_field: value
`,
		},
		{
			name:    "wrong version",
			content: "version: 2\n",
		},
		{
			name: "unknown page size",
			content: `version: 1
document:
  page:
    size: b5
`,
		},
		{
			name: "font too large",
			content: `version: 1
document:
  font:
    size: 100
`,
		},
		{
			name: "bad citation style",
			content: `version: 1
document:
  references:
    style: harvard
`,
		},
		{
			name: "zero image width",
			content: `version: 1
document:
  images:
    default_width: 0
`,
		},
		{
			name: "empty abstract title",
			content: `version: 1
document:
  titles:
    abstract: ""
`,
		},
		{
			name: "negative margin",
			content: `version: 1
document:
  page:
    margins:
      top: -1
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Prepare() returned empty data")
	}
	if !strings.Contains(string(data), "{{ .Title }}") {
		t.Error("Prepare() expanded per document template")
	}
	if _, err := unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Document.Page.Size = PageSizeA4
	cfg.Document.References.Style = common.CitationStyleChicago

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	for _, want := range []string{"size: a4", "style: chicago", "name: Times New Roman", "version: 1"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Dump() output missing %q", want)
		}
	}

	back, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		t.Fatalf("dumped config does not load: %v", err)
	}
	if back.Document.Page.Size != PageSizeA4 {
		t.Errorf("Page.Size after reload = %s", back.Document.Page.Size)
	}
}

func TestUnmarshalConfig_WrapsValidationError(t *testing.T) {
	_, err := unmarshalConfig([]byte("version: 99\n"), &Config{}, true)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "validat") {
		t.Errorf("expected error to mention validation, got: %v", err)
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("expected wrapped error, got bare error: %v", err)
	}
}

func TestPageSize_Dimensions(t *testing.T) {
	tests := []struct {
		size   PageSize
		orient Orientation
		w, h   int
	}{
		{PageSizeLetter, OrientationPortrait, 12240, 15840},
		{PageSizeLetter, OrientationLandscape, 15840, 12240},
		{PageSizeA4, OrientationPortrait, 11906, 16838},
		{PageSizeA4, OrientationLandscape, 16838, 11906},
	}

	for _, tt := range tests {
		t.Run(tt.size.String()+"/"+tt.orient.String(), func(t *testing.T) {
			w, h := tt.size.Dimensions(tt.orient)
			if w != tt.w || h != tt.h {
				t.Errorf("Dimensions() = %dx%d, want %dx%d", w, h, tt.w, tt.h)
			}
		})
	}
}

func TestPageConfig_TextWidth(t *testing.T) {
	p := PageConfig{
		Size:    PageSizeLetter,
		Margins: MarginsConfig{Left: 1440, Right: 1440},
	}
	if got := p.TextWidth(); got != 9360 {
		t.Errorf("TextWidth() = %d, want 9360", got)
	}

	p.Margins = MarginsConfig{Left: 7000, Right: 7000}
	if got := p.TextWidth(); got != 0 {
		t.Errorf("TextWidth() with oversized margins = %d, want 0", got)
	}
}

func TestParsePageSize(t *testing.T) {
	if s, err := ParsePageSize("a4"); err != nil || s != PageSizeA4 {
		t.Errorf("ParsePageSize(a4) = %v, %v", s, err)
	}
	if _, err := ParsePageSize("tabloid"); !errors.Is(err, ErrInvalidPageSize) {
		t.Errorf("ParsePageSize(tabloid) error = %v, want ErrInvalidPageSize", err)
	}
}
