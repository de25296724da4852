package convert

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"thesisdoc/common"
	"thesisdoc/convert/model"
	"thesisdoc/thesis"
)

func headings(doc *model.Document) []string {
	var out []string
	for i := range doc.Blocks {
		if b := &doc.Blocks[i]; b.Kind == model.KindHeading {
			out = append(out, b.Heading.Text)
		}
	}
	return out
}

func TestExportFull(t *testing.T) {
	_, env := setupTestEnv(t)

	art, err := ExportFull(context.Background(), parseSample(t), &env.Cfg.Document, testLogger(t))
	if err != nil {
		t.Fatalf("ExportFull() error = %v", err)
	}
	if art.Variant != common.VariantFull || art.Name != "on-things.docx" {
		t.Errorf("artifact = %s %q", art.Variant, art.Name)
	}

	want := "Abstract,Table of Contents,Introduction,Background,Motivation,Scope,Results,Findings,References,References,Appendix A"
	if got := strings.Join(headings(art.Document), ","); got != want {
		t.Errorf("headings = %s\nwant %s", got, want)
	}
	if art.Document.Layout.HeaderText != "On Things" {
		t.Errorf("header = %q", art.Document.Layout.HeaderText)
	}

	zr, err := zip.NewReader(bytes.NewReader(art.Data), int64(len(art.Data)))
	if err != nil {
		t.Fatalf("artifact is not a package: %v", err)
	}
	found := false
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			found = true
		}
	}
	if !found {
		t.Error("package has no main document part")
	}
}

func TestExportPreview(t *testing.T) {
	_, env := setupTestEnv(t)

	art, err := ExportPreview(context.Background(), parseSample(t), &env.Cfg.Document, testLogger(t))
	if err != nil {
		t.Fatalf("ExportPreview() error = %v", err)
	}
	if art.Variant != common.VariantPreview || art.Name != "on-things.preview.docx" {
		t.Errorf("artifact = %s %q", art.Variant, art.Name)
	}
	got := strings.Join(headings(art.Document), ",")
	for _, absent := range []string{"Table of Contents", "Appendix A"} {
		if strings.Contains(got, absent) {
			t.Errorf("preview has %q: %s", absent, got)
		}
	}
	if len(art.Data) == 0 {
		t.Error("preview was not serialized")
	}
}

func TestExport_InputUntouched(t *testing.T) {
	_, env := setupTestEnv(t)
	th := parseSample(t)
	before := th.Chapters[0].ID

	if _, err := ExportFull(context.Background(), th, &env.Cfg.Document, testLogger(t)); err != nil {
		t.Fatalf("ExportFull() error = %v", err)
	}
	if th.Chapters[0].ID != before {
		t.Errorf("input chapters reordered: first is %s, was %s", th.Chapters[0].ID, before)
	}
}

func TestExport_Deterministic(t *testing.T) {
	_, env := setupTestEnv(t)

	a, err := ExportFull(context.Background(), parseSample(t), &env.Cfg.Document, testLogger(t))
	if err != nil {
		t.Fatalf("ExportFull() error = %v", err)
	}
	b, err := ExportFull(context.Background(), parseSample(t), &env.Cfg.Document, testLogger(t))
	if err != nil {
		t.Fatalf("ExportFull() error = %v", err)
	}
	if !bytes.Equal(a.Data, b.Data) {
		t.Error("identical snapshots produced different packages")
	}
}

func TestExport_Failures(t *testing.T) {
	_, env := setupTestEnv(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ExportFull(ctx, parseSample(t), &env.Cfg.Document, testLogger(t)); !errors.Is(err, context.Canceled) {
		t.Errorf("ExportFull() error = %v, want %v", err, context.Canceled)
	}

	noTitle := parseSample(t)
	noTitle.FrontMatter = noTitle.FrontMatter[1:]
	art, err := ExportPreview(context.Background(), noTitle, &env.Cfg.Document, testLogger(t))
	if !errors.Is(err, thesis.ErrNoTitleSection) || art != nil {
		t.Errorf("ExportPreview() = %v, %v, want %v", art, err, thesis.ErrNoTitleSection)
	}
}

func TestExport_HeaderTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"author", "{{ .Author }}", "Jane Doe"},
		{"sprig", "{{ .Title | upper }}", "ON THINGS"},
		{"empty", "", ""},
		{"broken template leaves header empty", "{{ .Title", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, env := setupTestEnv(t)
			env.Cfg.Document.Page.HeaderTemplate = tt.template

			art, err := ExportFull(context.Background(), parseSample(t), &env.Cfg.Document, testLogger(t))
			if err != nil {
				t.Fatalf("ExportFull() error = %v", err)
			}
			if got := art.Document.Layout.HeaderText; got != tt.want {
				t.Errorf("header = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArtifactName(t *testing.T) {
	tests := []struct {
		title         string
		variant       common.Variant
		transliterate bool
		want          string
	}{
		{"On Things", common.VariantFull, true, "on-things.docx"},
		{"On Things", common.VariantFull, false, "On Things.docx"},
		{"On Things", common.VariantPreview, true, "on-things.preview.docx"},
		{"  ", common.VariantFull, true, "thesis.docx"},
	}
	for _, tt := range tests {
		if got := artifactName(tt.title, tt.variant, tt.transliterate); got != tt.want {
			t.Errorf("artifactName(%q, %s, %t) = %q, want %q", tt.title, tt.variant, tt.transliterate, got, tt.want)
		}
	}
}
