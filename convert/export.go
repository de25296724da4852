package convert

import (
	"context"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"thesisdoc/common"
	"thesisdoc/config"
	"thesisdoc/convert/docx"
	"thesisdoc/convert/model"
	"thesisdoc/convert/structure"
	"thesisdoc/thesis"
)

// Artifact is the produced document.
type Artifact struct {
	Variant common.Variant
	// Document is block stream the package was serialized from.
	Document *model.Document
	Data     []byte
	// Name is suggested file name.
	Name string
}

// ExportFull produces complete document: title page, abstract, table of
// contents, chapters and back matter.
func ExportFull(ctx context.Context, th *thesis.Document, cfg *config.DocumentConfig, log *zap.Logger) (*Artifact, error) {
	return export(ctx, th, cfg, common.VariantFull, log)
}

// ExportPreview produces reduced document without table of contents and back
// matter.
func ExportPreview(ctx context.Context, th *thesis.Document, cfg *config.DocumentConfig, log *zap.Logger) (*Artifact, error) {
	return export(ctx, th, cfg, common.VariantPreview, log)
}

// export does not modify th and does not look at context after it started.
func export(ctx context.Context, th *thesis.Document, cfg *config.DocumentConfig, variant common.Variant, log *zap.Logger) (*Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log = log.Named("export")

	doc := th.Normalize()
	values := newValues(doc, variant, "", "")

	header, err := expandTemplate(config.HeaderTemplateFieldName, cfg.Page.HeaderTemplate, values)
	if err != nil {
		log.Warn("Unable to prepare running header, leaving it empty", zap.Error(err))
		header = ""
	}

	out, err := structure.Build(doc, structure.Options{
		Variant:    variant,
		Config:     cfg,
		HeaderText: strings.TrimSpace(header),
	}, log)
	if err != nil {
		return nil, fmt.Errorf("unable to build %s document: %w", variant, err)
	}

	data, err := docx.Bytes(out, log)
	if err != nil {
		return nil, fmt.Errorf("unable to serialize %s document: %w", variant, err)
	}

	return &Artifact{
		Variant:  variant,
		Document: out,
		Data:     data,
		Name:     artifactName(doc.Title(), variant, cfg.FileNameTransliterate),
	}, nil
}

func artifactName(title string, variant common.Variant, transliterate bool) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "thesis"
	}
	if transliterate {
		title = slug.Make(title)
	}
	return config.CleanFileName(title) + getFileExtension(variant)
}
