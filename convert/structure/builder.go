package structure

import (
	"fmt"

	"go.uber.org/zap"

	"thesisdoc/common"
	"thesisdoc/config"
	"thesisdoc/convert/model"
	"thesisdoc/thesis"
)

// Options controls document building.
type Options struct {
	Variant common.Variant
	Config  *config.DocumentConfig
	// HeaderText is running header, already expanded.
	HeaderText string
}

// Build puts the whole thesis in fixed order: title page, abstract, table of
// contents, chapters and back matter. Every division after the title page
// starts on a new page. Preview variant has neither table of contents nor
// back matter. Document must be normalized, structural problems are reported
// as errors and nothing is built.
func Build(doc *thesis.Document, opts Options, log *zap.Logger) (*model.Document, error) {
	if err := doc.Validate(opts.Variant); err != nil {
		return nil, err
	}
	cfg := opts.Config
	asm := NewAssembler(cfg, log)
	preview := opts.Variant.IsPreview()

	out := &model.Document{
		Title:  doc.Title(),
		Layout: layout(cfg, opts.HeaderText),
		Meta: model.Meta{
			Title:       doc.Title(),
			Subject:     doc.Metadata.DepartmentName,
			Creator:     doc.Metadata.AuthorName,
			Keywords:    doc.Metadata.Keywords,
			Description: doc.Metadata.Description,
			Language:    cfg.Language,
			Created:     doc.Metadata.CreatedAt,
		},
	}

	out.Blocks = titlePage(doc, cfg)

	// abstract
	out.Blocks = append(out.Blocks, model.NewPageBreak(), model.NewHeading(1, cfg.Titles.Abstract))
	if s := doc.FrontSection(common.SectionTypeAbstract); s != nil {
		body, err := asm.Body(s, 1)
		if err != nil {
			return nil, err
		}
		out.Blocks = append(out.Blocks, body...)
	} else {
		log.Debug("No abstract section, leaving placeholder heading")
	}

	for i := range doc.FrontMatter {
		switch s := &doc.FrontMatter[i]; s.Type {
		case common.SectionTypeTitle, common.SectionTypeAbstract:
		default:
			log.Debug("Front matter section is not part of the document", zap.String("section", s.ID), zap.Stringer("type", s.Type))
		}
	}

	if !preview {
		out.Blocks = append(out.Blocks, model.NewPageBreak(), model.NewHeading(1, cfg.Titles.TOC))
	}

	for i := range doc.Chapters {
		cb, err := asm.Chapter(&doc.Chapters[i])
		if err != nil {
			return nil, err
		}
		out.Blocks = append(out.Blocks, model.NewPageBreak())
		out.Blocks = append(out.Blocks, cb...)
	}

	if !preview {
		for i := range doc.BackMatter {
			sb, err := asm.Section(&doc.BackMatter[i], 1)
			if err != nil {
				return nil, fmt.Errorf("back matter: %w", err)
			}
			out.Blocks = append(out.Blocks, model.NewPageBreak())
			out.Blocks = append(out.Blocks, sb...)
		}
	}

	log.Debug("Document built", zap.Stringer("variant", opts.Variant), zap.Int("blocks", len(out.Blocks)))
	return out, nil
}

// titlePage is built from the title section and metadata, empty lines are
// skipped.
func titlePage(doc *thesis.Document, cfg *config.DocumentConfig) []model.Block {
	center := func(text string, style model.ParagraphStyle) model.Block {
		return model.NewStyledParagraph(text, style, common.AlignCenter)
	}

	md := &doc.Metadata
	blocks := []model.Block{center(doc.Title(), model.StyleTitle)}
	if s := doc.TitleSection(); s != nil && s.Content != "" {
		blocks = append(blocks, center(s.Content, model.StyleSubtitle))
	}
	if md.AuthorName != "" {
		blocks = append(blocks, center(cfg.Titles.AuthorLine+md.AuthorName, model.StyleNormal))
	}
	for _, line := range []string{md.DepartmentName, md.UniversityName, md.ThesisDate} {
		if line != "" {
			blocks = append(blocks, center(line, model.StyleNormal))
		}
	}
	if len(md.CommitteeMembers) > 0 {
		if cfg.Titles.Committee != "" {
			b := center(cfg.Titles.Committee, model.StyleNormal)
			b.Paragraph.Bold = true
			blocks = append(blocks, b)
		}
		for _, m := range md.CommitteeMembers {
			blocks = append(blocks, center(m, model.StyleNormal))
		}
	}
	return blocks
}

func layout(cfg *config.DocumentConfig, header string) model.PageLayout {
	p := &cfg.Page
	w, h := p.Size.Dimensions(p.Orientation)
	return model.PageLayout{
		Width:     w,
		Height:    h,
		Landscape: p.Orientation == config.OrientationLandscape,
		Margins: model.Margins{
			Top:    p.Margins.Top,
			Right:  p.Margins.Right,
			Bottom: p.Margins.Bottom,
			Left:   p.Margins.Left,
			Header: p.Margins.Header,
			Footer: p.Margins.Footer,
		},
		HeaderText:        header,
		FooterText:        p.FooterText,
		PageNumbers:       p.PageNumbers,
		TitlePageDistinct: !p.NumberTitlePage,
		FontName:          cfg.Font.Name,
		FontSize:          cfg.Font.Size,
	}
}
