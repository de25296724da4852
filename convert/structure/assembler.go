// Package structure lays out thesis as a single block stream: sections and
// chapters are assembled from their parts, then put in the fixed document
// order.
package structure

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"thesisdoc/common"
	"thesisdoc/config"
	"thesisdoc/convert/cite"
	"thesisdoc/convert/figure"
	"thesisdoc/convert/markdown"
	"thesisdoc/convert/model"
	"thesisdoc/convert/table"
	"thesisdoc/thesis"
)

// maxHeadingLevel is the deepest heading style the package defines.
const maxHeadingLevel = 3

// Assembler turns sections and chapters into blocks. It is good for a single
// document only, figures are numbered across all of it.
type Assembler struct {
	cfg      *config.DocumentConfig
	embedder *figure.Embedder
	log      *zap.Logger
}

func NewAssembler(cfg *config.DocumentConfig, log *zap.Logger) *Assembler {
	maxWidth := figure.TwipsToPixels(cfg.Page.TextWidth())
	return &Assembler{
		cfg:      cfg,
		embedder: figure.NewEmbedder(&cfg.Images, maxWidth, log),
		log:      log,
	}
}

// Chapter returns chapter heading followed by its sections in order.
func (a *Assembler) Chapter(ch *thesis.Chapter) ([]model.Block, error) {
	blocks := []model.Block{model.NewHeading(1, ch.Title)}
	for i := range ch.Sections {
		sb, err := a.Section(&ch.Sections[i], 2)
		if err != nil {
			return nil, fmt.Errorf("chapter %q: %w", ch.ID, err)
		}
		blocks = append(blocks, sb...)
	}
	return blocks, nil
}

// Section returns section title heading at requested level followed by its
// body. Heading is always present, even for untitled sections.
func (a *Assembler) Section(s *thesis.Section, level int) ([]model.Block, error) {
	blocks := []model.Block{model.NewHeading(clampLevel(level), s.Title)}
	body, err := a.Body(s, level)
	if err != nil {
		return nil, err
	}
	return append(blocks, body...), nil
}

// Body is everything in the section except its title: content, figures,
// tables, citations and, for references sections, the reference list.
// Content headings go one level below level.
func (a *Assembler) Body(s *thesis.Section, level int) ([]model.Block, error) {
	var blocks []model.Block

	if strings.TrimSpace(s.Content) != "" {
		for _, b := range markdown.Convert(s.Content) {
			if b.Kind == model.KindHeading {
				b.Heading.Level = clampLevel(level + b.Heading.Level)
			}
			blocks = append(blocks, b)
		}
	}

	for i := range s.Figures {
		blocks = append(blocks, a.embedder.Embed(&s.Figures[i], i+1)...)
	}

	for i := range s.Tables {
		tb, err := table.Render(&s.Tables[i], i+1, a.log)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", s.ID, err)
		}
		blocks = append(blocks, tb...)
	}

	for i := range s.Citations {
		if text := cite.Export(&s.Citations[i]); text != "" {
			blocks = append(blocks, model.NewCitation(text))
		}
	}

	if s.Type == common.SectionTypeReferences {
		blocks = append(blocks, model.NewHeading(clampLevel(level+1), a.cfg.Titles.References))
		style := a.cfg.References.Style
		for i := range s.References {
			var text string
			if style == common.CitationStyleExport || !style.IsValid() {
				text = cite.ExportReference(&s.References[i])
			} else {
				text = cite.PreviewReference(&s.References[i], style)
			}
			if text != "" {
				blocks = append(blocks, model.NewReference(text))
			}
		}
	}
	return blocks, nil
}

func clampLevel(level int) int {
	return min(max(level, 1), maxHeadingLevel)
}
