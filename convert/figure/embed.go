package figure

import (
	"fmt"

	"go.uber.org/zap"

	"thesisdoc/config"
	"thesisdoc/convert/model"
	"thesisdoc/thesis"
)

// Embedder produces figure blocks for a single document. It keeps count of
// embedded images so media names are unique within the package.
type Embedder struct {
	cfg      *config.ImagesConfig
	maxWidth int
	log      *zap.Logger
	count    int
}

func NewEmbedder(cfg *config.ImagesConfig, maxWidth int, log *zap.Logger) *Embedder {
	return &Embedder{cfg: cfg, maxWidth: maxWidth, log: log}
}

// Embed returns image block followed by its caption. Any failure results in
// a single placeholder block, pos is 1-based position of the figure in its
// section and numbers figures which do not carry number of their own.
func (e *Embedder) Embed(fig *thesis.Figure, pos int) []model.Block {
	num := Number(fig, pos)

	d, err := Decode(fig.ImageData)
	if err != nil {
		e.log.Warn("Unable to embed figure, using placeholder", zap.String("figure", fig.ID), zap.Int("number", num), zap.Error(err))
		return []model.Block{model.NewPlaceholder(Placeholder(fig))}
	}

	e.count++
	ext := Place(fig.Dimensions, e.cfg, e.maxWidth)
	img := &model.Image{
		Data:        d.Data,
		MIME:        d.MIME,
		Ext:         d.Ext,
		Width:       ext.Width,
		Height:      ext.Height,
		Description: Description(fig, num),
		Name:        fmt.Sprintf("image%d.%s", e.count, d.Ext),
	}
	e.log.Debug("Figure embedded", zap.String("figure", fig.ID), zap.String("name", img.Name),
		zap.Int("width", img.Width), zap.Int("height", img.Height), zap.Int("intrinsic_width", d.Width), zap.Int("intrinsic_height", d.Height))

	return []model.Block{model.NewImage(img), model.NewCaption(Caption(fig, num))}
}

// Number returns figure number: explicit one when set, position otherwise.
func Number(fig *thesis.Figure, pos int) int {
	if fig.Number > 0 {
		return fig.Number
	}
	return pos
}

// Description is accessible text of the image.
func Description(fig *thesis.Figure, num int) string {
	switch {
	case fig.AltText != "":
		return fig.AltText
	case fig.Caption != "":
		return fig.Caption
	}
	return fmt.Sprintf("Figure %d", num)
}

func Caption(fig *thesis.Figure, num int) string {
	if fig.Caption == "" {
		return fmt.Sprintf("Figure %d", num)
	}
	return fmt.Sprintf("Figure %d: %s", num, fig.Caption)
}

func Placeholder(fig *thesis.Figure) string {
	label := fig.Caption
	if label == "" {
		label = "Untitled"
	}
	return fmt.Sprintf("[Error loading figure: %s]", label)
}
