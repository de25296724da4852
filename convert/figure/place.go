package figure

import (
	"math"

	"thesisdoc/config"
	"thesisdoc/thesis"
)

// Extent is the displayed size of a figure in CSS pixels.
type Extent struct {
	Width, Height int
}

// Place decides displayed size: explicit dimensions when given, configured
// fallback otherwise. When fit is requested wider figures are scaled down
// proportionally to maxWidth.
func Place(dims *thesis.Dimensions, cfg *config.ImagesConfig, maxWidth int) Extent {
	w, h := float64(cfg.DefaultWidth), float64(cfg.DefaultHeight)
	if dims != nil && dims.Width > 0 && dims.Height > 0 {
		w, h = dims.Width, dims.Height
	}
	if cfg.FitToPage && maxWidth > 0 && w > float64(maxWidth) {
		h = h * float64(maxWidth) / w
		w = float64(maxWidth)
	}
	return Extent{
		Width:  max(int(math.Round(w)), 1),
		Height: max(int(math.Round(h)), 1),
	}
}

// TwipsToPixels converts page measurements to CSS pixels at 96 DPI.
func TwipsToPixels(twips int) int {
	return twips * 96 / 1440
}
