package images

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// defaultSVGSize is used when SVG has no usable viewBox. Matches default
// figure width so such drawings come out at expected size.
const defaultSVGSize = 400

// maxRasterDim is the maximum pixel dimension (width or height) allowed when
// rasterizing an SVG. Enormous viewBox values would otherwise allocate
// gigabytes for the RGBA buffer.
var maxRasterDim = 4096

// RasterizeSVG rasterizes SVG drawing onto white background.
//
// Rules:
//   - if targetW == 0 && targetH == 0: use SVG viewBox dimensions (fallback to defaultSVGSize)
//   - if only one of targetW/targetH is > 0: scale by that dimension keeping aspect ratio
//   - if both targetW and targetH are > 0: fit into that box keeping aspect ratio
func RasterizeSVG(svgData []byte, targetW, targetH int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}

	intrW := int(math.Ceil(icon.ViewBox.W))
	intrH := int(math.Ceil(icon.ViewBox.H))
	if intrW <= 0 {
		intrW = defaultSVGSize
	}
	if intrH <= 0 {
		intrH = defaultSVGSize
	}

	w, h := Fit(intrW, intrH, targetW, targetH)

	// Clamp preserving aspect ratio.
	if w > maxRasterDim || h > maxRasterDim {
		w, h = Fit(w, h, maxRasterDim, maxRasterDim)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.RGBA{255, 255, 255, 255}}, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)
	return dst, nil
}

// Fit scales w x h to the requested target keeping aspect ratio. Zero target
// dimension is unconstrained, result is never smaller than 1x1.
func Fit(w, h, targetW, targetH int) (int, int) {
	if w <= 0 || h <= 0 {
		return max(targetW, 1), max(targetH, 1)
	}
	switch {
	case targetW <= 0 && targetH <= 0:
		// keep intrinsic size
	case targetW > 0 && targetH <= 0:
		h = int(math.Round(float64(targetW) * float64(h) / float64(w)))
		w = targetW
	case targetH > 0 && targetW <= 0:
		w = int(math.Round(float64(targetH) * float64(w) / float64(h)))
		h = targetH
	default:
		scale := math.Min(float64(targetW)/float64(w), float64(targetH)/float64(h))
		w = int(math.Round(float64(w) * scale))
		h = int(math.Round(float64(h) * scale))
	}
	return max(w, 1), max(h, 1)
}
