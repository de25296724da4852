package config

//go:generate go tool go-enum --marshal --names --values

// Paper size of generated document.
// ENUM(letter, a4)
type PageSize int

// Page orientation.
// ENUM(portrait, landscape)
type Orientation int

// Dimensions returns page width and height in twentieths of a point (twips)
// for requested orientation.
func (p PageSize) Dimensions(o Orientation) (w, h int) {
	switch p {
	case PageSizeA4:
		w, h = 11906, 16838
	default:
		w, h = 12240, 15840
	}
	if o == OrientationLandscape {
		w, h = h, w
	}
	return w, h
}
