// Package figure turns figures attached to sections into embeddable images.
// Decoding and placement are separate steps so each could be checked on its
// own.
package figure

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"strings"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"thesisdoc/utils/images"
)

var (
	ErrEmptyPayload     = errors.New("empty image payload")
	ErrMalformedPayload = errors.New("malformed image payload")
	ErrUnsupportedImage = errors.New("unsupported image format")
)

// Decoded is raw image ready to be put into the document package.
type Decoded struct {
	Data   []byte
	MIME   string
	Ext    string
	Width  int // intrinsic, pixels
	Height int
}

// Decode strips data URI prefix, decodes payload and makes sure result is an
// image the document package could carry. Formats package does not support
// natively are re-encoded as PNG.
func Decode(dataURI string) (*Decoded, error) {
	data, declared, err := payload(dataURI)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyPayload
	}

	kind, _ := filetype.Image(data)
	mime := kind.MIME.Value
	if mime == "" && isSVG(declared, data) {
		mime = "image/svg+xml"
	}

	switch mime {
	case "image/png", "image/jpeg", "image/gif", "image/bmp":
		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		}
		return &Decoded{Data: data, MIME: mime, Ext: extension(mime), Width: cfg.Width, Height: cfg.Height}, nil

	case "image/webp", "image/tiff":
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		}
		return toPNG(img)

	case "image/svg+xml":
		img, err := images.RasterizeSVG(data, 0, 0)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		}
		return toPNG(img)
	}

	if mime == "" {
		return nil, ErrMalformedPayload
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, mime)
}

func toPNG(img image.Image) (*Decoded, error) {
	data, err := images.EncodePNG(img)
	if err != nil {
		return nil, fmt.Errorf("unable to re-encode image: %w", err)
	}
	b := img.Bounds()
	return &Decoded{Data: data, MIME: "image/png", Ext: "png", Width: b.Dx(), Height: b.Dy()}, nil
}

// payload returns decoded bytes and declared media type of data URI. Bare
// base64 without prefix is accepted too.
func payload(dataURI string) ([]byte, string, error) {
	s := strings.TrimSpace(dataURI)
	if s == "" {
		return nil, "", ErrEmptyPayload
	}

	var declared string
	b64 := true
	if rest, ok := strings.CutPrefix(s, "data:"); ok {
		header, body, found := strings.Cut(rest, ",")
		if !found {
			return nil, "", fmt.Errorf("%w: no data separator", ErrMalformedPayload)
		}
		params := strings.Split(header, ";")
		declared = strings.ToLower(strings.TrimSpace(params[0]))
		b64 = false
		for _, p := range params[1:] {
			if strings.EqualFold(strings.TrimSpace(p), "base64") {
				b64 = true
			}
		}
		s = body
	}

	if !b64 {
		text, err := url.PathUnescape(s)
		if err != nil {
			return nil, declared, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		}
		return []byte(text), declared, nil
	}

	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\r', '\t':
			return -1
		}
		return r
	}, s)
	if s == "" {
		return nil, declared, ErrEmptyPayload
	}

	var lastErr error
	for _, enc := range []*base64.Encoding{base64.StdEncoding, base64.RawStdEncoding, base64.URLEncoding, base64.RawURLEncoding} {
		data, err := enc.DecodeString(s)
		if err == nil {
			return data, declared, nil
		}
		lastErr = err
	}
	return nil, declared, fmt.Errorf("%w: %w", ErrMalformedPayload, lastErr)
}

func isSVG(declared string, data []byte) bool {
	if declared == "image/svg+xml" {
		return true
	}
	head := data[:min(len(data), 1024)]
	return bytes.Contains(bytes.ToLower(head), []byte("<svg"))
}

func extension(mime string) string {
	switch mime {
	case "image/jpeg":
		return "jpeg"
	case "image/png":
		return "png"
	case "image/gif":
		return "gif"
	case "image/bmp":
		return "bmp"
	}
	return "bin"
}
