// Package imagemeta inspects uploaded payloads for pixel dimensions and content type.
package imagemeta

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Dimensions is the pixel size of an image.
type Dimensions struct {
	Width  int
	Height int
}

// Probe reads only the image header. ok is false when the data is not an
// image in a registered format; callers treat that as "size unknown".
func Probe(data []byte) (dim Dimensions, ok bool) {
	defer func() {
		// Some decoders panic on hostile headers instead of returning an error.
		if recover() != nil {
			dim, ok = Dimensions{}, false
		}
	}()

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return Dimensions{}, false
	}
	return Dimensions{Width: cfg.Width, Height: cfg.Height}, true
}

// DetectMIME sniffs the content type of data, e.g. "image/png".
func DetectMIME(data []byte) string {
	return mimetype.Detect(data).String()
}

// DetectExtension sniffs the file extension of data without the leading dot.
// It returns "" when the type has no known extension.
func DetectExtension(data []byte) string {
	ext := mimetype.Detect(data).Extension()
	if len(ext) > 0 && ext[0] == '.' {
		ext = ext[1:]
	}
	return ext
}
