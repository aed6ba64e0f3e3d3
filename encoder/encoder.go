// Package encoder serializes rendered mazes into image file formats.
package encoder

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
)

var (
	ErrUnknownFormat = errors.New("unknown image format")
)

// Encoder writes an image in one file format.
type Encoder interface {
	Encode(w io.Writer, img image.Image) error
	ContentType() string
	Extension() string
}

// PNG encodes images as PNG.
type PNG struct {
	CompressionLevel png.CompressionLevel
}

func (p PNG) Encode(w io.Writer, img image.Image) error {
	e := png.Encoder{CompressionLevel: p.CompressionLevel}
	return e.Encode(w, img)
}

func (PNG) ContentType() string { return "image/png" }
func (PNG) Extension() string   { return "png" }

// BMP encodes images as uncompressed 24-bit BMP.
type BMP struct{}

func (BMP) Encode(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}

func (BMP) ContentType() string { return "image/bmp" }
func (BMP) Extension() string   { return "bmp" }

// ByFormat returns the encoder for a format name or file extension such as
// "png" or ".bmp". An empty name selects PNG.
func ByFormat(name string) (Encoder, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "", "png":
		return PNG{}, nil
	case "bmp":
		return BMP{}, nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
}
