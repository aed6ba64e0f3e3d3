/*
Package raster paints a finished maze Grid into an RGB pixel buffer.

Paint converts cell connectivity into wall pixels, DrawOutline lays down the
background and border, and Carve overlays the entry and exit notches. Carve is
applied last so notch pixels never carry wall color.
*/
package raster

import (
	"image"
	"image/color"

	"github.com/beka-birhanu/mazeraster/geometry"
)

const channels = 3

// RGB is an opaque 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Palette used by the painters.
var (
	WallColor    = RGB{R: 10, G: 10, B: 10}
	OutlineColor = RGB{R: 0, G: 0, B: 0}
	EntryColor   = RGB{R: 244, G: 244, B: 0}
	ExitColor    = RGB{R: 0, G: 244, B: 244}
)

// Canvas is a flat row-major RGB pixel buffer. It implements image.Image so
// it can be handed straight to an encoder.
type Canvas struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewCanvas allocates a black canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*channels),
	}
}

// Size returns the canvas dimensions as a Point.
func (c *Canvas) Size() geometry.Point {
	return geometry.Point{X: c.Width, Y: c.Height}
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.Width && y < c.Height
}

// Set paints one pixel. Pixels outside the canvas are ignored.
func (c *Canvas) Set(x, y int, col RGB) {
	if !c.inBounds(x, y) {
		return
	}
	i := (y*c.Width + x) * channels
	c.Pix[i], c.Pix[i+1], c.Pix[i+2] = col.R, col.G, col.B
}

// RGBAt returns the pixel at x, y, or black outside the canvas.
func (c *Canvas) RGBAt(x, y int) RGB {
	if !c.inBounds(x, y) {
		return RGB{}
	}
	i := (y*c.Width + x) * channels
	return RGB{R: c.Pix[i], G: c.Pix[i+1], B: c.Pix[i+2]}
}

// Fill paints every pixel with col.
func (c *Canvas) Fill(col RGB) {
	for i := 0; i < len(c.Pix); i += channels {
		c.Pix[i], c.Pix[i+1], c.Pix[i+2] = col.R, col.G, col.B
	}
}

// Clone returns a deep copy of c.
func (c *Canvas) Clone() *Canvas {
	pix := make([]uint8, len(c.Pix))
	copy(pix, c.Pix)
	return &Canvas{Width: c.Width, Height: c.Height, Pix: pix}
}

func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}

func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Width, c.Height)
}

func (c *Canvas) At(x, y int) color.Color {
	if !c.inBounds(x, y) {
		return color.RGBA{}
	}
	p := c.RGBAt(x, y)
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff}
}
