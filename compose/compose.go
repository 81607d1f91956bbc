// Package compose stacks decoded garment layers over a base plate image
// and encodes the result as JPEG. Layers are drawn strictly in the order
// given; ordering is a correctness property of the caller's stacking
// rules, not an optimization.
package compose

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

// DefaultJPEGQuality is used when the caller passes quality <= 0.
const DefaultJPEGQuality = 90

// Compositor accumulates layers over a base canvas. The canvas keeps the
// base image's dimensions for its whole lifetime; mismatched layers are
// resized, never the canvas.
type Compositor struct {
	canvas *image.NRGBA
	layers int
}

// New decodes the base plate into a fresh canvas.
func New(base []byte) (*Compositor, error) {
	img, err := imaging.Decode(bytes.NewReader(base))
	if err != nil {
		return nil, &DecodeError{Index: IndexBase, Err: err}
	}
	return &Compositor{canvas: imaging.Clone(img)}, nil
}

// AddLayer decodes one layer, resizes it to the canvas dimensions if
// needed (Lanczos resampling) and alpha-composites it over the canvas at
// the origin. A corrupt layer aborts with a DecodeError carrying the
// layer's index; skipping it would silently produce a wrong image.
func (c *Compositor) AddLayer(data []byte) error {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return &DecodeError{Index: c.layers, Err: err}
	}

	cb := c.canvas.Bounds()
	if img.Bounds().Dx() != cb.Dx() || img.Bounds().Dy() != cb.Dy() {
		img = imaging.Resize(img, cb.Dx(), cb.Dy(), imaging.Lanczos)
	}

	c.canvas = imaging.Overlay(c.canvas, img, image.Pt(0, 0), 1.0)
	c.layers++
	return nil
}

// Dimensions returns the canvas width and height.
func (c *Compositor) Dimensions() (w, h int) {
	b := c.canvas.Bounds()
	return b.Dx(), b.Dy()
}

// EncodeJPEG finalizes the composite.
func (c *Compositor) EncodeJPEG(quality int) ([]byte, error) {
	if quality <= 0 {
		quality = DefaultJPEGQuality
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, c.canvas, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, &EncodeError{Err: err}
	}
	return buf.Bytes(), nil
}

// Layers composes all layers over base in one call.
func Layers(base []byte, layers [][]byte, quality int) ([]byte, error) {
	c, err := New(base)
	if err != nil {
		return nil, err
	}
	for _, data := range layers {
		if err := c.AddLayer(data); err != nil {
			return nil, err
		}
	}
	return c.EncodeJPEG(quality)
}
