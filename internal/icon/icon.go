// Package icon draws the extension's face icon: a blue disc with two
// white dot eyes and a white smile.
package icon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/Mavwarf/faceicon/internal/paths"
)

// Colors of the disc body, its outline, and the eyes and smile.
var (
	FillColor    = color.RGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff} // #3498db
	OutlineColor = color.RGBA{R: 0x29, G: 0x80, B: 0xb9, A: 0xff} // #2980b9
	FeatureColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// ErrUnavailable is returned by Draw when the binary was built without a
// raster backend.
var ErrUnavailable = errors.New("icon rendering is not available in this build")

// Renderer draws a face onto a fresh transparent canvas of side g.Size.
type Renderer interface {
	Render(g Geometry) *image.RGBA
}

// backend is set by the build-tagged backend files; nil means none.
var backend Renderer

// Available reports whether a raster backend is compiled in.
func Available() bool {
	return backend != nil
}

// Draw renders the icon at size×size pixels.
func Draw(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}
	if backend == nil {
		return nil, ErrUnavailable
	}
	return backend.Render(Layout(size)), nil
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// Write renders the icon and stores it at path, replacing any existing
// file. Nothing is written unless drawing and encoding both succeed.
func Write(path string, size int) error {
	img, err := Draw(size)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		return fmt.Errorf("encode %dx%d icon: %w", size, size, err)
	}
	return paths.AtomicWrite(path, buf.Bytes())
}
