//go:build !noraster

package icon

import (
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// arcSegments is the number of line segments used to approximate the mouth.
const arcSegments = 64

func init() {
	backend = rasterRenderer{}
}

// rasterRenderer draws with anti-aliased rasterx fillers and strokers.
type rasterRenderer struct{}

func (rasterRenderer) Render(g Geometry) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Size, g.Size))
	scanner := rasterx.NewScannerGV(g.Size, g.Size, img, img.Bounds())
	filler := rasterx.NewFiller(g.Size, g.Size, scanner)
	stroker := rasterx.NewStroker(g.Size, g.Size, scanner)

	// Disc and its outline, both inside CircleBounds.
	b := g.CircleBounds()
	cx, cy := midpoint(b)
	r := float64(b.Dx()) / 2
	fillCircle(filler, cx, cy, r, FillColor)
	w := float64(g.Outline)
	strokeCircle(stroker, cx, cy, r-w/2, w, OutlineColor)

	for _, eye := range g.Eyes() {
		fillCircle(filler, float64(eye.X), float64(eye.Y), float64(g.EyeRadius), FeatureColor)
	}

	drawSmile(stroker, g.MouthBounds(), float64(g.MouthStroke), FeatureColor)
	return img
}

func midpoint(r image.Rectangle) (float64, float64) {
	return float64(r.Min.X+r.Max.X) / 2, float64(r.Min.Y+r.Max.Y) / 2
}

func fillCircle(f *rasterx.Filler, cx, cy, r float64, c color.Color) {
	f.Clear()
	f.SetColor(c)
	rasterx.AddCircle(cx, cy, r, f)
	f.Draw()
}

func strokeCircle(s *rasterx.Stroker, cx, cy, r, width float64, c color.Color) {
	s.Clear()
	s.SetColor(c)
	s.SetStroke(toFixed(width), toFixed(4), rasterx.ButtCap, rasterx.ButtCap, rasterx.RoundGap, rasterx.Round)
	rasterx.AddCircle(cx, cy, r, s)
	s.Draw()
}

// drawSmile strokes the 0°..180° part of the ellipse bounded by b. Angles
// run clockwise from 3 o'clock in image coordinates, so this is the lower
// half. The stroke stays inside b.
func drawSmile(s *rasterx.Stroker, b image.Rectangle, width float64, c color.Color) {
	cx, cy := midpoint(b)
	rx := float64(b.Dx())/2 - width/2
	ry := float64(b.Dy())/2 - width/2

	s.Clear()
	s.SetColor(c)
	s.SetStroke(toFixed(width), toFixed(4), rasterx.ButtCap, rasterx.ButtCap, rasterx.RoundGap, rasterx.Round)
	for i := 0; i <= arcSegments; i++ {
		theta := math.Pi * float64(i) / arcSegments
		p := rasterx.ToFixedP(cx+rx*math.Cos(theta), cy+ry*math.Sin(theta))
		if i == 0 {
			s.Start(p)
		} else {
			s.Line(p)
		}
	}
	s.Stop(false)
	s.Draw()
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
