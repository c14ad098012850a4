package icon

import "image"

// Geometry holds every drawing parameter for one icon size. All values
// are derived from Size with integer division so a given size always
// produces the same picture.
type Geometry struct {
	Size        int
	Margin      int // inset between canvas edge and disc
	Outline     int // disc outline width
	Center      int
	EyeY        int
	EyeOffset   int // horizontal distance from Center to each eye
	EyeRadius   int
	MouthWidth  int
	MouthY      int
	MouthStroke int
}

// Layout computes the geometry for a square icon of the given side.
func Layout(size int) Geometry {
	center := size / 2
	return Geometry{
		Size:        size,
		Margin:      size / 8,
		Outline:     max(1, size/32),
		Center:      center,
		EyeY:        center - size/6,
		EyeOffset:   size / 4,
		EyeRadius:   max(2, size/16),
		MouthWidth:  size / 3,
		MouthY:      center + size/6,
		MouthStroke: max(2, size/24),
	}
}

// CircleBounds is the box the face disc is inscribed in.
func (g Geometry) CircleBounds() image.Rectangle {
	return image.Rect(g.Margin, g.Margin, g.Size-g.Margin, g.Size-g.Margin)
}

// Eyes returns the left and right eye centres.
func (g Geometry) Eyes() [2]image.Point {
	return [2]image.Point{
		{X: g.Center - g.EyeOffset, Y: g.EyeY},
		{X: g.Center + g.EyeOffset, Y: g.EyeY},
	}
}

// MouthBounds is the box of the ellipse whose lower half forms the smile.
func (g Geometry) MouthBounds() image.Rectangle {
	return image.Rect(
		g.Center-g.MouthWidth, g.MouthY-g.MouthWidth/2,
		g.Center+g.MouthWidth, g.MouthY+g.MouthWidth,
	)
}
