// Package pattern decides which segments get drawn on an image.
package pattern

import (
	"image"
	"math/rand/v2"
)

// Segment is a straight line between two cells.
type Segment struct {
	A, B image.Point
}

// Strategy supplies the segments to draw inside bounds.
type Strategy interface {
	Segments(bounds image.Rectangle) []Segment
}

var (
	_ Strategy = Grid{}
	_ Strategy = Fixed{}
)

// Grid divides the image into square cells of Step pixels and crosses every
// cell with one of its two diagonals, picked at random. Cells which would
// touch the right or bottom edge of the image are left empty.
type Grid struct {
	Step int
	Rand *rand.Rand
}

func (g Grid) Segments(bounds image.Rectangle) []Segment {
	if g.Step < 1 {
		return nil
	}

	var res []Segment
	s := g.Step
	for y := bounds.Min.Y; y+s < bounds.Max.Y; y += s {
		for x := bounds.Min.X; x+s < bounds.Max.X; x += s {
			if g.Rand.Float64() >= 0.5 {
				res = append(res, Segment{image.Pt(x, y), image.Pt(x+s, y+s)})
			} else {
				res = append(res, Segment{image.Pt(x+s, y), image.Pt(x, y+s)})
			}
		}
	}
	return res
}

// Fixed is a strategy which always returns the same segments.
type Fixed []Segment

func (f Fixed) Segments(image.Rectangle) []Segment {
	return f
}
