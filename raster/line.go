// Package raster stamps straight segments between integer points onto an
// image using Bresenham's incremental algorithm.
package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// Line stamps every cell of the discrete segment a-b onto dst in colour c.
// Both endpoints are included. Cells outside dst.Bounds() are skipped, so
// segments may extend past the edges of the image.
//
// Line does no locking; concurrent calls on the same image must be
// serialized by the caller.
func Line(dst draw.Image, a, b image.Point, c color.Color) {
	Walk(a, b, func(x, y int) {
		emit(dst, x, y, c)
	})
}

// Walk calls plot for every cell of the discrete segment a-b, walking the
// major axis in increasing order. The cells visited do not depend on the
// order of a and b. A zero-length segment yields exactly one cell.
func Walk(a, b image.Point, plot func(x, y int)) {
	dx, dy := b.X-a.X, b.Y-a.Y
	if abs(dy) <= abs(dx) {
		if a.X > b.X {
			a, b = b, a
		}
		walkShallow(a, b, plot)
	} else {
		if a.Y > b.Y {
			a, b = b, a
		}
		walkSteep(a, b, plot)
	}
}

// walkShallow requires a.X <= b.X and |b.Y-a.Y| <= b.X-a.X.
func walkShallow(a, b image.Point, plot func(x, y int)) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	yi := 1
	if dy < 0 {
		yi = -1
		dy = -dy
	}

	// d is the minor axis error, doubled.
	d := 2*dy - dx
	y := a.Y
	for x := a.X; x <= b.X; x++ {
		plot(x, y)
		if d > 0 {
			y += yi
			d -= 2 * dx
		}
		d += 2 * dy
	}
}

// walkSteep requires a.Y <= b.Y and |b.X-a.X| < b.Y-a.Y.
func walkSteep(a, b image.Point, plot func(x, y int)) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	xi := 1
	if dx < 0 {
		xi = -1
		dx = -dx
	}

	d := 2*dx - dy
	x := a.X
	for y := a.Y; y <= b.Y; y++ {
		plot(x, y)
		if d > 0 {
			x += xi
			d -= 2 * dy
		}
		d += 2 * dx
	}
}

// emit sets the pixel at (x, y) and reports whether it was inside dst.
func emit(dst draw.Image, x, y int, c color.Color) bool {
	if !image.Pt(x, y).In(dst.Bounds()) {
		return false
	}
	dst.Set(x, y, c)
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
