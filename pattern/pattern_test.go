package pattern

import (
	"image"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestGrid(t *testing.T) {
	tests := []struct {
		name   string
		bounds image.Rectangle
		step   int
		want   int
	}{
		{"demo", image.Rect(0, 0, 500, 500), 50, 81},
		{"exact_fit", image.Rect(0, 0, 101, 101), 50, 4},
		{"wide", image.Rect(0, 0, 120, 40), 10, 33},
		{"offset", image.Rect(-20, 5, 11, 16), 10, 3},
		{"too_small", image.Rect(0, 0, 10, 10), 10, 0},
		{"zero_step", image.Rect(0, 0, 10, 10), 0, 0},
		{"negative_step", image.Rect(0, 0, 10, 10), -3, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := Grid{Step: test.step, Rand: rand.New(rand.NewPCG(1, 2))}
			segs := g.Segments(test.bounds)
			if len(segs) != test.want {
				t.Fatalf("got %d segments, expected %d", len(segs), test.want)
			}

			for _, seg := range segs {
				if !seg.A.In(test.bounds) || !seg.B.In(test.bounds) {
					t.Errorf("segment %v leaves %v", seg, test.bounds)
				}
				d := seg.B.Sub(seg.A)
				if d.Y != test.step || (d.X != test.step && d.X != -test.step) {
					t.Errorf("segment %v is not a cell diagonal", seg)
				}
			}
		})
	}
}

func TestGridDeterministic(t *testing.T) {
	bounds := image.Rect(0, 0, 200, 200)
	a := Grid{Step: 20, Rand: rand.New(rand.NewPCG(7, 7))}.Segments(bounds)
	b := Grid{Step: 20, Rand: rand.New(rand.NewPCG(7, 7))}.Segments(bounds)
	if !slices.Equal(a, b) {
		t.Error("same seed produced different segments")
	}

	var falling, rising int
	for _, seg := range a {
		if seg.B.X > seg.A.X {
			falling++
		} else {
			rising++
		}
	}
	if falling == 0 || rising == 0 {
		t.Errorf("expected both diagonals, got %d and %d", falling, rising)
	}
}

func TestFixed(t *testing.T) {
	f := Fixed{
		{image.Pt(0, 0), image.Pt(5, 5)},
		{image.Pt(-3, 2), image.Pt(40, 2)},
	}
	got := f.Segments(image.Rect(0, 0, 10, 10))
	if !slices.Equal(got, []Segment(f)) {
		t.Errorf("got %v, want %v", got, f)
	}
}
