package canvas

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"lineart/parallel"
)

func TestFill(t *testing.T) {
	img := New(7, 3)
	c := color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}
	Fill(img, c)

	for y := range 3 {
		for x := range 7 {
			if got := img.RGBAAt(x, y); got != c {
				t.Fatalf("pixel (%d, %d) = %v, expected %v", x, y, got, c)
			}
		}
	}
}

func TestFillGradient(t *testing.T) {
	serial := New(64, 48)
	pool := parallel.Start(1)
	FillGradient(serial, pool.Do, pool.Wait)

	for x := range 64 {
		if got := serial.RGBAAt(x, 0); got != (color.RGBA{A: 0xFF}) {
			t.Fatalf("top row pixel %d = %v, expected opaque black", x, got)
		}
	}
	for y := range 48 {
		if got := serial.RGBAAt(0, y); got != (color.RGBA{A: 0xFF}) {
			t.Fatalf("left column pixel %d = %v, expected opaque black", y, got)
		}
	}

	// (1, 1) has weight 1, which truncates to 0 in every channel
	if got := serial.RGBAAt(1, 1); got != (color.RGBA{A: 0xFF}) {
		t.Errorf("pixel (1, 1) = %v, expected opaque black", got)
	}

	corner := serial.RGBAAt(63, 47)
	if !(0 < corner.R && corner.R < corner.B && corner.B < corner.G) {
		t.Errorf("unexpected channel order at the far corner: %v", corner)
	}

	parallelImg := New(64, 48)
	pool = parallel.Start(4)
	FillGradient(parallelImg, pool.Do, pool.Wait)
	pool.Wait(true)

	if !bytes.Equal(serial.Pix, parallelImg.Pix) {
		t.Error("parallel gradient differs from serial gradient")
	}
}

func TestFillGradientOffset(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 14, 23))
	pool := parallel.Start(1)
	FillGradient(img, pool.Do, pool.Wait)

	// the gradient is relative to the image origin
	if got := img.RGBAAt(10, 20); got != (color.RGBA{A: 0xFF}) {
		t.Errorf("origin pixel = %v, expected opaque black", got)
	}
	if got := img.RGBAAt(13, 22); got.G == 0 {
		t.Errorf("far corner pixel = %v, expected some green", got)
	}
}

func TestChannel(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-3, 0},
		{0, 0},
		{12.9, 12},
		{255, 255},
		{835.2, 255},
	}
	for _, test := range tests {
		if got := channel(test.in); got != test.want {
			t.Errorf("channel(%g) = %d, expected %d", test.in, got, test.want)
		}
	}
}
