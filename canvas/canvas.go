// Package canvas allocates the images that lines are drawn on and paints
// their backgrounds.
package canvas

import (
	"image"
	"image/color"
	"math"

	"lineart/parallel"

	"golang.org/x/image/draw"
)

// New returns an RGBA image of the given size with its origin at (0, 0).
func New(width, height int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

// Fill paints the whole image in colour c.
func Fill(img draw.Image, c color.Color) {
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// gradient weights per channel
const (
	redWeight   = 0.1
	greenWeight = 0.9
	blueWeight  = 0.7
	exponent    = 0.55
)

// FillGradient paints a power law gradient which is black along the top and
// left edges and brightens towards the bottom right corner. Every row is
// submitted to worker; the call returns once wait has seen them finish.
func FillGradient(img *image.RGBA, worker parallel.WorkerFunc, wait parallel.WaitFunc) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		worker(func() {
			py := math.Pow(float64(y-b.Min.Y), exponent)
			row := img.Pix[img.PixOffset(b.Min.X, y):]
			for i := range b.Dx() {
				v := math.Pow(float64(i), exponent) * py
				row[4*i+0] = channel(redWeight * v)
				row[4*i+1] = channel(greenWeight * v)
				row[4*i+2] = channel(blueWeight * v)
				row[4*i+3] = 0xFF
			}
		})
	}
	wait(false)
}

// channel truncates v to a colour channel, saturating at 0 and 255.
func channel(v float64) uint8 {
	return uint8(max(0, min(255, v)))
}
