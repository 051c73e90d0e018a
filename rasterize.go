package contur

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Rasterize runs the preprocessing chain over the source image and
// thresholds the result into a binary grid. Transparent regions are
// flattened onto a white background first, then the image is bounded
// to MaxBound pixels on the longest side, converted to grayscale and
// optionally contrast adjusted, sharpened and blurred before the
// threshold step. With EdgeDetect the threshold is applied to the
// Sobel gradient of the preprocessed image instead of its luminance,
// which suits photographs with no clear dark silhouette. The returned
// grid dimensions are the dimensions of the bounded image, which the
// scaling step relies on.
func (p *Processor) Rasterize(src image.Image) *Grid {
	b := src.Bounds()
	img := imaging.New(b.Dx(), b.Dy(), color.White)
	img = imaging.Overlay(img, src, image.Point{}, 1.0)

	if p.MaxBound > 0 {
		img = imaging.Fit(img, p.MaxBound, p.MaxBound, imaging.Lanczos)
	}

	img = imaging.Grayscale(img)
	if p.Contrast != 0 {
		img = imaging.AdjustContrast(img, p.Contrast)
	}
	if p.Sharpen > 0 {
		img = imaging.Sharpen(img, p.Sharpen)
	}
	if p.BlurRadius > 0 {
		img = imaging.Blur(img, p.BlurRadius)
	}
	if p.EdgeDetect {
		// The gradient image carries bright edges on black, inverting
		// it lets the dark-is-foreground threshold pick the edges up.
		img = imaging.Invert(sobelFilter(img))
	}

	return p.binarize(img)
}

// binarize classifies every pixel against the luminance threshold.
// Pixels darker than the threshold count as foreground, matching the
// usual dark-ink-on-light-paper input. The Invert option flips the
// classification for light shapes on dark backgrounds.
func (p *Processor) binarize(img *image.NRGBA) *Grid {
	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()
	grid := NewGrid(dx, dy)

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			lum := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 256
			fg := lum < float64(p.Threshold)
			if p.Invert {
				fg = !fg
			}
			grid.Set(x, y, fg)
		}
	}
	return grid
}
