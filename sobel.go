package contur

import (
	"image"
	"math"

	"github.com/esimov/contur/utils"
)

type kernel [3][3]int32

var (
	kernelX = kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}

	kernelY = kernel{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// sobelFilter computes the gradient magnitude of a grayscale image,
// leaving the edges bright on a black background. Pixels outside the
// image are clamped to the nearest border pixel.
// See https://en.wikipedia.org/wiki/Sobel_operator
func sobelFilter(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	dx, dy := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, dx, dy))

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			var sumX, sumY int32
			for ky := 0; ky < 3; ky++ {
				for kx := 0; kx < 3; kx++ {
					px := utils.Min(utils.Max(x+kx-1, 0), dx-1)
					py := utils.Min(utils.Max(y+ky-1, 0), dy-1)
					// The image is grayscale, the red channel holds
					// the full luminance.
					v := int32(img.Pix[py*img.Stride+px*4])
					sumX += v * kernelX[ky][kx]
					sumY += v * kernelY[ky][kx]
				}
			}
			m := math.Sqrt(float64(sumX*sumX) + float64(sumY*sumY))
			if m > 255 {
				m = 255
			}
			i := y*dst.Stride + x*4
			dst.Pix[i] = uint8(m)
			dst.Pix[i+1] = uint8(m)
			dst.Pix[i+2] = uint8(m)
			dst.Pix[i+3] = 255
		}
	}
	return dst
}
