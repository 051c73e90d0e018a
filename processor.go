package contur

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/esimov/contur/utils"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Vectorizer is the interface the Processor implements to convert a
// binary grid into a contour polygon.
type Vectorizer interface {
	Vectorize(*Grid) Polygon
}

var _ Vectorizer = (*Processor)(nil)

// Processor options
type Processor struct {
	Threshold  int     // luminance cutoff between background and object, 0-255
	Simplify   float64 // simplification aggressiveness, 0.0-1.0
	TargetSize float64 // physical size of the constrained axis, in millimetres
	Axis       Axis    // the image axis TargetSize constrains
	MaxBound   int     // images larger than this are fitted down before tracing
	BlurRadius float64
	Sharpen    float64
	Contrast   float64
	EdgeDetect bool // trace gradient edges instead of thresholded dark regions
	Invert     bool
	Spinner    *utils.Spinner
}

// Process reads an encoded raster image from r, converts it into a
// single closed outline and writes the result as a DXF document to w.
// We are using the io package, since we can provide different input
// and output types, as long as they implement the io.Reader and
// io.Writer interface.
//
// An image without any foreground pixel is not an error: the output
// is a valid document with an empty entities section.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	src, _, err := image.Decode(r)
	if err != nil {
		return fmt.Errorf("could not decode the source image: %v", err)
	}

	grid := p.Rasterize(src)
	poly := p.Vectorize(grid)
	poly = p.Scale(poly, grid.Width, grid.Height)

	doc := NewDocument()
	doc.AddPolygon(poly)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("could not write the output document: %v", err)
	}
	return nil
}

// Vectorize traces the boundary of the first object found in the grid
// and refines the raw contour into a compact polygon.
func (p *Processor) Vectorize(g *Grid) Polygon {
	return p.Refine(Trace(g))
}
