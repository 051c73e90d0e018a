package contur

// Axis selects which image dimension the target size constrains.
type Axis int

const (
	AxisWidth Axis = iota
	AxisHeight
)

// scaleMargin is the clearance, in output units, kept between the
// shape and the Y origin after normalization.
const scaleMargin = 1.0

// Scale maps the polygon from pixel space into physical output units,
// millimetres. The scale factor derives from the full image dimension
// on the constrained axis, never from the polygon bounds, so a given
// image always produces the same physical size no matter how much
// contour detail the refinement stages removed. Both axes share one
// factor, preserving the aspect ratio. Negative Y coordinates are
// translated up past the origin, with a small margin, since some
// consumers do not render negative coordinates reliably.
func (p *Processor) Scale(poly Polygon, imgWidth, imgHeight int) Polygon {
	if len(poly) == 0 {
		return poly
	}
	dim := imgWidth
	if p.Axis == AxisHeight {
		dim = imgHeight
	}
	factor := p.TargetSize / float64(dim)

	out := make(Polygon, len(poly))
	for i, pt := range poly {
		out[i] = Point{X: pt.X * factor, Y: pt.Y * factor}
	}

	min, _ := out.Bounds()
	if min.Y < 0 {
		shift := -min.Y + scaleMargin
		for i := range out {
			out[i].Y += shift
		}
	}
	return out
}
