package contur

import (
	"math"

	"github.com/esimov/contur/utils"
)

// Tolerances of the refinement stages. They were tuned empirically and
// are kept as independent constants so each stage can be adjusted on
// its own. The final duplicate removal must stay tighter than the
// snapping tolerance, otherwise snapping artifacts survive the last
// pass.
const (
	dedupeTolerance      = 0.01
	finalDedupeTolerance = 0.005
	smoothMinPoints      = 16
	simplifyScale        = 0.3
	simplifyMinTolerance = 0.05
	reduceMaxPoints      = 200
	reduceMinPoints      = 50
	mergeAngleTolerance  = 0.03
	snapAngleTolerance   = 0.04
)

// smoothKernel holds the weights of the fixed smoothing pass,
// applied over a five point circular window.
var smoothKernel = [5]float64{0.1, 0.2, 0.4, 0.2, 0.1}

// Refine runs the traced polygon through the fixed sequence of cleanup
// stages: duplicate removal, smoothing, simplification, adaptive
// reduction, collinear merging and orthogonal snapping. The order is
// load bearing. Smoothing has to run before simplification because
// the simplifier is sensitive to pixel noise, and snapping runs after
// every distance based cull so its right angles are not undone. Each
// stage returns a fresh polygon, the input is never mutated.
func (p *Processor) Refine(poly Polygon) Polygon {
	poly = dedupe(poly, dedupeTolerance)
	poly = smoothAverage(poly, 3)
	poly = smoothAverage(poly, 5)
	poly = smoothWeighted(poly)
	poly = simplify(poly, utils.Max(p.Simplify*simplifyScale, simplifyMinTolerance))
	poly = reduce(poly)
	poly = mergeCollinear(poly)
	poly = snapOrthogonal(poly)
	return dedupe(poly, finalDedupeTolerance)
}

// dedupe drops consecutive points closer than tol. A trailing point
// that duplicates the start within the same tolerance is dropped too,
// so an explicitly closed input comes out implicitly closed.
func dedupe(poly Polygon, tol float64) Polygon {
	if len(poly) == 0 {
		return poly
	}
	out := make(Polygon, 0, len(poly))
	out = append(out, poly[0])
	for _, pt := range poly[1:] {
		if pt.Distance(out[len(out)-1]) >= tol {
			out = append(out, pt)
		}
	}
	if len(out) > 1 && out[len(out)-1].Distance(out[0]) < tol {
		out = out[:len(out)-1]
	}
	return out
}

// smoothAverage applies a circular moving average of the given window
// size. Short polygons pass through untouched: averaging a handful of
// points would round away corners that are the whole shape.
func smoothAverage(poly Polygon, window int) Polygon {
	n := len(poly)
	if n < smoothMinPoints {
		return poly
	}
	half := window / 2
	out := make(Polygon, n)
	for i := 0; i < n; i++ {
		var sx, sy float64
		for k := -half; k <= half; k++ {
			pt := poly[(i+k+n)%n]
			sx += pt.X
			sy += pt.Y
		}
		out[i] = Point{X: sx / float64(window), Y: sy / float64(window)}
	}
	return out
}

// smoothWeighted applies one pass of the fixed weight kernel over a
// circular five point window, with the same short polygon guard as
// the moving average.
func smoothWeighted(poly Polygon) Polygon {
	n := len(poly)
	if n < smoothMinPoints {
		return poly
	}
	out := make(Polygon, n)
	for i := 0; i < n; i++ {
		var sx, sy float64
		for k, w := range smoothKernel {
			pt := poly[(i+k-2+n)%n]
			sx += pt.X * w
			sy += pt.Y * w
		}
		out[i] = Point{X: sx, Y: sy}
	}
	return out
}

// simplify reduces the polygon with Douglas-Peucker: points closer to
// the local reference chord than tol are culled, the rest split the
// chord recursively. The first and last points always survive.
func simplify(poly Polygon, tol float64) Polygon {
	if len(poly) < 3 {
		return poly
	}
	keep := make([]bool, len(poly))
	keep[0], keep[len(poly)-1] = true, true
	simplifyRange(poly, 0, len(poly)-1, tol*tol, keep)

	out := make(Polygon, 0, len(poly))
	for i, k := range keep {
		if k {
			out = append(out, poly[i])
		}
	}
	return out
}

func simplifyRange(poly Polygon, first, last int, sqTol float64, keep []bool) {
	if last <= first+1 {
		return
	}
	maxDist, maxIdx := 0.0, first
	for i := first + 1; i < last; i++ {
		if d := sqSegmentDistance(poly[i], poly[first], poly[last]); d > maxDist {
			maxDist, maxIdx = d, i
		}
	}
	if maxDist > sqTol {
		keep[maxIdx] = true
		simplifyRange(poly, first, maxIdx, sqTol, keep)
		simplifyRange(poly, maxIdx, last, sqTol, keep)
	}
}

// sqSegmentDistance returns the squared distance from p to the segment
// ab. A zero length segment degrades to plain point distance.
func sqSegmentDistance(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx == 0 && dy == 0 {
		return p.DistanceSquared(a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (dx*dx + dy*dy)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.DistanceSquared(Point{X: a.X + t*dx, Y: a.Y + t*dy})
}

// reduce caps the point count by uniform resampling. The target is
// reduceMaxPoints, raised to a tenth of the input length for very
// dense polygons so the resampling never erases more than ninety
// percent of the shape. First and last points are always kept.
func reduce(poly Polygon) Polygon {
	n := len(poly)
	if n <= reduceMaxPoints {
		return poly
	}
	target := reduceMaxPoints
	if floor := utils.Max(reduceMinPoints, n/10); floor > target {
		target = floor
	}

	out := make(Polygon, 0, target)
	step := float64(n-1) / float64(target-1)
	for i := 0; i < target-1; i++ {
		out = append(out, poly[int(float64(i)*step)])
	}
	return append(out, poly[n-1])
}

// mergeCollinear drops every vertex whose turning angle is below the
// merge tolerance, collapsing near collinear runs to their endpoints.
// The polygon is treated as cyclic, so a trailing vertex lying on the
// closing edge is merged as well.
func mergeCollinear(poly Polygon) Polygon {
	n := len(poly)
	if n < 3 {
		return poly
	}
	out := make(Polygon, 0, n)
	for i := 0; i < n; i++ {
		prev := poly[(i-1+n)%n]
		next := poly[(i+1)%n]
		if turningAngle(prev, poly[i], next) >= mergeAngleTolerance {
			out = append(out, poly[i])
		}
	}
	return out
}

// turningAngle returns the absolute direction change at b on the path
// a-b-c, in the range [0, pi].
func turningAngle(a, b, c Point) float64 {
	diff := math.Abs(c.Sub(b).Angle() - b.Sub(a).Angle())
	if diff > math.Pi {
		diff = 2*math.Pi - diff
	}
	return diff
}

// snapOrthogonal forces segments lying close to the horizontal or
// vertical onto the exact axis by moving the endpoint to the start's
// X or Y. Segments are processed in order, so a snapped endpoint
// becomes the start of the next segment. The implicit closing segment
// is left alone: moving the first point would ripple back through the
// whole polygon.
func snapOrthogonal(poly Polygon) Polygon {
	if len(poly) < 2 {
		return poly
	}
	out := make(Polygon, len(poly))
	copy(out, poly)
	for i := 0; i < len(out)-1; i++ {
		ang := out[i+1].Sub(out[i]).Angle()
		switch {
		case math.Abs(ang) < snapAngleTolerance || math.Abs(math.Abs(ang)-math.Pi) < snapAngleTolerance:
			out[i+1].Y = out[i].Y
		case math.Abs(math.Abs(ang)-math.Pi/2) < snapAngleTolerance:
			out[i+1].X = out[i].X
		}
	}
	return out
}
