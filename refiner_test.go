package contur

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefiner_ReducesRectangleToFourCorners(t *testing.T) {
	g := buildGrid(
		"XXXXX",
		"XXXXX",
		"XXXXX",
		"XXXXX",
	)
	proc := &Processor{Simplify: 0}

	poly := proc.Refine(Trace(g))

	expected := Polygon{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 4, Y: -3},
		{X: 0, Y: -3},
	}
	assert.Equal(t, expected, poly)
}

func TestRefiner_RefineIsIdempotentOnRectangles(t *testing.T) {
	g := buildGrid(
		"XXXXX",
		"XXXXX",
		"XXXXX",
		"XXXXX",
	)
	proc := &Processor{Simplify: 0}

	once := proc.Refine(Trace(g))
	twice := proc.Refine(once)

	assert.Equal(t, once, twice)
}

func TestRefiner_RefineIsNearlyIdempotentOnCurves(t *testing.T) {
	g := circleGrid(64, 25)
	proc := &Processor{Simplify: 0}

	once := proc.Refine(Trace(g))
	twice := proc.Refine(once)

	min1, max1 := once.Bounds()
	min2, max2 := twice.Bounds()
	assert.InDelta(t, min1.X, min2.X, 2.5)
	assert.InDelta(t, min1.Y, min2.Y, 2.5)
	assert.InDelta(t, max1.X, max2.X, 2.5)
	assert.InDelta(t, max1.Y, max2.Y, 2.5)

	assert.GreaterOrEqual(t, len(twice), len(once)/2)
	assert.LessOrEqual(t, len(twice), len(once)*2)
}

func TestRefiner_HigherSimplifyNeverAddsPoints(t *testing.T) {
	raw := Trace(circleGrid(64, 25))

	var counts []int
	for _, s := range []float64{0, 0.5, 1.0} {
		proc := &Processor{Simplify: s}
		counts = append(counts, len(proc.Refine(raw)))
	}

	assert.GreaterOrEqual(t, counts[0], counts[1])
	assert.GreaterOrEqual(t, counts[1], counts[2])
	assert.GreaterOrEqual(t, counts[2], 4, "even aggressive simplification should retain the shape")
}

func TestRefiner_RefineSurvivesDegenerateInputs(t *testing.T) {
	proc := &Processor{Simplify: 0.5}

	assert.Len(t, proc.Refine(Polygon{}), 0)
	assert.Len(t, proc.Refine(Polygon{{X: 3, Y: -4}}), 1)
	assert.LessOrEqual(t, len(proc.Refine(Polygon{{X: 0, Y: 0}, {X: 5, Y: 0}})), 2)
}

func TestRefiner_DedupeDropsCoincidentPoints(t *testing.T) {
	poly := Polygon{
		{X: 0, Y: 0},
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 0.005},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
		{X: 0, Y: 0},
	}

	out := dedupe(poly, dedupeTolerance)

	expected := Polygon{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}
	assert.Equal(t, expected, out)
}

func TestRefiner_SmoothingSkipsShortPolygons(t *testing.T) {
	poly := Polygon{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	}

	assert.Equal(t, poly, smoothAverage(poly, 3))
	assert.Equal(t, poly, smoothAverage(poly, 5))
	assert.Equal(t, poly, smoothWeighted(poly))
}

func TestRefiner_SmoothingContractsCircles(t *testing.T) {
	poly := ringPolygon(20, 10)

	// A circular moving average pulls each point towards the chord of
	// its window. On a regular 20-gon of radius 10 the contraction
	// factor is (1+2cos(2pi/20))/3 for the three point window.
	out := smoothAverage(poly, 3)
	assert.Len(t, out, len(poly))
	want := 10 * (1 + 2*math.Cos(2*math.Pi/20)) / 3
	for i, pt := range out {
		assert.InDelta(t, want, math.Hypot(pt.X, pt.Y), 1e-9, "point %d", i)
	}

	out = smoothWeighted(poly)
	theta := 2 * math.Pi / 20
	want = 10 * (0.4 + 0.4*math.Cos(theta) + 0.2*math.Cos(2*theta))
	for i, pt := range out {
		assert.InDelta(t, want, math.Hypot(pt.X, pt.Y), 1e-9, "point %d", i)
	}
}

func TestRefiner_SimplifyCollapsesCollinearRuns(t *testing.T) {
	poly := Polygon{
		{X: 0, Y: 0},
		{X: 1, Y: 0.001},
		{X: 2, Y: -0.001},
		{X: 3, Y: 0},
		{X: 4, Y: 0},
	}

	out := simplify(poly, simplifyMinTolerance)

	assert.Equal(t, Polygon{{X: 0, Y: 0}, {X: 4, Y: 0}}, out)
}

func TestRefiner_SimplifyKeepsCorners(t *testing.T) {
	poly := Polygon{
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 2, Y: 2},
	}

	out := simplify(poly, simplifyMinTolerance)

	assert.Equal(t, poly, out)
}

func TestRefiner_SegmentDistanceHandlesZeroLengthChord(t *testing.T) {
	d := sqSegmentDistance(Point{X: 3, Y: 4}, Point{}, Point{})

	assert.Equal(t, 25.0, d)
}

func TestRefiner_ReduceCapsDensePolygons(t *testing.T) {
	poly := make(Polygon, 1001)
	for i := range poly {
		poly[i] = Point{X: float64(i)}
	}

	out := reduce(poly)

	assert.Len(t, out, reduceMaxPoints)
	assert.Equal(t, poly[0], out[0])
	assert.Equal(t, poly[len(poly)-1], out[len(out)-1])
}

func TestRefiner_ReduceKeepsTenthOfVeryDensePolygons(t *testing.T) {
	poly := make(Polygon, 3000)
	for i := range poly {
		poly[i] = Point{X: float64(i)}
	}

	out := reduce(poly)

	assert.Len(t, out, 300)
}

func TestRefiner_MergeDropsVertexOnClosingEdge(t *testing.T) {
	poly := Polygon{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 4, Y: -3},
		{X: 0, Y: -3},
		{X: 0, Y: -1},
	}

	out := mergeCollinear(poly)

	// The trailing vertex lies on the implicit closing edge back to
	// the start, so the cyclic merge has to drop it.
	expected := Polygon{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 4, Y: -3},
		{X: 0, Y: -3},
	}
	assert.Equal(t, expected, out)
}

func TestRefiner_TurningAngleWrapsAroundPi(t *testing.T) {
	a := Point{X: 1, Y: -0.02}
	b := Point{}
	c := Point{X: -1, Y: -0.02}

	assert.InDelta(t, 0.04, turningAngle(a, b, c), 1e-4)
}

func TestRefiner_SnapAlignsNearOrthogonalSegments(t *testing.T) {
	poly := Polygon{
		{X: 0, Y: 0},
		{X: 10, Y: 0.2},
		{X: 10.15, Y: 10},
		{X: 0, Y: 10.1},
	}

	out := snapOrthogonal(poly)

	expected := Polygon{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	}
	assert.Equal(t, expected, out)
}

func TestRefiner_SnapLeavesDiagonalsAlone(t *testing.T) {
	poly := Polygon{
		{X: 0, Y: 0},
		{X: 5, Y: 5},
		{X: 10, Y: 0},
	}

	assert.Equal(t, poly, snapOrthogonal(poly))
}

// ringPolygon builds a regular n-gon of the given radius, centered on
// the origin.
func ringPolygon(n int, radius float64) Polygon {
	poly := make(Polygon, n)
	for i := range poly {
		theta := 2 * math.Pi * float64(i) / float64(n)
		poly[i] = Point{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
	}
	return poly
}
