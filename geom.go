package contur

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Sqrt(p.DistanceSquared(q))
}

// DistanceSquared returns the squared distance between two points.
// It avoids the square root where only relative ordering matters.
func (p Point) DistanceSquared(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Angle returns the direction angle of the vector in radians,
// in the range (-Pi, Pi].
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Polygon is an ordered sequence of points forming an implicitly
// closed outline. The closing point is not materialized; every
// consumer treats the last point as connected back to the first.
type Polygon []Point

// Bounds returns the lower-left and upper-right corners of the
// polygon bounding box. A zero-length polygon yields two zero points.
func (poly Polygon) Bounds() (min, max Point) {
	if len(poly) == 0 {
		return Point{}, Point{}
	}
	min, max = poly[0], poly[0]
	for _, pt := range poly[1:] {
		if pt.X < min.X {
			min.X = pt.X
		}
		if pt.Y < min.Y {
			min.Y = pt.Y
		}
		if pt.X > max.X {
			max.X = pt.X
		}
		if pt.Y > max.Y {
			max.Y = pt.Y
		}
	}
	return min, max
}
