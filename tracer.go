package contur

// moore holds the eight neighbor offsets probed by the boundary walk,
// in counterclockwise order starting east. Row indices grow downward
// in the grid, so an offset of {0, 1} reads the next row.
var moore = [8][2]int{
	{1, 0},   // E
	{1, 1},   // NE
	{0, 1},   // N
	{-1, 1},  // NW
	{-1, 0},  // W
	{-1, -1}, // SW
	{0, -1},  // S
	{1, -1},  // SE
}

// Tracer walks the outer boundary of the foreground region of a grid
// using the Moore neighborhood. Each tracer keeps its own visited
// table, so a single instance must not be reused across grids.
type Tracer struct {
	Width   int
	Height  int
	visited []bool
}

// NewTracer returns an initialized Tracer for a grid of the given size.
func NewTracer(width, height int) *Tracer {
	return &Tracer{
		width,
		height,
		make([]bool, width*height),
	}
}

// Trace is a shorthand for tracing a grid with a fresh Tracer.
func Trace(g *Grid) Polygon {
	return NewTracer(g.Width, g.Height).Trace(g)
}

// Trace follows the boundary of the first object found in row-major
// scan order and returns the traversed pixel centers as a polygon.
// The vertical axis is negated on output so the polygon reads in
// drawing coordinates, with y growing upward.
//
// The walk stops when it returns to the starting pixel, when no
// unvisited foreground neighbor remains (an open boundary, such as a
// one pixel wide line), or after twice the grid area worth of steps,
// whichever comes first. An all-background grid yields an empty
// polygon.
func (t *Tracer) Trace(g *Grid) Polygon {
	startX, startY := -1, -1
	for y := 0; y < g.Height && startX < 0; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Foreground(x, y) {
				startX, startY = x, y
				break
			}
		}
	}
	if startX < 0 {
		return Polygon{}
	}

	poly := Polygon{{X: float64(startX), Y: -float64(startY)}}
	cx, cy := startX, startY
	dir := 0

	// The starting pixel is never marked visited, which is what lets
	// the walk recognize a closed loop by reaching it again.
	maxSteps := 2 * g.Width * g.Height
	for step := 0; step < maxSteps; step++ {
		moved := false
		for s := 0; s < 8; s++ {
			d := (dir + s) % 8
			nx, ny := cx+moore[d][0], cy+moore[d][1]
			if !g.Foreground(nx, ny) {
				continue
			}
			if nx == startX && ny == startY {
				if len(poly) > 3 {
					return poly
				}
				continue
			}
			if t.seen(nx, ny) {
				continue
			}
			t.mark(nx, ny)
			poly = append(poly, Point{X: float64(nx), Y: -float64(ny)})
			cx, cy = nx, ny
			dir = (d + 6) % 8
			moved = true
			break
		}
		if !moved {
			break
		}
	}
	return poly
}

func (t *Tracer) seen(x, y int) bool {
	return t.visited[x+y*t.Width]
}

func (t *Tracer) mark(x, y int) {
	t.visited[x+y*t.Width] = true
}
