package contur

// Grid is a binary raster produced by the thresholding step:
// every cell is either foreground (object) or background.
// Cells are stored row-major, one byte per cell.
type Grid struct {
	Width  int
	Height int
	cells  []uint8
}

// NewGrid returns an all-background grid of the given dimensions.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]uint8, width*height),
	}
}

// Set marks the cell at (x, y) as foreground or background.
// Coordinates outside the grid are ignored.
func (g *Grid) Set(x, y int, foreground bool) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return
	}
	if foreground {
		g.cells[x+y*g.Width] = 1
	} else {
		g.cells[x+y*g.Width] = 0
	}
}

// Foreground reports whether the cell at (x, y) is foreground.
// Coordinates outside the grid always read as background, which lets
// the boundary tracer probe neighbors without bounds bookkeeping.
func (g *Grid) Foreground(x, y int) bool {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return false
	}
	return g.cells[x+y*g.Width] == 1
}
