package engine

// Grid is a toroidal boolean cell matrix for Conway's Game of Life.
// Row/col lookups wrap at both edges, so every cell has exactly 8 neighbors
// regardless of position. Storage is row-major and double-buffered: Step
// writes the next generation into a scratch buffer and swaps, so the rule is
// always evaluated against a stable snapshot of the current generation.
//
// Grid is not safe for concurrent use. It is owned by the consumer loop and
// never crosses goroutines.
type Grid struct {
	width, height int
	cells         []bool
	next          []bool
}

// NewGrid returns an all-dead grid. Zero width or height is the valid
// degenerate startup state; real dimensions arrive with the first resize.
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Resize(width, height)
	return g
}

// Width returns the number of columns
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows
func (g *Grid) Height() int { return g.height }

// Alive reports the state of a cell, false outside bounds
func (g *Grid) Alive(row, col int) bool {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return false
	}
	return g.cells[row*g.width+col]
}

// Set overwrites a single cell. Out-of-bounds coordinates are rejected:
// the call returns false and the grid is untouched.
func (g *Grid) Set(row, col int, alive bool) bool {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return false
	}
	g.cells[row*g.width+col] = alive
	return true
}

// Resize reallocates to an all-dead grid of the given dimensions.
// Prior content is discarded, not reflowed. Negative dimensions clamp to zero.
func (g *Grid) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g.width = width
	g.height = height
	g.cells = make([]bool, width*height)
	g.next = make([]bool, width*height)
}

// Population returns the number of live cells
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cells {
		if alive {
			n++
		}
	}
	return n
}

// Step advances one generation: a live cell survives with 2 or 3 live
// neighbors, a dead cell with exactly 3 becomes alive, everything else dies
// or stays dead. O(width*height) per call, which bounds the sustainable tick
// rate on very large viewports.
func (g *Grid) Step() {
	w, h := g.width, g.height
	if w == 0 || h == 0 {
		return
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			n := g.liveNeighbors(row, col)
			idx := row*w + col
			alive := g.cells[idx]
			g.next[idx] = (alive && (n == 2 || n == 3)) || (!alive && n == 3)
		}
	}
	g.cells, g.next = g.next, g.cells
}

// liveNeighbors counts the 8 toroidal neighbors of a cell.
// On tiny grids the wrapped offsets can land on the same cell (or the cell
// itself) more than once; those still count, a 1x1 grid is its own 8 neighbors.
func (g *Grid) liveNeighbors(row, col int) int {
	w, h := g.width, g.height
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nr := (row + dy + h) % h
			nc := (col + dx + w) % w
			if g.cells[nr*w+nc] {
				n++
			}
		}
	}
	return n
}
