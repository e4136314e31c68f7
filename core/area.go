package core

// Area represents a rectangular screen region
type Area struct {
	X, Y          int // Top-left corner, absolute screen coordinates
	Width, Height int
}

// Empty reports whether the area has no interior
func (a Area) Empty() bool {
	return a.Width <= 0 || a.Height <= 0
}

// Contains reports whether the screen coordinate falls inside the area
func (a Area) Contains(x, y int) bool {
	return x >= a.X && x < a.X+a.Width &&
		y >= a.Y && y < a.Y+a.Height
}

// Inset shrinks the area by n cells on every side
// Collapses to a zero-size area at the same center when too small
func (a Area) Inset(n int) Area {
	a.X += n
	a.Y += n
	a.Width -= 2 * n
	a.Height -= 2 * n
	if a.Width < 0 {
		a.Width = 0
	}
	if a.Height < 0 {
		a.Height = 0
	}
	return a
}
