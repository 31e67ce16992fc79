package core

// Point represents a 2D coordinate, origin top-left
type Point struct {
	X, Y int
}

// Add returns the point offset by dx, dy
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Area represents a rectangular region
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Contains checks if point is within area
func (a Area) Contains(p Point) bool {
	return p.X >= a.X && p.X < a.X+a.Width && p.Y >= a.Y && p.Y < a.Y+a.Height
}

// Overlaps reports whether two areas share at least one cell
func (a Area) Overlaps(b Area) bool {
	return a.X < b.X+b.Width && b.X < a.X+a.Width &&
		a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}

// At returns an area of the same size anchored at p
func (a Area) At(p Point) Area {
	return Area{X: p.X, Y: p.Y, Width: a.Width, Height: a.Height}
}
