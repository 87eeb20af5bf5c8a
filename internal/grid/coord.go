package grid

import "fmt"

// Coord represents a 2D coordinate on the grid.
// X increases to the right, Y increases downward (screen coordinates).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the coordinate offset by d.
func (c Coord) Add(d Delta) Coord {
	return Coord{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Sub returns the coordinate offset by the negation of d.
func (c Coord) Sub(d Delta) Coord {
	return Coord{X: c.X - d.DX, Y: c.Y - d.DY}
}

// Diff returns the displacement that takes other to c.
func (c Coord) Diff(other Coord) Delta {
	return Delta{DX: c.X - other.X, DY: c.Y - other.Y}
}

// Step returns a new Coord one step in the given direction.
func (c Coord) Step(d Dir) Coord {
	return c.Add(d.Delta())
}

// Delta is a displacement between two coordinates.
type Delta struct {
	DX int
	DY int
}

// D is a convenience constructor for Delta.
func D(dx, dy int) Delta {
	return Delta{DX: dx, DY: dy}
}

// Neg returns the opposite displacement.
func (d Delta) Neg() Delta {
	return Delta{DX: -d.DX, DY: -d.DY}
}

// Scale multiplies both components by k.
func (d Delta) Scale(k int) Delta {
	return Delta{DX: d.DX * k, DY: d.DY * k}
}

// String returns a string representation of the delta.
func (d Delta) String() string {
	return fmt.Sprintf("<%d,%d>", d.DX, d.DY)
}

var directions = [8]Delta{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Directions returns the 8 unit displacements to the surrounding cells,
// row by row starting from the top-left neighbour.
func Directions() []Delta {
	out := make([]Delta, len(directions))
	copy(out, directions[:])
	return out
}
