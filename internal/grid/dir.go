package grid

// Dir is one of the four cardinal directions.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the unit offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() Delta {
	switch d {
	case DirUp:
		return Delta{0, -1}
	case DirRight:
		return Delta{1, 0}
	case DirDown:
		return Delta{0, 1}
	case DirLeft:
		return Delta{-1, 0}
	default:
		return Delta{}
	}
}

// RotateClockwise returns the direction a quarter turn to the right.
func (d Dir) RotateClockwise() Dir {
	switch d {
	case DirUp:
		return DirRight
	case DirRight:
		return DirDown
	case DirDown:
		return DirLeft
	case DirLeft:
		return DirUp
	default:
		return d
	}
}

// Vertical reports whether the direction moves along the Y axis.
func (d Dir) Vertical() bool {
	return d == DirUp || d == DirDown
}

// CardinalDirections returns the four directions in clockwise order
// starting from Up.
func CardinalDirections() []Dir {
	return []Dir{DirUp, DirRight, DirDown, DirLeft}
}
