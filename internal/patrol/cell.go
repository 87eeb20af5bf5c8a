package patrol

import "github.com/vovakirdan/guard-patrol/internal/grid"

// MapCell is the state of a single map cell once the guard marker has been
// lifted out of the grid.
type MapCell uint8

const (
	Empty MapCell = iota
	Wall
)

// String returns the map character for the cell.
func (c MapCell) String() string {
	if c == Wall {
		return "#"
	}
	return "."
}

// cellKind tags the variants of parseCell.
type cellKind uint8

const (
	kindEmpty cellKind = iota
	kindWall
	kindGuard
)

// parseCell is a cell as read from text: empty, wall, or the guard's
// starting cell together with its facing.
type parseCell struct {
	kind   cellKind
	facing grid.Dir
}

// toMapCell drops the guard marker, leaving an empty cell in its place.
func (p parseCell) toMapCell() MapCell {
	if p.kind == kindWall {
		return Wall
	}
	return Empty
}

// readCell converts one input character.
func readCell(r rune) (parseCell, error) {
	switch r {
	case '.':
		return parseCell{kind: kindEmpty}, nil
	case '#':
		return parseCell{kind: kindWall}, nil
	}
	if d, ok := dirFromRune(r); ok {
		return parseCell{kind: kindGuard, facing: d}, nil
	}
	return parseCell{}, grid.InvalidCharacter(r)
}

func dirFromRune(r rune) (grid.Dir, bool) {
	switch r {
	case '^':
		return grid.DirUp, true
	case '>':
		return grid.DirRight, true
	case 'v':
		return grid.DirDown, true
	case '<':
		return grid.DirLeft, true
	default:
		return 0, false
	}
}

// DirRune returns the guard marker for a facing.
func DirRune(d grid.Dir) rune {
	switch d {
	case grid.DirUp:
		return '^'
	case grid.DirRight:
		return '>'
	case grid.DirDown:
		return 'v'
	case grid.DirLeft:
		return '<'
	default:
		return '?'
	}
}
