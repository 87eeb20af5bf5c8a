// Package patrol simulates a guard walking a walled map and searches for
// single-wall placements that trap the guard in a loop.
// This package is UI-agnostic and deterministic.
package patrol

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/guard-patrol/internal/grid"
)

const (
	CodeMissingGuard   grid.ErrorCode = "MISSING_GUARD"
	CodeMultipleGuards grid.ErrorCode = "MULTIPLE_GUARDS"
)

var (
	ErrMissingGuard   = grid.ParseError{Code: CodeMissingGuard}
	ErrMultipleGuards = grid.ParseError{Code: CodeMultipleGuards}

	// ErrInitialLoop is returned when the unmodified patrol never leaves the
	// map, which leaves the visited-cell count undefined.
	ErrInitialLoop = errors.New("patrol: guard loops without obstruction")
)

// Guard is the guard's position and facing. Each distinct Guard value is one
// simulation state.
type Guard struct {
	Position grid.Coord
	Facing   grid.Dir
}

// String returns a compact representation such as "(4,6)^".
func (g Guard) String() string {
	return fmt.Sprintf("%v%c", g.Position, DirRune(g.Facing))
}

// Map is one puzzle instance: the wall layout and the guard's starting state.
type Map struct {
	Grid  *grid.Grid[MapCell]
	Guard Guard
}

// Parse reads a map from text. Rows must have equal length; recognised
// characters are '.', '#', and exactly one of '^', '>', 'v', '<'.
func Parse(text string) (*Map, error) {
	cells, err := grid.Parse(text, readCell)
	if err != nil {
		return nil, err
	}

	var guards []Guard
	for c, cell := range cells.Cells() {
		if cell.kind == kindGuard {
			guards = append(guards, Guard{Position: c, Facing: cell.facing})
		}
	}

	switch len(guards) {
	case 0:
		return nil, grid.ParseError{Code: CodeMissingGuard, Message: "no guard in map"}
	case 1:
	default:
		positions := make([]string, len(guards))
		for i, g := range guards {
			positions[i] = g.Position.String()
		}
		return nil, grid.ParseError{
			Code:    CodeMultipleGuards,
			Message: fmt.Sprintf("%d guards at %s", len(guards), strings.Join(positions, ", ")),
		}
	}

	return &Map{
		Grid:  grid.Map(cells, parseCell.toMapCell),
		Guard: guards[0],
	}, nil
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	return &Map{Grid: m.Grid.Clone(), Guard: m.Guard}
}

// String renders the map in its input format.
func (m *Map) String() string {
	var sb strings.Builder
	sb.Grow((m.Grid.W + 1) * m.Grid.H)
	for c, cell := range m.Grid.Cells() {
		if c.X == 0 && c.Y > 0 {
			sb.WriteByte('\n')
		}
		if c == m.Guard.Position {
			sb.WriteRune(DirRune(m.Guard.Facing))
			continue
		}
		sb.WriteString(cell.String())
	}
	return sb.String()
}
