package patrol

import (
	"strings"

	"github.com/vovakirdan/guard-patrol/internal/grid"
)

// Glyph is what a renderer draws for one cell.
type Glyph uint8

const (
	GlyphEmpty       Glyph = iota
	GlyphWall              // Wall from the map
	GlyphVisited           // Walked cell, direction not shown
	GlyphTrailV            // Walked vertically only
	GlyphTrailH            // Walked horizontally only
	GlyphTrailX            // Walked along both axes
	GlyphObstruction       // Extra wall that would trap the guard
	GlyphGuard             // Guard marker, see RenderCell.Facing
)

// RenderCell is one cell of a rendered layout.
type RenderCell struct {
	Glyph  Glyph
	Facing grid.Dir // Valid only for GlyphGuard
}

// Rune returns the plain-text character for the cell.
func (rc RenderCell) Rune() rune {
	switch rc.Glyph {
	case GlyphWall:
		return '#'
	case GlyphVisited:
		return 'X'
	case GlyphTrailV:
		return '|'
	case GlyphTrailH:
		return '-'
	case GlyphTrailX:
		return '+'
	case GlyphObstruction:
		return 'O'
	case GlyphGuard:
		return DirRune(rc.Facing)
	default:
		return '.'
	}
}

// RenderOptions selects the overlays drawn on top of the wall layout.
type RenderOptions struct {
	Visited      map[Guard]struct{} // States to mark as walked
	Trail        bool               // Draw |, - and + instead of X
	Obstructions []grid.Coord       // Cells to mark with O
	Guard        *Guard             // Guard marker to draw; nil means the map's start
}

// Layout resolves the overlays into one RenderCell per map cell.
// Later layers win: walls, walked cells, obstructions, guard.
func Layout(m *Map, opts RenderOptions) *grid.Grid[RenderCell] {
	out := grid.Map(m.Grid, func(c MapCell) RenderCell {
		if c == Wall {
			return RenderCell{Glyph: GlyphWall}
		}
		return RenderCell{Glyph: GlyphEmpty}
	})

	if len(opts.Visited) > 0 {
		vertical := make(map[grid.Coord]bool)
		horizontal := make(map[grid.Coord]bool)
		for g := range opts.Visited {
			if g.Facing.Vertical() {
				vertical[g.Position] = true
			} else {
				horizontal[g.Position] = true
			}
		}
		for c := range positions(opts.Visited) {
			glyph := GlyphVisited
			if opts.Trail {
				switch {
				case vertical[c] && horizontal[c]:
					glyph = GlyphTrailX
				case vertical[c]:
					glyph = GlyphTrailV
				default:
					glyph = GlyphTrailH
				}
			}
			out.Set(c, RenderCell{Glyph: glyph})
		}
	}

	for _, c := range opts.Obstructions {
		out.Set(c, RenderCell{Glyph: GlyphObstruction})
	}

	guard := m.Guard
	if opts.Guard != nil {
		guard = *opts.Guard
	}
	out.Set(guard.Position, RenderCell{Glyph: GlyphGuard, Facing: guard.Facing})

	return out
}

// RenderASCII draws the map and its overlays as plain text, one row per line.
// This is used for debugging, testing (golden outputs), and non-terminal output.
func RenderASCII(m *Map, opts RenderOptions) string {
	layout := Layout(m, opts)

	var sb strings.Builder
	sb.Grow((layout.W + 1) * layout.H)
	for c, cell := range layout.Cells() {
		if c.X == 0 && c.Y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteRune(cell.Rune())
	}
	return sb.String()
}
