package tui

import (
	"strings"

	"github.com/vovakirdan/guard-patrol/internal/grid"
	"github.com/vovakirdan/guard-patrol/internal/patrol"
)

// RenderMap converts a map and its overlays to a styled string for display.
// Groups adjacent cells with the same glyph to minimize ANSI escape sequences.
func RenderMap(m *patrol.Map, opts patrol.RenderOptions, theme Theme) string {
	layout := patrol.Layout(m, opts)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(layout.W*layout.H*2 + layout.H)

	var run strings.Builder
	for y := range layout.H {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < layout.W {
			cell, _ := layout.At(grid.C(x, y))
			startGlyph := cell.Glyph

			// Collect consecutive cells with same glyph
			run.Reset()
			for x < layout.W {
				cell, _ = layout.At(grid.C(x, y))
				if cell.Glyph != startGlyph {
					break
				}
				run.WriteRune(cell.Rune())
				x++
			}

			sb.WriteString(theme.glyphStyle(startGlyph).Render(run.String()))
		}
	}
	return sb.String()
}
