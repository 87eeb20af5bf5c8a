// Package grid provides a generic fixed-size 2D grid with bounds-checked
// addressing, coordinate arithmetic and parsing from rectangular text.
// It is UI-agnostic and has no dependencies outside the standard library.
package grid

import (
	"fmt"
	"iter"
	"math"
	"strings"
	"unicode/utf8"
)

// Grid is a rectangular grid of cells.
// Cells are stored in row-major order: index = y*W + x.
type Grid[T any] struct {
	W     int // Width of the grid
	H     int // Height of the grid
	cells []T
}

// New creates a grid from row-major cells.
// Returns a ShapeError when len(cells) != w*h.
func New[T any](cells []T, w, h int) (*Grid[T], error) {
	if w < 0 || h < 0 || (w != 0 && h > math.MaxInt/w) || len(cells) != w*h {
		return nil, ShapeError{Cells: len(cells), W: w, H: h}
	}
	return &Grid[T]{W: w, H: h, cells: cells}, nil
}

// Parse builds a grid from newline-separated rows of equal length.
// Each rune is converted with conv; the first conversion failure is returned
// wrapped with its 1-based row and column.
func Parse[T any](text string, conv func(rune) (T, error)) (*Grid[T], error) {
	rows := splitLines(text)
	if len(rows) == 0 {
		return nil, ParseError{Code: CodeEmptyInput, Message: "no lines in input"}
	}

	w := utf8.RuneCountInString(rows[0])
	if w == 0 {
		return nil, ParseError{Code: CodeEmptyInput, Message: "first row is empty"}
	}
	for i, row := range rows[1:] {
		if n := utf8.RuneCountInString(row); n != w {
			return nil, ParseError{
				Code:    CodeRaggedRows,
				Message: fmt.Sprintf("row %d has length %d, expected %d", i+2, n, w),
			}
		}
	}

	cells := make([]T, 0, w*len(rows))
	for y, row := range rows {
		x := 0
		for _, r := range row {
			cell, err := conv(r)
			if err != nil {
				return nil, fmt.Errorf("row %d, col %d: %w", y+1, x+1, err)
			}
			cells = append(cells, cell)
			x++
		}
	}

	return New(cells, w, len(rows))
}

// splitLines splits on "\n", tolerating "\r\n" endings.
// A single trailing line break does not produce an empty row.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// index converts a coordinate to a flat array index.
func (g *Grid[T]) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid[T]) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// At returns the cell at c. The second result is false when c is out of
// bounds; coordinates never wrap.
func (g *Grid[T]) At(c Coord) (T, bool) {
	if !g.InBounds(c) {
		var zero T
		return zero, false
	}
	return g.cells[g.index(c)], true
}

// Ptr returns a pointer to the cell at c for in-place mutation,
// or nil when c is out of bounds.
func (g *Grid[T]) Ptr(c Coord) *T {
	if !g.InBounds(c) {
		return nil
	}
	return &g.cells[g.index(c)]
}

// Set stores v at c. Returns false when c is out of bounds.
func (g *Grid[T]) Set(c Coord, v T) bool {
	p := g.Ptr(c)
	if p == nil {
		return false
	}
	*p = v
	return true
}

// Len returns the number of cells (W*H).
func (g *Grid[T]) Len() int {
	return len(g.cells)
}

// Coords yields every coordinate in row-major order (y outer, x inner).
// The sequence can be ranged over any number of times.
func (g *Grid[T]) Coords() iter.Seq[Coord] {
	w, h := g.W, g.H
	return func(yield func(Coord) bool) {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if !yield(C(x, y)) {
					return
				}
			}
		}
	}
}

// Cells yields every coordinate paired with its cell, in row-major order.
func (g *Grid[T]) Cells() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		for c := range g.Coords() {
			if !yield(c, g.cells[g.index(c)]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{W: g.W, H: g.H, cells: cells}
}

// Count returns the number of cells for which pred holds.
func (g *Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for _, cell := range g.cells {
		if pred(cell) {
			n++
		}
	}
	return n
}

// Map applies f to every cell in row-major order and returns a grid of the
// results with the same dimensions.
func Map[T, U any](g *Grid[T], f func(T) U) *Grid[U] {
	cells := make([]U, len(g.cells))
	for i, cell := range g.cells {
		cells[i] = f(cell)
	}
	return &Grid[U]{W: g.W, H: g.H, cells: cells}
}
