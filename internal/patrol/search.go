package patrol

import "github.com/vovakirdan/guard-patrol/internal/grid"

// Answer holds both results for one map.
type Answer struct {
	Visited int // Distinct cells walked before leaving the map
	Loops   int // Single-wall placements that trap the guard
}

// DistinctPositions returns how many distinct cells the guard occupies
// before walking off the map. Returns ErrInitialLoop if it never does.
func DistinctPositions(m *Map) (int, error) {
	res := Simulate(m)
	if res.Outcome != OffMap {
		return 0, ErrInitialLoop
	}
	return len(res.Positions()), nil
}

// LoopObstructions returns, in row-major order, every empty cell other than
// the guard's start where one extra wall makes the patrol loop.
// Each candidate is simulated independently against the shared layout.
func LoopObstructions(m *Map) []grid.Coord {
	var found []grid.Coord
	for c, cell := range m.Grid.Cells() {
		if cell != Empty || c == m.Guard.Position {
			continue
		}
		if NewPatrolWithObstacle(m, c).Run() == Loop {
			found = append(found, c)
		}
	}
	return found
}

// CountLoopObstructions returns len(LoopObstructions(m)).
func CountLoopObstructions(m *Map) int {
	return len(LoopObstructions(m))
}

// Solve computes both answers.
func Solve(m *Map) (Answer, error) {
	visited, err := DistinctPositions(m)
	if err != nil {
		return Answer{}, err
	}
	return Answer{Visited: visited, Loops: CountLoopObstructions(m)}, nil
}
