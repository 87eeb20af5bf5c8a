package patrol_test

import (
	"errors"
	"maps"
	"slices"
	"testing"

	"github.com/vovakirdan/guard-patrol/internal/grid"
	"github.com/vovakirdan/guard-patrol/internal/patrol"
)

const example = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...`

// loopingMap traps the guard in a four-cell square without any extra wall.
const loopingMap = `.#..
.^.#
#...
..#.`

func mustParse(t *testing.T, text string) *patrol.Map {
	t.Helper()
	m, err := patrol.Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return m
}

func TestParseExample(t *testing.T) {
	m := mustParse(t, example)

	if m.Grid.W != 10 || m.Grid.H != 10 {
		t.Errorf("expected 10x10 map, got %dx%d", m.Grid.W, m.Grid.H)
	}
	want := patrol.Guard{Position: grid.C(4, 6), Facing: grid.DirUp}
	if m.Guard != want {
		t.Errorf("expected guard %v, got %v", want, m.Guard)
	}
	if cell, _ := m.Grid.At(m.Guard.Position); cell != patrol.Empty {
		t.Error("guard's starting cell should be empty in the grid")
	}
	if walls := m.Grid.Count(func(c patrol.MapCell) bool { return c == patrol.Wall }); walls != 8 {
		t.Errorf("expected 8 walls, got %d", walls)
	}
	if m.String() != example {
		t.Errorf("String() does not reproduce the input:\n%s", m.String())
	}
}

func TestParseGuardFacings(t *testing.T) {
	testCases := []struct {
		input  string
		facing grid.Dir
	}{
		{"^", grid.DirUp},
		{">", grid.DirRight},
		{"v", grid.DirDown},
		{"<", grid.DirLeft},
	}

	for _, tc := range testCases {
		m := mustParse(t, tc.input)
		if m.Guard.Facing != tc.facing {
			t.Errorf("%q: expected facing %v, got %v", tc.input, tc.facing, m.Guard.Facing)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", grid.ErrEmptyInput},
		{"ragged", "..^\n..", grid.ErrRaggedRows},
		{"invalid character", "..^\n.x.", grid.ErrInvalidCharacter},
		{"no guard", "...\n.#.", patrol.ErrMissingGuard},
		{"two guards", "^..\n..v", patrol.ErrMultipleGuards},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := patrol.Parse(tc.input)
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestExampleAnswers(t *testing.T) {
	m := mustParse(t, example)

	visited, err := patrol.DistinctPositions(m)
	if err != nil {
		t.Fatalf("DistinctPositions failed: %v", err)
	}
	if visited != 41 {
		t.Errorf("expected 41 distinct positions, got %d", visited)
	}

	if loops := patrol.CountLoopObstructions(m); loops != 6 {
		t.Errorf("expected 6 loop obstructions, got %d", loops)
	}

	answer, err := patrol.Solve(m)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if answer != (patrol.Answer{Visited: 41, Loops: 6}) {
		t.Errorf("Solve() = %+v", answer)
	}
}

func TestLoopObstructionPositions(t *testing.T) {
	m := mustParse(t, example)

	got := patrol.LoopObstructions(m)
	expected := []grid.Coord{
		grid.C(3, 6), grid.C(6, 7), grid.C(7, 7),
		grid.C(1, 8), grid.C(3, 8), grid.C(7, 9),
	}
	if !slices.Equal(got, expected) {
		t.Errorf("LoopObstructions() = %v, expected %v", got, expected)
	}
}

func TestObstacleOverrideMatchesClone(t *testing.T) {
	m := mustParse(t, example)

	for c, cell := range m.Grid.Cells() {
		if cell != patrol.Empty || c == m.Guard.Position {
			continue
		}
		modified := m.Clone()
		modified.Grid.Set(c, patrol.Wall)

		want := patrol.Simulate(modified)
		p := patrol.NewPatrolWithObstacle(m, c)
		got := p.Run()

		if got != want.Outcome {
			t.Errorf("obstacle at %v: override gives %v, clone gives %v", c, got, want.Outcome)
		}
		if p.Steps() != want.Steps {
			t.Errorf("obstacle at %v: override took %d steps, clone took %d", c, p.Steps(), want.Steps)
		}
	}

	// The base layout is never touched by the search.
	if m.String() != example {
		t.Error("obstruction search modified the map")
	}
}

func TestSimulateDeterministic(t *testing.T) {
	m := mustParse(t, example)

	first := patrol.Simulate(m)
	second := patrol.Simulate(m)

	if first.Outcome != second.Outcome || first.Steps != second.Steps {
		t.Errorf("runs differ: %v/%d vs %v/%d", first.Outcome, first.Steps, second.Outcome, second.Steps)
	}
	if !maps.Equal(first.Visited, second.Visited) {
		t.Error("visited sets differ between runs")
	}
	if _, ok := first.Visited[m.Guard]; !ok {
		t.Error("visited set should contain the initial state")
	}
}

func TestStepBound(t *testing.T) {
	for _, text := range []string{example, loopingMap} {
		m := mustParse(t, text)
		bound := 4*m.Grid.W*m.Grid.H + 1

		if res := patrol.Simulate(m); res.Steps > bound {
			t.Errorf("simulation took %d steps, bound is %d", res.Steps, bound)
		}
		for c := range m.Grid.Coords() {
			p := patrol.NewPatrolWithObstacle(m, c)
			p.Run()
			if p.Steps() > bound {
				t.Errorf("obstacle at %v: %d steps exceeds bound %d", c, p.Steps(), bound)
			}
		}
	}
}

func TestEdgeExitAfterOneStep(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"top edge facing up", ".^.\n...\n..."},
		{"left edge facing left", "...\n<..\n..."},
		{"right edge facing right", "...\n..>\n..."},
		{"bottom edge facing down", "...\n...\n.v."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := mustParse(t, tc.input)
			res := patrol.Simulate(m)
			if res.Outcome != patrol.OffMap {
				t.Errorf("expected OffMap, got %v", res.Outcome)
			}
			if res.Steps != 1 {
				t.Errorf("expected 1 step, got %d", res.Steps)
			}
			if len(res.Visited) != 1 {
				t.Errorf("expected only the initial state, got %d", len(res.Visited))
			}
		})
	}
}

func TestSingleCellMap(t *testing.T) {
	for _, input := range []string{"^", ">", "v", "<"} {
		m := mustParse(t, input)
		res := patrol.Simulate(m)
		if res.Outcome != patrol.OffMap || res.Steps != 1 {
			t.Errorf("%q: expected OffMap after 1 step, got %v after %d", input, res.Outcome, res.Steps)
		}
		if n, err := patrol.DistinctPositions(m); err != nil || n != 1 {
			t.Errorf("%q: DistinctPositions = %d, %v; expected 1, nil", input, n, err)
		}
		if loops := patrol.CountLoopObstructions(m); loops != 0 {
			t.Errorf("%q: expected no candidates, got %d", input, loops)
		}
	}
}

func TestInitialLoop(t *testing.T) {
	m := mustParse(t, loopingMap)

	res := patrol.Simulate(m)
	if res.Outcome != patrol.Loop {
		t.Fatalf("expected Loop, got %v", res.Outcome)
	}
	if res.Steps != 8 {
		t.Errorf("expected loop detected after 8 steps, got %d", res.Steps)
	}
	if len(res.Visited) != 8 {
		t.Errorf("expected 8 visited states, got %d", len(res.Visited))
	}
	if len(res.Positions()) != 4 {
		t.Errorf("expected 4 distinct positions, got %d", len(res.Positions()))
	}

	if _, err := patrol.DistinctPositions(m); !errors.Is(err, patrol.ErrInitialLoop) {
		t.Errorf("expected ErrInitialLoop, got %v", err)
	}
	if _, err := patrol.Solve(m); !errors.Is(err, patrol.ErrInitialLoop) {
		t.Errorf("Solve: expected ErrInitialLoop, got %v", err)
	}
}

func TestPatrolStepByStep(t *testing.T) {
	m := mustParse(t, "#.\n^.")
	p := patrol.NewPatrol(m)

	// Wall ahead: rotate in place.
	if out := p.Step(); out != patrol.Running {
		t.Fatalf("step 1: expected Running, got %v", out)
	}
	if g := p.Guard(); g.Position != grid.C(0, 1) || g.Facing != grid.DirRight {
		t.Errorf("step 1: expected (0,1) facing Right, got %v", g)
	}

	// Empty ahead: move.
	p.Step()
	if g := p.Guard(); g.Position != grid.C(1, 1) || g.Facing != grid.DirRight {
		t.Errorf("step 2: expected (1,1) facing Right, got %v", g)
	}

	if out := p.Step(); out != patrol.OffMap {
		t.Fatalf("step 3: expected OffMap, got %v", out)
	}
	if p.Steps() != 3 {
		t.Errorf("expected 3 steps, got %d", p.Steps())
	}

	// Finished patrols stay finished.
	if out := p.Step(); out != patrol.OffMap || p.Steps() != 3 {
		t.Errorf("Step after finish changed state: %v, %d steps", out, p.Steps())
	}
	if p.Outcome() != patrol.OffMap {
		t.Errorf("Outcome() = %v", p.Outcome())
	}
	if len(p.Visited()) != 3 {
		t.Errorf("expected 3 visited states, got %d", len(p.Visited()))
	}
}

func TestOutcomeString(t *testing.T) {
	testCases := map[patrol.Outcome]string{
		patrol.Running: "Running",
		patrol.OffMap:  "OffMap",
		patrol.Loop:    "Loop",
	}
	for o, expected := range testCases {
		if o.String() != expected {
			t.Errorf("expected %q, got %q", expected, o.String())
		}
	}
}
