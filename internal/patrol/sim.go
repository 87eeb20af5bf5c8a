package patrol

import "github.com/vovakirdan/guard-patrol/internal/grid"

// Outcome is the status of a patrol run.
type Outcome uint8

const (
	Running Outcome = iota // Still walking
	OffMap                 // Guard stepped outside the map
	Loop                   // Guard re-entered a state it had already been in
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case Running:
		return "Running"
	case OffMap:
		return "OffMap"
	case Loop:
		return "Loop"
	default:
		return "Unknown"
	}
}

// Patrol is a single run of the guard over a map, advanced one step at a
// time. The map is only read; an optional extra wall can be layered on top
// without copying the grid.
type Patrol struct {
	m        *Map
	obstacle grid.Coord
	blocked  bool // Whether obstacle is in effect
	guard    Guard
	visited  map[Guard]struct{}
	steps    int
	outcome  Outcome
}

// NewPatrol starts a patrol from the map's initial guard state.
func NewPatrol(m *Map) *Patrol {
	p := &Patrol{
		m:       m,
		guard:   m.Guard,
		visited: make(map[Guard]struct{}, m.Grid.Len()),
	}
	p.visited[p.guard] = struct{}{}
	return p
}

// NewPatrolWithObstacle starts a patrol on m as if the cell at obstacle were
// a wall.
func NewPatrolWithObstacle(m *Map, obstacle grid.Coord) *Patrol {
	p := NewPatrol(m)
	p.obstacle = obstacle
	p.blocked = true
	return p
}

// isWall reports whether c blocks the guard. c must be in bounds.
func (p *Patrol) isWall(c grid.Coord) bool {
	if p.blocked && c == p.obstacle {
		return true
	}
	cell, _ := p.m.Grid.At(c)
	return cell == Wall
}

// Step applies one transition and returns the resulting outcome.
//
// Transition rules:
//  1. Look at the cell in front of the guard
//  2. Outside the map: the patrol ends with OffMap
//  3. Wall: turn clockwise in place
//  4. Empty: move onto it
//
// If the new state has been seen before the patrol ends with Loop.
// Once finished, Step keeps returning the final outcome.
func (p *Patrol) Step() Outcome {
	if p.outcome != Running {
		return p.outcome
	}
	p.steps++

	next := p.guard.Position.Step(p.guard.Facing)
	if !p.m.Grid.InBounds(next) {
		p.outcome = OffMap
		return p.outcome
	}

	if p.isWall(next) {
		p.guard.Facing = p.guard.Facing.RotateClockwise()
	} else {
		p.guard.Position = next
	}

	if _, seen := p.visited[p.guard]; seen {
		p.outcome = Loop
		return p.outcome
	}
	p.visited[p.guard] = struct{}{}
	return Running
}

// Run steps until the patrol finishes.
func (p *Patrol) Run() Outcome {
	for p.Step() == Running {
	}
	return p.outcome
}

// Guard returns the current guard state.
func (p *Patrol) Guard() Guard {
	return p.guard
}

// Outcome returns the current outcome.
func (p *Patrol) Outcome() Outcome {
	return p.outcome
}

// Steps returns the number of transitions applied, including the final one.
func (p *Patrol) Steps() int {
	return p.steps
}

// Visited returns the set of states seen so far. The set is owned by the
// patrol and must not be modified.
func (p *Patrol) Visited() map[Guard]struct{} {
	return p.visited
}

// Positions returns the distinct cells walked so far.
func (p *Patrol) Positions() map[grid.Coord]struct{} {
	return positions(p.visited)
}

// Result summarises a finished patrol.
type Result struct {
	Visited map[Guard]struct{}
	Outcome Outcome
	Steps   int
}

// Positions returns the distinct cells among the visited states.
func (r Result) Positions() map[grid.Coord]struct{} {
	return positions(r.Visited)
}

func positions(visited map[Guard]struct{}) map[grid.Coord]struct{} {
	out := make(map[grid.Coord]struct{}, len(visited))
	for g := range visited {
		out[g.Position] = struct{}{}
	}
	return out
}

// Simulate runs a patrol on m from its initial state to completion.
// It always terminates: there are at most 4*W*H states.
func Simulate(m *Map) Result {
	p := NewPatrol(m)
	outcome := p.Run()
	return Result{Visited: p.visited, Outcome: outcome, Steps: p.steps}
}
