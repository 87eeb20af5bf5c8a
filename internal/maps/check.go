package maps

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/guard-patrol/internal/patrol"
)

// CheckError contains details about an answer that does not match the
// value recorded in the map file.
type CheckError struct {
	Code    string
	Message string
}

func (e CheckError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Check solves the entry and compares the answers with its recorded
// expectations. Answers that are not recorded are not compared.
// The returned Answer has Visited = -1 when the initial patrol loops.
func Check(e Entry) (patrol.Answer, error) {
	answer := patrol.Answer{Loops: patrol.CountLoopObstructions(e.Map)}

	visited, err := patrol.DistinctPositions(e.Map)
	switch {
	case errors.Is(err, patrol.ErrInitialLoop):
		answer.Visited = -1
		if e.Expect.Visited != nil {
			return answer, CheckError{
				Code:    "INITIAL_LOOP",
				Message: fmt.Sprintf("map %s: expected %d visited cells but the guard never leaves", e.ID, *e.Expect.Visited),
			}
		}
	case err != nil:
		return answer, err
	default:
		answer.Visited = visited
	}

	if e.Expect.Visited != nil && *e.Expect.Visited != answer.Visited {
		return answer, CheckError{
			Code:    "VISITED_MISMATCH",
			Message: fmt.Sprintf("map %s: %d visited cells, expected %d", e.ID, answer.Visited, *e.Expect.Visited),
		}
	}
	if e.Expect.Loops != nil && *e.Expect.Loops != answer.Loops {
		return answer, CheckError{
			Code:    "LOOPS_MISMATCH",
			Message: fmt.Sprintf("map %s: %d loop obstructions, expected %d", e.ID, answer.Loops, *e.Expect.Loops),
		}
	}

	return answer, nil
}
