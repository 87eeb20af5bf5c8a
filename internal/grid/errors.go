package grid

import "fmt"

// ErrorCode classifies a ParseError.
type ErrorCode string

const (
	CodeEmptyInput       ErrorCode = "EMPTY_INPUT"
	CodeRaggedRows       ErrorCode = "RAGGED_ROWS"
	CodeInvalidCharacter ErrorCode = "INVALID_CHARACTER"
)

// ParseError describes why text could not be turned into a grid.
// Two ParseErrors match under errors.Is when their codes are equal.
type ParseError struct {
	Code    ErrorCode
	Message string
}

func (e ParseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("[%s]", e.Code)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is reports whether target is a ParseError with the same code.
func (e ParseError) Is(target error) bool {
	t, ok := target.(ParseError)
	return ok && t.Code == e.Code
}

var (
	ErrEmptyInput       = ParseError{Code: CodeEmptyInput}
	ErrRaggedRows       = ParseError{Code: CodeRaggedRows}
	ErrInvalidCharacter = ParseError{Code: CodeInvalidCharacter}
)

// InvalidCharacter returns the error a cell converter reports for a rune it
// has no mapping for.
func InvalidCharacter(r rune) error {
	return ParseError{
		Code:    CodeInvalidCharacter,
		Message: fmt.Sprintf("invalid character %q", r),
	}
}

// ShapeError is returned when the number of cells does not match the
// requested dimensions.
type ShapeError struct {
	Cells int
	W     int
	H     int
}

func (e ShapeError) Error() string {
	return fmt.Sprintf("grid shape mismatch: %d cells != %d * %d", e.Cells, e.W, e.H)
}
