package formats

import (
	"fmt"

	"github.com/vovakirdan/guard-patrol/internal/patrol"
)

// ParseText parses a raw puzzle input. Text files carry no metadata, so the
// ID (usually the file name without extension) is supplied by the caller.
func ParseText(data []byte, id string) (Entry, error) {
	m, err := patrol.Parse(string(data))
	if err != nil {
		return Entry{}, fmt.Errorf("map %s: %w", id, err)
	}
	return Entry{ID: id, Name: id, Map: m}, nil
}
