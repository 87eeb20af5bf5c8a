// Package formats provides pluggable map file format parsers.
package formats

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/guard-patrol/internal/patrol"
)

// YAMLMap represents the YAML structure for a map file.
type YAMLMap struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Map      string            `yaml:"map"`
	Expect   *YAMLExpect       `yaml:"expect,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLExpect holds known answers for a map. Either may be omitted.
type YAMLExpect struct {
	Visited *int `yaml:"visited,omitempty"`
	Loops   *int `yaml:"loops,omitempty"`
}

// Expect holds known answers used by the check command.
// A nil field means the answer is not recorded.
type Expect struct {
	Visited *int
	Loops   *int
}

// Empty reports whether no answer is recorded.
func (e Expect) Empty() bool {
	return e.Visited == nil && e.Loops == nil
}

// Entry represents a parsed map file ready for use.
type Entry struct {
	ID       string
	Name     string
	Map      *patrol.Map
	Expect   Expect
	Metadata map[string]string
}

// ParseYAML parses a YAML map file.
func ParseYAML(data []byte) (Entry, error) {
	var ym YAMLMap
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Entry{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if ym.ID == "" {
		return Entry{}, errors.New("missing id")
	}

	m, err := patrol.Parse(ym.Map)
	if err != nil {
		return Entry{}, fmt.Errorf("map %s: %w", ym.ID, err)
	}

	entry := Entry{
		ID:       ym.ID,
		Name:     ym.Name,
		Map:      m,
		Metadata: ym.Metadata,
	}
	if entry.Name == "" {
		entry.Name = ym.ID
	}
	if ym.Expect != nil {
		entry.Expect = Expect{Visited: ym.Expect.Visited, Loops: ym.Expect.Loops}
	}

	return entry, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".txt"}
}
