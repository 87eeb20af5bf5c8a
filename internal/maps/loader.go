// Package maps provides map catalog loading for the patrol tools.
// This package depends on patrol but patrol does not depend on maps.
package maps

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/guard-patrol/internal/maps/formats"
	"github.com/vovakirdan/guard-patrol/internal/patrol"
)

//go:embed builtin
var builtinFS embed.FS

// Entry represents a complete map definition.
type Entry struct {
	ID       string
	Name     string
	Map      *patrol.Map
	Expect   formats.Expect
	Metadata map[string]string
	FilePath string
}

// Loader handles loading maps from a file tree.
type Loader struct {
	FS     fs.FS
	Logger *log.Logger // Optional; receives skipped-file reports at debug level
}

// NewLoader creates a loader over the directory root.
func NewLoader(root string) *Loader {
	return &Loader{FS: os.DirFS(root)}
}

// NewFSLoader creates a loader over an arbitrary file system.
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{FS: fsys}
}

// Builtin returns a loader over the maps compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("maps: builtin catalog: %v", err))
	}
	return NewFSLoader(sub)
}

// WithLogger sets the logger and returns the loader.
func (l *Loader) WithLogger(logger *log.Logger) *Loader {
	l.Logger = logger
	return l
}

// LoadAll recursively scans and loads all map files.
// Files that fail to parse are skipped. Returns maps sorted by ID.
func (l *Loader) LoadAll() ([]Entry, error) {
	var entries []Entry

	err := fs.WalkDir(l.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		entry, err := l.LoadFile(p)
		if err != nil {
			if l.Logger != nil {
				l.Logger.Debug("skipping map file", "path", p, "error", err)
			}
			return nil
		}

		entries = append(entries, entry)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("maps: walking catalog: %w", err)
	}

	// Sort by ID for determinism
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})

	return entries, nil
}

// LoadFile loads a single map file by its path within the loader's file system.
func (l *Loader) LoadFile(p string) (Entry, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Entry{}, fmt.Errorf("maps: reading file %s: %w", p, err)
	}

	parsed, err := parseByExtension(data, p)
	if err != nil {
		return Entry{}, fmt.Errorf("maps: parsing file %s: %w", p, err)
	}

	return Entry{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Map:      parsed.Map,
		Expect:   parsed.Expect,
		Metadata: parsed.Metadata,
		FilePath: p,
	}, nil
}

// LoadByID loads a specific map by ID.
func (l *Loader) LoadByID(id string) (Entry, error) {
	entries, err := l.LoadAll()
	if err != nil {
		return Entry{}, err
	}

	if e, ok := Find(entries, id); ok {
		return e, nil
	}
	return Entry{}, fmt.Errorf("maps: map not found: %s", id)
}

// ListIDs returns all map IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	entries, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, p string) (formats.Entry, error) {
	ext := strings.ToLower(path.Ext(p))
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".txt":
		return formats.ParseText(data, strings.TrimSuffix(path.Base(p), path.Ext(p)))
	default:
		return formats.Entry{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
