package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/guard-patrol/internal/maps"
	"github.com/vovakirdan/guard-patrol/internal/patrol"
)

// flagMapID selects a catalog map instead of a file for solve, show and watch.
var flagMapID string

// mapSource is a parsed map and a label for messages.
type mapSource struct {
	Name string
	Map  *patrol.Map
}

// loadCatalog returns the builtin maps merged with the configured maps
// directory. A missing directory is not an error.
func loadCatalog() ([]maps.Entry, error) {
	var catalogs [][]maps.Entry

	if !cfg.Maps.SkipBuiltin {
		builtin, err := maps.Builtin().WithLogger(logger).LoadAll()
		if err != nil {
			return nil, err
		}
		catalogs = append(catalogs, builtin)
	}

	if dir := cfg.Maps.Dir; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			local, err := maps.NewLoader(dir).WithLogger(logger).LoadAll()
			if err != nil {
				return nil, err
			}
			catalogs = append(catalogs, local)
		} else {
			logger.Debug("maps directory not found", "dir", dir)
		}
	}

	return maps.Merge(catalogs...), nil
}

// resolveMap loads the map named by --map, by a file argument, or from
// stdin when the argument is "-" or absent.
func resolveMap(args []string, stdin io.Reader) (mapSource, error) {
	if flagMapID != "" {
		if len(args) > 0 {
			return mapSource{}, errors.New("give either a file or --map, not both")
		}
		entries, err := loadCatalog()
		if err != nil {
			return mapSource{}, err
		}
		e, ok := maps.Find(entries, flagMapID)
		if !ok {
			return mapSource{}, fmt.Errorf("unknown map %q (run 'patrol list')", flagMapID)
		}
		return mapSource{Name: e.ID, Map: e.Map}, nil
	}

	if len(args) == 0 || args[0] == "-" {
		return readMap("stdin", stdin)
	}
	return loadMapFile(args[0])
}

// loadMapFile reads a map from disk. YAML files use the catalog format;
// anything else is treated as raw map text.
func loadMapFile(path string) (mapSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		e, err := maps.NewLoader(filepath.Dir(path)).LoadFile(filepath.Base(path))
		if err != nil {
			return mapSource{}, err
		}
		return mapSource{Name: e.ID, Map: e.Map}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return mapSource{}, err
	}
	defer f.Close()
	return readMap(filepath.Base(path), f)
}

func readMap(name string, r io.Reader) (mapSource, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return mapSource{}, fmt.Errorf("reading %s: %w", name, err)
	}
	m, err := patrol.Parse(string(data))
	if err != nil {
		return mapSource{}, fmt.Errorf("parsing %s: %w", name, err)
	}
	return mapSource{Name: name, Map: m}, nil
}
