package maps_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/guard-patrol/internal/grid"
	"github.com/vovakirdan/guard-patrol/internal/maps"
)

const lineYAML = `id: line
name: Line
map: |
  ...
  .^.
  ...
expect:
  visited: 2
  loops: 0
metadata:
  author: test
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"b/line.yaml":    {Data: []byte(lineYAML)},
		"a/corner.txt":   {Data: []byte("#.\n^.\n")},
		"broken.yml":     {Data: []byte("id: broken\nmap: |\n  ..\n  ...\n")},
		"noid.yaml":      {Data: []byte("map: |\n  ^\n")},
		"notes.md":       {Data: []byte("# not a map")},
		"nested/z/z.txt": {Data: []byte("v")},
	}
}

func TestLoaderLoadAll(t *testing.T) {
	loader := maps.NewFSLoader(testFS())

	entries, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 valid maps, got %d", len(entries))
	}

	// Should be sorted by ID
	for i := 1; i < len(entries); i++ {
		if entries[i-1].ID >= entries[i].ID {
			t.Errorf("maps not sorted: %s >= %s", entries[i-1].ID, entries[i].ID)
		}
	}
}

func TestLoaderLoadYAML(t *testing.T) {
	loader := maps.NewFSLoader(testFS())

	e, err := loader.LoadByID("line")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	if e.Name != "Line" {
		t.Errorf("expected Name 'Line', got %q", e.Name)
	}
	if e.Map.Grid.W != 3 || e.Map.Grid.H != 3 {
		t.Errorf("expected 3x3, got %dx%d", e.Map.Grid.W, e.Map.Grid.H)
	}
	if e.Map.Guard.Position != grid.C(1, 1) {
		t.Errorf("expected guard at (1,1), got %v", e.Map.Guard.Position)
	}
	if e.Expect.Visited == nil || *e.Expect.Visited != 2 {
		t.Errorf("expected visited expectation 2, got %v", e.Expect.Visited)
	}
	if e.Metadata["author"] != "test" {
		t.Errorf("expected author metadata, got %v", e.Metadata)
	}
	if e.FilePath != "b/line.yaml" {
		t.Errorf("expected file path b/line.yaml, got %q", e.FilePath)
	}
}

func TestLoaderLoadText(t *testing.T) {
	loader := maps.NewFSLoader(testFS())

	e, err := loader.LoadFile("a/corner.txt")
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if e.ID != "corner" || e.Name != "corner" {
		t.Errorf("expected ID and name from file stem, got %q / %q", e.ID, e.Name)
	}
	if !e.Expect.Empty() {
		t.Error("text maps carry no expectations")
	}
}

func TestLoaderErrors(t *testing.T) {
	loader := maps.NewFSLoader(testFS())

	if _, err := loader.LoadByID("missing"); err == nil {
		t.Error("expected error for unknown ID")
	}
	if _, err := loader.LoadFile("broken.yml"); err == nil {
		t.Error("expected parse error for ragged map")
	}
	if _, err := loader.LoadFile("noid.yaml"); err == nil {
		t.Error("expected error for missing id")
	}
	if _, err := loader.LoadFile("does/not/exist.yaml"); err == nil {
		t.Error("expected read error")
	}
}

func TestLoaderLogsSkippedFiles(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	loader := maps.NewFSLoader(testFS()).WithLogger(logger)
	if _, err := loader.LoadAll(); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "broken.yml") || !strings.Contains(out, "noid.yaml") {
		t.Errorf("expected skipped files in log output, got:\n%s", out)
	}
	if strings.Contains(out, "notes.md") {
		t.Error("unsupported extensions should be ignored silently")
	}
}

func TestLoaderDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "one.txt"), []byte(">.\n.."), 0o600); err != nil {
		t.Fatal(err)
	}

	ids, err := maps.NewLoader(dir).ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != "one" {
		t.Errorf("expected [one], got %v", ids)
	}

	if _, err := maps.NewLoader(filepath.Join(dir, "missing")).LoadAll(); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestBuiltinCatalog(t *testing.T) {
	ids, err := maps.Builtin().ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}

	expected := []string{"example", "exit", "trap"}
	if strings.Join(ids, ",") != strings.Join(expected, ",") {
		t.Errorf("expected builtin IDs %v, got %v", expected, ids)
	}
}
