package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/guard-patrol/internal/maps"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog maps",
	Long: `Shows the builtin maps and the maps found in the configured maps
directory. Maps in the directory replace builtin maps with the same ID.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	entries, err := loadCatalog()
	if err != nil {
		return err
	}
	printCatalog(cmd.OutOrStdout(), entries)
	return nil
}

// printCatalog writes the catalog as an aligned table.
func printCatalog(w io.Writer, entries []maps.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No maps available.")
		return
	}

	fmt.Fprintln(w, "Available maps:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, e := range entries {
		if len(e.ID) > maxIDLen {
			maxIDLen = len(e.ID)
		}
	}

	// Print header
	fmt.Fprintf(w, "  %-*s  %-7s  %7s  %5s  %s\n", maxIDLen, "ID", "Size", "Visited", "Loops", "Name")
	fmt.Fprintf(w, "  %-*s  %-7s  %7s  %5s  %s\n", maxIDLen, "--", "----", "-------", "-----", "----")

	// Print maps
	for _, e := range entries {
		size := fmt.Sprintf("%dx%d", e.Map.Grid.W, e.Map.Grid.H)
		fmt.Fprintf(w, "  %-*s  %-7s  %7s  %5s  %s\n", maxIDLen, e.ID, size,
			expected(e.Expect.Visited), expected(e.Expect.Loops), e.Name)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'patrol solve --map <id>' to solve a map.")
}

// expected formats an optional recorded answer.
func expected(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
