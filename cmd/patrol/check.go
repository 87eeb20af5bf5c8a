package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/guard-patrol/internal/maps"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify catalog maps with recorded answers",
	Long: `Solves every catalog map that records expected answers and reports
the maps whose answers differ. Exits with status 1 if any map fails.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, _ []string) error {
	entries, err := loadCatalog()
	if err != nil {
		return err
	}
	return checkCatalog(cmd.OutOrStdout(), entries)
}

// checkCatalog checks each entry with expectations and writes one line per
// map. Returns an error summarising the failures.
func checkCatalog(w io.Writer, entries []maps.Entry) error {
	checked, failed := 0, 0
	for _, e := range entries {
		if e.Expect.Empty() {
			logger.Debug("no recorded answers", "map", e.ID)
			continue
		}
		checked++

		answer, err := maps.Check(e)
		if err != nil {
			failed++
			fmt.Fprintf(w, "FAIL  %s: %v\n", e.ID, err)
			continue
		}
		fmt.Fprintf(w, "ok    %s (visited %d, loops %d)\n", e.ID, answer.Visited, answer.Loops)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d maps failed", failed, checked)
	}
	fmt.Fprintf(w, "%d maps checked\n", checked)
	return nil
}
