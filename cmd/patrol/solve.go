package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/guard-patrol/internal/patrol"
)

var flagPart int

var solveCmd = &cobra.Command{
	Use:   "solve [file|-]",
	Short: "Print distinct positions and loop obstructions",
	Long: `Reads a map and prints two numbers, one per line:

  1. distinct cells the guard occupies before leaving the map
  2. empty cells where one extra wall would trap the guard in a loop

The map is read from the file argument, from stdin when the argument is
"-" or missing, or from the catalog with --map.

Examples:
  patrol solve input.txt
  patrol solve --map example
  patrol solve --part 2 < input.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&flagPart, "part", 0, "Print only part 1 or part 2 (0 = both)")
	solveCmd.Flags().StringVar(&flagMapID, "map", "", "Catalog map ID")
}

func runSolve(cmd *cobra.Command, args []string) error {
	src, err := resolveMap(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	return solve(cmd.OutOrStdout(), src, flagPart)
}

// solve writes the requested answers for src to w.
func solve(w io.Writer, src mapSource, part int) error {
	if part < 0 || part > 2 {
		return fmt.Errorf("--part must be 1 or 2, got %d", part)
	}

	if part != 2 {
		start := time.Now()
		visited, err := patrol.DistinctPositions(src.Map)
		if err != nil {
			return fmt.Errorf("%s: %w", src.Name, err)
		}
		logger.Debug("part 1 solved", "map", src.Name, "visited", visited, "elapsed", time.Since(start))
		fmt.Fprintln(w, visited)
	}

	if part != 1 {
		start := time.Now()
		loops := patrol.CountLoopObstructions(src.Map)
		logger.Debug("part 2 solved", "map", src.Name, "loops", loops, "elapsed", time.Since(start))
		fmt.Fprintln(w, loops)
	}

	return nil
}
