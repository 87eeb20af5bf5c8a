package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/guard-patrol/internal/platform/tui"
)

var (
	flagFPS    int
	flagPaused bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [file|-]",
	Short: "Animate the patrol step by step",
	Long: `Opens a terminal viewer that advances the guard one step per tick.

Controls:
  Space/P    - Pause or resume
  N          - Single step (pauses)
  +/-        - Double or halve the speed
  R          - Restart from the initial state
  ?          - Toggle full help
  Q/Ctrl+C   - Quit

Examples:
  patrol watch --map example
  patrol watch input.txt --fps 60
  patrol watch --map trap --paused`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&flagFPS, "fps", 0, "Steps per second (default from config)")
	watchCmd.Flags().BoolVar(&flagPaused, "paused", false, "Start paused")
	watchCmd.Flags().BoolVar(&flagTrail, "trail", false, "Mark cells by travel axis (default from config)")
	watchCmd.Flags().StringVar(&flagMapID, "map", "", "Catalog map ID")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := checkWatchInput(args, flagMapID); err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("watch requires a terminal")
	}

	src, err := resolveMap(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	theme, ok := tui.ThemeByName(cfg.Render.Theme)
	if !ok {
		theme = tui.DefaultTheme()
	}

	rate := cfg.Watch.TickRate
	if flagFPS > 0 {
		rate = flagFPS
	}

	logger.Debug("starting viewer", "map", src.Name, "tick_rate", rate)
	return tui.RunWatch(src.Map, tui.WatchOptions{
		Title:    src.Name,
		TickRate: rate,
		Trail:    trailEnabled(cmd),
		Paused:   flagPaused,
		Theme:    theme,
	})
}

// checkWatchInput rejects stdin as the map source, since the viewer reads
// keys from the terminal.
func checkWatchInput(args []string, mapID string) error {
	if len(args) > 0 && args[0] == "-" || len(args) == 0 && mapID == "" {
		return errors.New("watch needs the keyboard; pass a file or --map instead of stdin")
	}
	return nil
}
