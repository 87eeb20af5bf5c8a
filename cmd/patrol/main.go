// patrol simulates a guard walking a grid map and answers questions about
// the walk.
//
// Usage:
//
//	patrol solve [file|-]    - Print distinct positions and loop obstructions
//	patrol show [file|-]     - Draw the walked map
//	patrol watch [file|-]    - Animate the patrol step by step
//	patrol list              - List catalog maps
//	patrol check             - Verify catalog maps against recorded answers
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.patrol, ./configs)
//	--log-level <lvl>   - debug, info, warn or error
//	--maps-dir <path>   - Directory of map files
//	--env-file <path>   - Dotenv file with PATROL_* overrides (default: .env)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/guard-patrol/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagMapsDir  string
	flagEnvFile  string
)

var (
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "patrol",
	Short: "Guard patrol simulator",
	Long: `patrol walks a guard across a map of empty cells (.) and walls (#).
The guard starts at ^, >, v or < and moves forward, turning right at
walls, until it leaves the map or repeats a position and facing.

Available commands:
  solve    - Count distinct positions and loop-causing obstructions
  show     - Draw the walked map
  watch    - Animate the patrol in the terminal
  list     - Show catalog maps
  check    - Verify catalog maps with recorded answers

Examples:
  patrol solve input.txt
  patrol solve --map example --part 2
  cat input.txt | patrol show --trail
  patrol watch --map trap`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagMapsDir, "maps-dir", "", "Directory of map files")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Dotenv file with PATROL_* overrides")

	// Add subcommands
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
}

// setup loads configuration, applies overrides and builds the logger.
// Precedence: flags > environment > .env file > config file > defaults.
func setup(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	fileEnv, err := config.LoadEnvFile(flagEnvFile)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(&loaded, fileEnv); err != nil {
		return err
	}

	if flagLogLevel != "" {
		loaded.Log.Level = flagLogLevel
	}
	if flagMapsDir != "" {
		loaded.Maps.Dir = flagMapsDir
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	logger = newLogger(cfg.Log)
	applyColorMode(config.ColorMode(cfg.Render.Color))

	logger.Debug("configuration loaded", "maps_dir", cfg.Maps.Dir, "color", cfg.Render.Color, "theme", cfg.Render.Theme)
	return nil
}

// newLogger creates the stderr logger used by all commands.
func newLogger(lc config.LogConfig) *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: lc.Timestamps,
		Prefix:          "patrol",
	})
	if level, err := log.ParseLevel(lc.Level); err == nil {
		l.SetLevel(level)
	}
	return l
}

// applyColorMode forces or disables styled output. Auto leaves detection
// to lipgloss.
func applyColorMode(mode config.ColorMode) {
	switch mode {
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
	case config.ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// useColor reports whether styled output should be written to w. In auto
// mode only a terminal gets styles.
func useColor(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
}

// trailEnabled returns --trail when it was given on the command line and
// the configured render.trail otherwise.
func trailEnabled(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("trail") {
		return flagTrail
	}
	return cfg.Render.Trail
}
