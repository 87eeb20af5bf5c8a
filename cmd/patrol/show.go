package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/guard-patrol/internal/config"
	"github.com/vovakirdan/guard-patrol/internal/patrol"
	"github.com/vovakirdan/guard-patrol/internal/platform/tui"
)

var (
	flagTrail        bool
	flagObstructions bool
	flagNoWalk       bool
)

var showCmd = &cobra.Command{
	Use:   "show [file|-]",
	Short: "Draw the walked map",
	Long: `Walks the guard and draws the map with every visited cell marked X.

With --trail, visited cells show the travel axis instead:
  |  walked vertically
  -  walked horizontally
  +  walked both ways

With --obstructions, cells where one extra wall would trap the guard are
marked O.

Examples:
  patrol show input.txt
  patrol show --map example --trail
  patrol show --map example --obstructions --no-walk`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagTrail, "trail", false, "Mark cells by travel axis (default from config)")
	showCmd.Flags().BoolVar(&flagObstructions, "obstructions", false, "Mark loop-causing obstruction cells with O")
	showCmd.Flags().BoolVar(&flagNoWalk, "no-walk", false, "Do not mark visited cells")
	showCmd.Flags().StringVar(&flagMapID, "map", "", "Catalog map ID")
}

// showOptions selects what runShow draws.
type showOptions struct {
	Trail        bool
	Obstructions bool
	NoWalk       bool
	Color        config.ColorMode
	Theme        string
}

func runShow(cmd *cobra.Command, args []string) error {
	src, err := resolveMap(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	return show(cmd.OutOrStdout(), src, showOptions{
		Trail:        trailEnabled(cmd),
		Obstructions: flagObstructions,
		NoWalk:       flagNoWalk,
		Color:        config.ColorMode(cfg.Render.Color),
		Theme:        cfg.Render.Theme,
	})
}

// show walks src and writes the rendered map to w, styled when w accepts
// color under opts.Color.
func show(w io.Writer, src mapSource, opts showOptions) error {
	res := patrol.Simulate(src.Map)
	render := patrol.RenderOptions{Trail: opts.Trail}
	if !opts.NoWalk {
		render.Visited = res.Visited
	}
	if opts.Obstructions {
		render.Obstructions = patrol.LoopObstructions(src.Map)
	}

	if useColor(opts.Color, w) {
		theme, ok := tui.ThemeByName(opts.Theme)
		if !ok {
			return fmt.Errorf("unknown theme %q", opts.Theme)
		}
		fmt.Fprintln(w, tui.RenderMap(src.Map, render, theme))
	} else {
		fmt.Fprintln(w, patrol.RenderASCII(src.Map, render))
	}

	logger.Info("patrol finished", "map", src.Name, "outcome", res.Outcome, "steps", res.Steps, "positions", len(res.Positions()))
	return nil
}
