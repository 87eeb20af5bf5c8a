package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/guard-patrol/internal/patrol"
)

// Theme contains all configurable visual styles for map rendering and the
// patrol viewer.
type Theme struct {
	// Map cell styles
	Empty       lipgloss.Style
	Wall        lipgloss.Style
	Visited     lipgloss.Style
	Trail       lipgloss.Style
	Obstruction lipgloss.Style
	Guard       lipgloss.Style

	// HUD styles
	HUDTitle     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style

	// Outcome banners
	StatusRunning lipgloss.Style
	StatusOffMap  lipgloss.Style
	StatusLoop    lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Empty:       lipgloss.NewStyle().Foreground(lipgloss.Color("238")), // Dark gray
		Wall:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
		Visited:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // Bright cyan
		Trail:       lipgloss.NewStyle().Foreground(lipgloss.Color("87")),
		Obstruction: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true), // Hot pink
		Guard:       lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true), // Bright yellow

		HUDTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		StatusRunning: lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		StatusOffMap:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		StatusLoop:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Empty = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	theme.Wall = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.Visited = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.Trail = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.Obstruction = lipgloss.NewStyle().Reverse(true)
	theme.Guard = lipgloss.NewStyle().Bold(true)
	theme.HUDTitle = lipgloss.NewStyle().Bold(true)
	theme.StatusRunning = lipgloss.NewStyle()
	theme.StatusOffMap = lipgloss.NewStyle().Bold(true)
	theme.StatusLoop = lipgloss.NewStyle().Bold(true).Underline(true)
	return theme
}

// ThemeByName returns the theme registered under name ("default" or "mono").
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "default":
		return DefaultTheme(), true
	case "mono", "monochrome":
		return MonochromeTheme(), true
	}
	return Theme{}, false
}

// glyphStyle returns the style for one rendered cell kind.
func (t Theme) glyphStyle(g patrol.Glyph) lipgloss.Style {
	switch g {
	case patrol.GlyphWall:
		return t.Wall
	case patrol.GlyphVisited:
		return t.Visited
	case patrol.GlyphTrailV, patrol.GlyphTrailH, patrol.GlyphTrailX:
		return t.Trail
	case patrol.GlyphObstruction:
		return t.Obstruction
	case patrol.GlyphGuard:
		return t.Guard
	default:
		return t.Empty
	}
}

// outcomeStyle returns the banner style for a patrol outcome.
func (t Theme) outcomeStyle(o patrol.Outcome) lipgloss.Style {
	switch o {
	case patrol.OffMap:
		return t.StatusOffMap
	case patrol.Loop:
		return t.StatusLoop
	default:
		return t.StatusRunning
	}
}
