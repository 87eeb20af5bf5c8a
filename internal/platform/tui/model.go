package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/guard-patrol/internal/patrol"
)

// WatchOptions configures the patrol viewer.
type WatchOptions struct {
	Title    string
	TickRate int  // Steps per second
	Trail    bool // Draw |, - and + instead of X
	Paused   bool // Start paused
	Theme    Theme
}

// WatchModel is the Bubble Tea model that animates one patrol.
type WatchModel struct {
	m        *patrol.Map
	patrol   *patrol.Patrol
	opts     WatchOptions
	tickRate int
	paused   bool
	quitting bool
	keys     WatchKeyMap
	help     help.Model
}

// NewWatchModel creates a viewer positioned at the map's initial state.
func NewWatchModel(m *patrol.Map, opts WatchOptions) WatchModel {
	h := help.New()
	h.ShowAll = false

	return WatchModel{
		m:        m,
		patrol:   patrol.NewPatrol(m),
		opts:     opts,
		tickRate: clampTickRate(opts.TickRate),
		paused:   opts.Paused,
		keys:     DefaultWatchKeyMap(),
		help:     h,
	}
}

// Init starts the tick loop.
func (w WatchModel) Init() tea.Cmd {
	return tickCmd(w.tickRate)
}

// Update handles messages and updates the model state.
func (w WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return w.handleKey(msg)

	case tea.WindowSizeMsg:
		w.help.Width = msg.Width
		return w, nil

	case TickMsg:
		if !w.paused {
			w.patrol.Step()
		}
		return w, tickCmd(w.tickRate)
	}

	return w, nil
}

// handleKey processes keyboard input.
func (w WatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.Quit):
		w.quitting = true
		return w, tea.Quit
	case key.Matches(msg, w.keys.Pause):
		w.paused = !w.paused
	case key.Matches(msg, w.keys.Step):
		w.paused = true
		w.patrol.Step()
	case key.Matches(msg, w.keys.Faster):
		w.tickRate = clampTickRate(w.tickRate * 2)
	case key.Matches(msg, w.keys.Slower):
		w.tickRate = clampTickRate(w.tickRate / 2)
	case key.Matches(msg, w.keys.Restart):
		w.patrol = patrol.NewPatrol(w.m)
	case key.Matches(msg, w.keys.Help):
		w.help.ShowAll = !w.help.ShowAll
	}
	return w, nil
}

// Patrol returns the patrol being animated.
func (w WatchModel) Patrol() *patrol.Patrol {
	return w.patrol
}

// Paused reports whether automatic stepping is suspended.
func (w WatchModel) Paused() bool {
	return w.paused
}

// TickRate returns the current speed in steps per second.
func (w WatchModel) TickRate() int {
	return w.tickRate
}

// View renders the HUD, the map and the key help.
func (w WatchModel) View() string {
	if w.quitting {
		return ""
	}

	guard := w.patrol.Guard()
	board := RenderMap(w.m, patrol.RenderOptions{
		Visited: w.patrol.Visited(),
		Trail:   w.opts.Trail,
		Guard:   &guard,
	}, w.opts.Theme)

	return lipgloss.JoinVertical(lipgloss.Left,
		w.hud(),
		"",
		board,
		"",
		w.help.View(w.keys),
	)
}

// hud renders the status line above the map.
func (w WatchModel) hud() string {
	t := w.opts.Theme
	sep := t.HUDSeparator.Render(" │ ")

	status := w.patrol.Outcome().String()
	if w.paused && w.patrol.Outcome() == patrol.Running {
		status = "Paused"
	}

	parts := []string{
		t.HUDValue.Render(fmt.Sprintf("step %d", w.patrol.Steps())),
		t.HUDValue.Render(fmt.Sprintf("positions %d", len(w.patrol.Positions()))),
		t.HUDValue.Render(fmt.Sprintf("%d/s", w.tickRate)),
		t.outcomeStyle(w.patrol.Outcome()).Render(status),
	}
	if w.opts.Title != "" {
		parts = append([]string{t.HUDTitle.Render(w.opts.Title)}, parts...)
	}
	return strings.Join(parts, sep)
}

// RunWatch starts the Bubble Tea program animating a patrol over m.
func RunWatch(m *patrol.Map, opts WatchOptions) error {
	p := tea.NewProgram(
		NewWatchModel(m, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
