package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/snag/internal/session"
)

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

// handleResize applies a window size change. The bottom row is the status
// bar; everything above it is the session's viewport.
func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height
	rows := max(1, m.height-1)
	m.session.SetSize(rows, m.width)
	m.rowText = make([]string, rows)
	m.rowValid = make([]bool, rows)
	m.ready = true
}

// handleKeyPress resolves a key press against the configured bindings.
// Unbound keys are dropped silently.
func (m Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if !m.ready {
		return m, nil
	}
	for _, b := range m.bindings {
		if key.Matches(msg, b.keys) {
			return m.dispatch(b.cmd)
		}
	}
	return m, nil
}

// dispatch applies one session command and translates its damage into
// render-cache invalidations.
func (m Model) dispatch(cmd session.Command) (tea.Model, tea.Cmd) {
	redraw := m.session.Apply(cmd)
	if m.session.Status() != session.Running {
		return m, tea.Quit
	}
	m.applyDamage(redraw)
	return m, nil
}

// applyDamage invalidates the cached rows the session reported dirty.
// The cursor position and status bar are recomputed every frame, so a
// cursor-only move invalidates nothing.
func (m *Model) applyDamage(redraw session.Redraw) {
	if redraw.All {
		for i := range m.rowValid {
			m.rowValid[i] = false
		}
		return
	}
	top := m.session.Point().TopLine
	for _, line := range redraw.Lines {
		if row := line - top; row >= 0 && row < len(m.rowValid) {
			m.rowValid[row] = false
		}
	}
}
