package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/xonecas/snag/internal/session"
	"github.com/xonecas/snag/internal/textwidth"
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() tea.View {
	if !m.ready {
		return tea.NewView("")
	}
	v := tea.NewView(m.renderContent())
	v.AltScreen = true
	v.WindowTitle = "Grab – " + m.title
	p := m.session.Point()
	v.Cursor = tea.NewCursor(min(p.X, m.width-1), p.Y)
	return v
}

// renderContent produces the string content for the view: the cached
// viewport rows (re-rendering only the invalidated ones) and the status
// bar on the bottom row.
func (m Model) renderContent() string {
	top := m.session.Point().TopLine
	var b strings.Builder
	for i := range m.rowText {
		if !m.rowValid[i] {
			m.rowText[i] = m.renderLine(top + i)
			m.rowValid[i] = true
		}
		b.WriteString(m.rowText[i])
		b.WriteByte('\n')
	}
	b.WriteString(m.renderStatusBar())
	return b.String()
}

// renderLine renders one absolute buffer line with its selection overlay.
//
// Lines entirely inside the selection are painted whole in the selection
// style from the plain text (the styled original would fight the
// highlight). Partial lines keep their original styling and get the
// selected columns re-rendered over it.
func (m Model) renderLine(abs int) string {
	sess := m.session
	if abs > sess.LineCount() {
		return ""
	}
	styled := sess.Line(abs)
	plain := sess.Plain(abs)
	start, end := sess.StartEnd()
	shape := sess.Shape()

	if shape.LineInside(abs, start, end) {
		return m.styles.Selection.Render(plain)
	}

	line := styled
	if strings.ContainsRune(styled, '\x1b') {
		line += ansi.ResetStyle
	}
	if shape.LineOutside(abs, start, end) {
		return line
	}
	startX, endX, ok := shape.SelectionInLine(abs, start, end, textwidth.StringWidth(plain))
	if !ok {
		return line
	}

	slice, half := textwidth.Slice(plain, startX, endX)
	if half {
		// The cut landed mid-glyph; the slice begins one column early.
		startX--
	}
	if slice == "" {
		return line
	}
	return m.overlay(styled, slice, startX)
}

// overlay re-renders the display columns [startX, startX+width(slice)) of
// the styled line in the selection style, keeping the rest of the line's
// original styling intact.
func (m Model) overlay(styled, slice string, startX int) string {
	sliceW := textwidth.StringWidth(slice)
	lineW := textwidth.StringWidth(styled)

	var b strings.Builder
	if startX > 0 {
		left := ansi.Cut(styled, 0, startX)
		b.WriteString(left)
		if strings.ContainsRune(left, '\x1b') {
			b.WriteString(ansi.ResetStyle)
		}
	}
	b.WriteString(m.styles.Selection.Render(slice))
	if startX+sliceW < lineW {
		b.WriteString(ansi.Cut(styled, startX+sliceW, lineW))
		b.WriteString(ansi.ResetStyle)
	}
	return b.String()
}

// renderStatusBar summarizes the grab on the bottom row: title, active
// shape, mark and point, and the modal state when it isn't normal.
func (m Model) renderStatusBar() string {
	sess := m.session
	mark := "-"
	if mk := sess.Mark(); mk != nil {
		mark = mk.String()
	}
	parts := []string{
		m.styles.StatusText.Render(m.title),
		m.styles.StatusTag.Render(sess.Shape().Name()),
		m.styles.StatusText.Render(fmt.Sprintf("mark %s", mark)),
		m.styles.StatusText.Render(fmt.Sprintf("point %s", sess.Point())),
	}
	if mode := sess.Mode(); mode != session.ModeNormal {
		parts = append(parts, m.styles.StatusTag.Render(string(mode)))
	}
	bar := " " + strings.Join(parts, "  ")
	if pad := m.width - lipgloss.Width(bar); pad > 0 {
		bar += strings.Repeat(" ", pad)
	}
	return ansi.Truncate(bar, m.width, "")
}
