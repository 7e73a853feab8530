package tui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

// pressAll feeds key presses through Update, like a user typing.
func pressAll(t *testing.T, m Model, msgs ...tea.KeyPressMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func TestRenderLineSelectionOverlay(t *testing.T) {
	m := newTestModel(t, []string{"hello", "world", "foobar"}, 80, 25)
	m = pressAll(t, m,
		tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModShift},
		tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModShift},
		tea.KeyPressMsg{Code: tea.KeyDown, Mod: tea.ModShift},
		tea.KeyPressMsg{Code: tea.KeyDown, Mod: tea.ModShift},
	)

	// The overlay restyles columns but never changes the text.
	for line, want := range map[int]string{1: "hello", 2: "world", 3: "foobar"} {
		if got := stripANSI(m.renderLine(line)); got != want {
			t.Errorf("renderLine(%d) text = %q, want %q", line, got, want)
		}
	}

	// Rows past the end of the buffer are blank.
	if got := m.renderLine(4); got != "" {
		t.Errorf("renderLine(4) = %q, want empty", got)
	}
}

func TestRenderLineKeepsStylingOutsideSelection(t *testing.T) {
	styled := "\x1b[31mred\x1b[0m plain"
	m := newTestModel(t, []string{styled, "second"}, 80, 25)

	got := m.renderLine(1)
	if !strings.Contains(got, "\x1b[31m") {
		t.Error("unselected lines must keep their original styling")
	}
	if stripANSI(got) != "red plain" {
		t.Errorf("text = %q, want %q", stripANSI(got), "red plain")
	}
}

func TestRenderStatusBar(t *testing.T) {
	m := newTestModel(t, []string{"hello", "world"}, 60, 25)

	bar := stripANSI(m.renderStatusBar())
	for _, want := range []string{"grab", "unselected", "mark -", "point 0,0+1"} {
		if !strings.Contains(bar, want) {
			t.Errorf("status bar %q missing %q", bar, want)
		}
	}
	if len(bar) != 60 {
		t.Errorf("status bar width = %d, want padded to 60", len(bar))
	}

	// Selecting shows the shape and the mark; visual mode adds its tag.
	m = pressAll(t, m,
		tea.KeyPressMsg{Code: 'v', Text: "v"},
		tea.KeyPressMsg{Code: tea.KeyDown},
	)
	bar = stripANSI(m.renderStatusBar())
	for _, want := range []string{"stream", "mark 0,0+1", "point 0,1+1", "visual"} {
		if !strings.Contains(bar, want) {
			t.Errorf("status bar %q missing %q", bar, want)
		}
	}
}

func TestRenderStatusBarNarrowWindow(t *testing.T) {
	// A bar longer than the window is cut at the edge, never wrapped.
	m := newTestModel(t, []string{"hello"}, 20, 5)
	bar := stripANSI(m.renderStatusBar())
	if len(bar) != 20 {
		t.Errorf("status bar width = %d, want truncated to 20", len(bar))
	}
}

func TestViewCursor(t *testing.T) {
	m := newTestModel(t, []string{"hello"}, 10, 5)
	m = pressAll(t, m, tea.KeyPressMsg{Code: 'e', Text: "e"}) // move last: X = cols

	v := m.View()
	if !v.AltScreen {
		t.Error("the grab must run on the alternate screen")
	}
	if v.Cursor == nil {
		t.Fatal("cursor must be visible")
	}
	// The point may sit one past the last column; the terminal cursor
	// stays on screen.
	if v.Cursor.X != 9 || v.Cursor.Y != 0 {
		t.Errorf("cursor at %d,%d, want 9,0", v.Cursor.X, v.Cursor.Y)
	}
}
