package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/snag/internal/config"
	"github.com/xonecas/snag/internal/region"
	"github.com/xonecas/snag/internal/session"
)

func newTestModel(t *testing.T, lines []string, width, height int) Model {
	t.Helper()
	sess := session.New(lines, region.Position{X: 0, Y: 0, TopLine: 1}, "")
	m, err := New(sess, config.Default(), "grab")
	if err != nil {
		t.Fatal(err)
	}
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return updated.(Model)
}

func TestNewRejectsBadBinding(t *testing.T) {
	cfg := config.Default()
	cfg.Bindings["x"] = "fly home"
	sess := session.New([]string{"a"}, region.Position{X: 0, Y: 0, TopLine: 1}, "")
	if _, err := New(sess, cfg, "grab"); err == nil {
		t.Fatal("an unparseable binding must fail at startup")
	}
}

func TestResize(t *testing.T) {
	m := newTestModel(t, []string{"a", "b"}, 80, 25)
	if !m.ready {
		t.Fatal("model must be ready after the first resize")
	}
	// One row is reserved for the status bar.
	if m.session.Rows() != 24 || m.session.Cols() != 80 {
		t.Errorf("session size = %dx%d, want 24x80", m.session.Rows(), m.session.Cols())
	}
	if len(m.rowText) != 24 || len(m.rowValid) != 24 {
		t.Errorf("render cache sized %d/%d, want 24", len(m.rowText), len(m.rowValid))
	}
}

func TestKeyPressDispatch(t *testing.T) {
	m := newTestModel(t, []string{"hello", "world"}, 80, 25)

	// A bound key runs its command.
	updated, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyDown, Mod: tea.ModShift})
	m = updated.(Model)
	if m.session.Mark() == nil || m.session.Point().Line() != 2 {
		t.Errorf("shift+down must extend a selection down: point %v", m.session.Point())
	}

	// An unbound key is dropped silently.
	before := m.session.Point()
	updated, _ = m.Update(tea.KeyPressMsg{Code: 'z', Text: "z"})
	m = updated.(Model)
	if m.session.Point() != before {
		t.Error("unbound keys must not move the point")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyPressMsg{
		{Code: 'q', Text: "q"},
		{Code: tea.KeyEscape},
	} {
		m := newTestModel(t, []string{"hello"}, 80, 25)
		updated, cmd := m.Update(msg)
		m = updated.(Model)
		if cmd == nil {
			t.Fatalf("%v must quit the program", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%v produced %T, want tea.QuitMsg", msg, cmd())
		}
		if m.session.Status() != session.Cancelled {
			t.Errorf("status = %v, want Cancelled", m.session.Status())
		}
		if _, ok := m.Result(); ok {
			t.Error("a cancelled grab must not report a result")
		}
	}
}

func TestConfirmKey(t *testing.T) {
	m := newTestModel(t, []string{"hello", "world"}, 80, 25)

	for _, msg := range []tea.KeyPressMsg{
		{Code: tea.KeyRight, Mod: tea.ModShift},
		{Code: tea.KeyRight, Mod: tea.ModShift},
		{Code: tea.KeyEnter},
	} {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}

	got, ok := m.Result()
	if !ok || got != "he" {
		t.Errorf("Result() = %q, %v, want %q, true", got, ok, "he")
	}
}

func TestKeysBeforeResizeAreDropped(t *testing.T) {
	sess := session.New([]string{"a"}, region.Position{X: 0, Y: 0, TopLine: 1}, "")
	m, err := New(sess, config.Default(), "grab")
	if err != nil {
		t.Fatal(err)
	}
	if _, cmd := m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"}); cmd != nil {
		t.Error("keys must be ignored until the geometry is known")
	}
}

func TestApplyDamage(t *testing.T) {
	m := newTestModel(t, []string{"a", "b", "c"}, 80, 5) // 4 viewport rows
	m.renderContent()                                    // prime the cache
	for i, valid := range m.rowValid {
		if !valid {
			t.Fatalf("row %d not cached after render", i)
		}
	}

	m.applyDamage(session.Redraw{Lines: []int{2, 99}})
	for i, valid := range m.rowValid {
		if want := i != 1; valid != want {
			t.Errorf("rowValid[%d] = %v after line-2 damage", i, valid)
		}
	}

	m.renderContent()
	m.applyDamage(session.Redraw{All: true})
	for i, valid := range m.rowValid {
		if valid {
			t.Errorf("rowValid[%d] must be cleared by a full repaint", i)
		}
	}
}
