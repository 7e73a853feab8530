// Package tui renders a grab session with bubbletea: it maps key presses
// to session commands through the configured bindings, repaints only the
// lines the session reports as dirty, and quits with the session's result.
package tui

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/snag/internal/config"
	"github.com/xonecas/snag/internal/session"
)

// binding pairs a compiled key binding with the command it triggers.
type binding struct {
	keys key.Binding
	cmd  session.Command
}

// Model is the application model.
type Model struct {
	session  *session.Session
	bindings []binding
	styles   Styles
	title    string

	width, height int
	ready         bool // geometry known, session sized

	// Per-row render cache. rowText[i] holds the rendered viewport row i;
	// rowValid[i] is cleared when the session dirties the row.
	rowText  []string
	rowValid []bool
}

// New builds a model over the session. Binding action strings come from
// the config and are validated here: a bad binding is a startup error,
// never a mid-session surprise.
func New(sess *session.Session, cfg *config.Config, title string) (Model, error) {
	bindings, err := compileBindings(cfg.Bindings)
	if err != nil {
		return Model{}, err
	}
	return Model{
		session:  sess,
		bindings: bindings,
		styles:   newStyles(cfg),
		title:    title,
	}, nil
}

// compileBindings groups the keystroke→action map by action, producing
// one key.Binding per command with all of its keystrokes attached.
func compileBindings(raw map[string]string) ([]binding, error) {
	byAction := make(map[string][]string)
	for keystroke, action := range raw {
		byAction[action] = append(byAction[action], keystroke)
	}
	out := make([]binding, 0, len(byAction))
	for action, keystrokes := range byAction {
		cmd, err := session.Parse(action)
		if err != nil {
			return nil, fmt.Errorf("binding %v: %w", keystrokes, err)
		}
		out = append(out, binding{
			keys: key.NewBinding(key.WithKeys(keystrokes...), key.WithHelp(keystrokes[0], action)),
			cmd:  cmd,
		})
	}
	return out, nil
}

// Result returns the selected text if the session was confirmed.
func (m Model) Result() (string, bool) { return m.session.Result() }

func (m Model) Init() tea.Cmd {
	return nil
}
