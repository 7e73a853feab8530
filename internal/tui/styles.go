package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/xonecas/snag/internal/config"
)

// Styles holds the lipgloss styles used by the view.
type Styles struct {
	Selection  lipgloss.Style // highlight for selected text
	StatusText lipgloss.Style
	StatusTag  lipgloss.Style // region/mode tag in the status bar
}

func newStyles(cfg *config.Config) Styles {
	return Styles{
		Selection: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.SelectionForeground)).
			Background(lipgloss.Color(cfg.SelectionBackground)),
		StatusText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080")),
		StatusTag: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.SelectionBackground)).
			Bold(true),
	}
}
