package app

import (
	"errors"
	"time"

	"github.com/atomicstack/bookswap/internal/market"
	"github.com/atomicstack/bookswap/internal/nav"
	"github.com/atomicstack/bookswap/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width         int
	Height        int
	ShowFooter    bool
	InitialTab    string
	Animate       bool
	Transition    time.Duration
	MarkdownStyle string
}

// Options converts the configuration into UI options.
func (c Config) Options() ui.Options {
	tab, _ := nav.ParseTab(c.InitialTab)
	return ui.Options{
		Width:         c.Width,
		Height:        c.Height,
		ShowFooter:    c.ShowFooter,
		InitialTab:    tab,
		Animate:       c.Animate,
		Transition:    c.Transition,
		MarkdownStyle: c.MarkdownStyle,
	}
}

// Run executes the Bubble Tea program on catalog until the user quits.
func Run(cfg Config, catalog *market.Catalog) error {
	model := ui.NewModel(catalog, cfg.Options())
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
