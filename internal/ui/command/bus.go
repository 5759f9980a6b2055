package command

import (
	"fmt"

	"github.com/atomicstack/bookswap/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Handler performs an action and may return a follow-up command.
type Handler func() tea.Cmd

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler Handler
}

// Bus coordinates the execution of screen actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute runs the request handler synchronously, so handlers may mutate model
// state from within Update, and returns its follow-up command. Trace events are
// emitted for every stage.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	if req.Handler == nil {
		events.Command.Skip(req.ID, req.Label)
		return nil
	}
	cmd := req.Handler()
	events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", cmd))
	return cmd
}
