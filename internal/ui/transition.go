package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

type transitionDoneMsg struct {
	seq int
}

// startTransition renders the incoming screen faint until the tick fires. A
// newer transition supersedes older ticks through the sequence number.
func (m *Model) startTransition() tea.Cmd {
	if !m.animate || m.transition <= 0 {
		m.transitioning = false
		return nil
	}
	m.transitionSeq++
	m.transitioning = true
	seq := m.transitionSeq
	return tea.Tick(m.transition, func(time.Time) tea.Msg {
		return transitionDoneMsg{seq: seq}
	})
}

func (m *Model) handleTransitionDoneMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(transitionDoneMsg)
	if !ok {
		return nil
	}
	if done.seq == m.transitionSeq {
		m.transitioning = false
	}
	return nil
}

// Transitioning reports whether the screen is still fading in.
func (m *Model) Transitioning() bool {
	return m.transitioning
}

// fadeLines shifts the body down one row and renders it faint.
func fadeLines(lines []styledLine) []styledLine {
	out := make([]styledLine, 0, len(lines)+1)
	out = append(out, styledLine{})
	for _, line := range lines {
		text := line.text
		if line.raw {
			text = ansi.Strip(text)
		}
		out = append(out, styledLine{text: text, style: styles.Transition})
	}
	return out
}
