package ui

import (
	"unicode"

	"github.com/atomicstack/bookswap/internal/logging/events"
	uistate "github.com/atomicstack/bookswap/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const filterPromptText = "/ "

// filterKeys are the editing keys of the search prompt. Printable input is
// inserted at the caret.
var filterKeys = map[string]uistate.FilterEdit{
	"backspace": uistate.EditBackspace,
	"ctrl+h":    uistate.EditBackspace,
	"ctrl+w":    uistate.EditDeleteWord,
	"ctrl+u":    uistate.EditClear,
	"left":      uistate.EditCaretLeft,
	"right":     uistate.EditCaretRight,
	"ctrl+a":    uistate.EditCaretStart,
	"ctrl+e":    uistate.EditCaretEnd,
}

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

// handleTextInput edits the search query of searchable list screens.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	current := m.currentLevel()
	if current == nil || !current.Searchable {
		return false
	}
	edit, text, ok := filterEditFor(msg)
	if !ok {
		return false
	}
	return m.editFilter(current, edit, text)
}

func filterEditFor(msg tea.KeyMsg) (uistate.FilterEdit, string, bool) {
	switch msg.Type {
	case tea.KeySpace:
		return uistate.EditInsert, " ", true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return 0, "", false
		}
		for _, r := range msg.Runes {
			if !unicode.IsPrint(r) {
				return 0, "", false
			}
		}
		return uistate.EditInsert, string(msg.Runes), true
	}
	edit, ok := filterKeys[msg.String()]
	return edit, "", ok
}

// editFilter applies edit to the level's query. Query changes re-filter the
// rows and drop stale status messages; caret moves only restart the blink.
func (m *Model) editFilter(l *level, edit uistate.FilterEdit, text string) bool {
	query, caret := l.Filter, l.FilterCursorPos()
	if !l.EditFilter(edit, text) {
		return false
	}
	if l.FilterCursorPos() != caret {
		m.filterCursorDirty = true
	}
	if l.Filter == query {
		events.Filter.Caret(l.ID, edit.String(), l.FilterCursorPos())
		return true
	}
	m.forceClearInfo()
	m.errMsg = ""
	events.Filter.Edit(l.ID, edit.String(), l.Filter)
	m.syncViewport(l)
	return true
}

// filterPrompt renders the search prompt: the query with its caret, or the
// screen's placeholder while nothing has been typed.
func (m *Model) filterPrompt() string {
	prompt := renderWith(styles.FilterPrompt, filterPromptText)
	current := m.currentLevel()
	if current == nil {
		return prompt
	}
	textStyle := styles.Filter
	runes := []rune(current.Filter)
	pos := current.FilterCursorPos()
	if len(runes) == 0 {
		textStyle = styles.FilterPlaceholder
		runes = []rune(searchPlaceholder(current))
		pos = 0
	}
	under, after := " ", ""
	if pos < len(runes) {
		under = string(runes[pos])
		after = string(runes[pos+1:])
	}
	return prompt +
		renderWith(textStyle, string(runes[:pos])) +
		m.renderFilterCaret(under, textStyle) +
		renderWith(textStyle, after)
}

// renderFilterCaret draws char under the caret, hidden during the off phase
// of the blink.
func (m *Model) renderFilterCaret(char string, text *lipgloss.Style) string {
	m.filterCursor.SetChar(char)
	base := lipgloss.NewStyle()
	if text != nil {
		base = *text
	}
	base = base.Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		return base.Inherit(styles.Cursor.Inline(true)).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}

func renderWith(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}

func searchPlaceholder(l *level) string {
	switch l.Title {
	case "Messages":
		return "(search conversations)"
	case "Market":
		return "(search title, author, category, condition)"
	}
	return "(type to search)"
}
