package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/bookswap/internal/inbox"
	"github.com/atomicstack/bookswap/internal/logging/events"
	"github.com/atomicstack/bookswap/internal/market"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	defaultChatWidth  = 72
	defaultChatHeight = 12
	// header, subject, two separators, compose and status rows
	chatChromeRows = 6
)

type chatPane struct {
	id       string
	missing  bool
	history  viewport.Model
	compose  textinput.Model
	messages int
}

func newChatPane() *chatPane {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a message…"
	ti.CharLimit = 1000
	ti.Cursor.SetMode(cursor.CursorStatic)
	if styles.FilterPrompt != nil {
		ti.PromptStyle = styles.FilterPrompt.Copy()
	}
	if styles.FilterPlaceholder != nil {
		ti.PlaceholderStyle = styles.FilterPlaceholder.Copy()
	}
	return &chatPane{
		history: viewport.New(defaultChatWidth, defaultChatHeight),
		compose: ti,
	}
}

func (m *Model) openChat(id string) {
	c := m.chat
	if c.id != id {
		c.compose.Reset()
	}
	c.id = id
	_, ok := m.catalog.Conversation(id)
	c.missing = !ok
	if ok && m.catalog.MarkRead(id) {
		m.refreshLevels()
	}
	c.compose.Focus()
	m.resizeChat()
	m.refreshChat()
	events.Chat.Open(id, c.messages)
}

func (m *Model) resizeChat() {
	width := m.width
	if width <= 0 {
		width = defaultChatWidth
	}
	height := defaultChatHeight
	if m.height > 0 {
		height = m.height - chatChromeRows
		if m.showFooter {
			height -= 2
		}
		if height < 3 {
			height = 3
		}
	}
	m.chat.history.Width = width
	m.chat.history.Height = height
	m.chat.compose.Width = width - lipgloss.Width(m.chat.compose.Prompt) - 1
}

// refreshChat re-renders the message history and scrolls to the newest
// message.
func (m *Model) refreshChat() {
	c := m.chat
	if c.missing {
		c.messages = 0
		c.history.SetContent("")
		return
	}
	msgs := m.catalog.Messages(c.id)
	c.messages = len(msgs)
	c.history.SetContent(renderMessages(msgs, m.counterpart(c.id), c.history.Width))
	c.history.GotoBottom()
}

func (m *Model) counterpart(chatID string) market.User {
	conv, ok := m.catalog.Conversation(chatID)
	if !ok {
		return market.User{}
	}
	id, fallback := inbox.Counterpart(conv, market.SelfID)
	if fallback {
		events.Inbox.CounterpartFallback(conv.ID, id)
	}
	user, _ := m.catalog.User(id)
	return user
}

func renderMessages(msgs []market.Message, other market.User, width int) string {
	if len(msgs) == 0 {
		text := "No messages yet. Say hello!"
		if styles.Info != nil {
			text = styles.Info.Render(text)
		}
		return text
	}
	wrap := width * 3 / 4
	if wrap < 16 {
		wrap = 16
	}
	otherName := other.FirstName()
	if otherName == "" {
		otherName = "Them"
	}
	blocks := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		self := msg.SenderID == market.SelfID
		name, bubble := otherName, styles.BubbleOther
		if self {
			name, bubble = "You", styles.BubbleSelf
		}
		stamp := msg.Time
		if styles.Timestamp != nil {
			stamp = styles.Timestamp.Render(stamp)
		}
		lines := []string{name + "  " + stamp}
		for _, line := range strings.Split(ansi.Wordwrap(msg.Text, wrap, ""), "\n") {
			if bubble != nil {
				line = bubble.Render(line)
			}
			lines = append(lines, line)
		}
		block := strings.Join(lines, "\n")
		if self && width > 0 {
			block = lipgloss.PlaceHorizontal(width, lipgloss.Right, block)
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n\n")
}

func (m *Model) handleChatKey(msg tea.KeyMsg) tea.Cmd {
	c := m.chat
	switch msg.String() {
	case "esc":
		if props := m.nav.Props(); props.OnBack != nil {
			props.OnBack()
		}
		m.errMsg = ""
		return nil
	case "enter":
		m.sendMessage()
		return nil
	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		c.history, cmd = c.history.Update(msg)
		return cmd
	}
	var cmd tea.Cmd
	c.compose, cmd = c.compose.Update(msg)
	return cmd
}

func (m *Model) sendMessage() {
	c := m.chat
	text := c.compose.Value()
	if strings.TrimSpace(text) == "" {
		return
	}
	if c.missing {
		m.errMsg = "Conversation not found"
		return
	}
	sent, ok := m.catalog.AppendMessage(c.id, text)
	if !ok {
		m.errMsg = "Conversation not found"
		return
	}
	events.Chat.Send(c.id, sent.ID)
	c.compose.Reset()
	m.errMsg = ""
	m.refreshChat()
	m.refreshLevels()
}

func (m *Model) chatLines() []styledLine {
	c := m.chat
	lines := []styledLine{{text: m.header(), style: styles.Header}}
	if c.missing {
		lines = append(lines, styledLine{text: "Conversation not found", style: styles.Error})
		return lines
	}
	other := m.counterpart(c.id)
	subject := "Chat with " + fallbackName(other.Name)
	if conv, ok := m.catalog.Conversation(c.id); ok && conv.BookID != "" {
		if book, ok := m.catalog.Book(conv.BookID); ok {
			subject = fmt.Sprintf("%s · about %s (%s)", subject, book.Title, book.PriceLabel())
		}
	}
	lines = append(lines, styledLine{text: subject, style: styles.Section})
	lines = append(lines, styledLine{})
	for _, line := range strings.Split(c.history.View(), "\n") {
		lines = append(lines, styledLine{text: line, raw: true})
	}
	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: c.compose.View(), raw: true})
	return lines
}

func fallbackName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "(unknown user)"
	}
	return name
}
