package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/bookswap/internal/market"
	"github.com/atomicstack/bookswap/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestOpeningChatMarksItRead(t *testing.T) {
	m := newTestModel(t, Options{InitialTab: nav.TabMessages, Width: 80, Height: 30})
	press(m, "enter")
	if got := m.Screen(); got.Kind != nav.ScreenChat || got.ID != "1" {
		t.Fatalf("expected chat 1, got %v", got)
	}
	conv, _ := m.Catalog().Conversation("1")
	if conv.UnreadCount != 0 {
		t.Fatalf("expected chat to be read, got %d unread", conv.UnreadCount)
	}
	view := m.View()
	for _, want := range []string{"Chat with Alex Chen", "about Introduction to Algorithms", "great shape"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Messages") {
		t.Fatalf("expected no tab bar on the chat overlay:\n%s", view)
	}
}

func TestSendMessageAppendsToHistory(t *testing.T) {
	m := newTestModel(t, Options{InitialTab: nav.TabMessages, Width: 80, Height: 30})
	press(m, "down", "enter")
	typeText(m, "See you at noon")
	press(m, "enter")
	msgs := m.Catalog().Messages("2")
	if last := msgs[len(msgs)-1]; last.Text != "See you at noon" || last.SenderID != market.SelfID {
		t.Fatalf("unexpected last message %+v", last)
	}
	if m.chat.compose.Value() != "" {
		t.Fatalf("expected compose box to be cleared")
	}
	press(m, "esc")
	for _, item := range m.currentLevel().Items {
		if item.ID == "2" && !strings.Contains(item.Detail, "See you at noon") {
			t.Fatalf("expected inbox row to show the new message, got %q", item.Detail)
		}
	}
}

func TestBlankMessageIsIgnored(t *testing.T) {
	m := newTestModel(t, Options{InitialTab: nav.TabMessages})
	press(m, "enter")
	before := len(m.Catalog().Messages("1"))
	typeText(m, "   ")
	press(m, "enter")
	if got := len(m.Catalog().Messages("1")); got != before {
		t.Fatalf("expected no new message, got %d", got)
	}
	if m.errMsg != "" {
		t.Fatalf("unexpected error %q", m.errMsg)
	}
}

func TestUnknownConversation(t *testing.T) {
	m := newTestModel(t, Options{InitialTab: nav.TabMessages})
	m.Nav().SelectChat("missing")
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if view := m.View(); !strings.Contains(view, "Conversation not found") {
		t.Fatalf("expected missing conversation notice:\n%s", view)
	}
	typeText(m, "hello")
	press(m, "enter")
	if m.errMsg != "Conversation not found" {
		t.Fatalf("expected send error, got %q", m.errMsg)
	}
}

func TestRenderMessagesWrapsToWidth(t *testing.T) {
	msgs := []market.Message{
		{ID: "a", SenderID: "alex", Text: strings.Repeat("long words wrap ", 10), Time: "9:00 AM"},
		{ID: "b", SenderID: market.SelfID, Text: "short", Time: "9:01 AM"},
	}
	out := renderMessages(msgs, market.User{Name: "Alex Chen"}, 40)
	for _, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > 40 {
			t.Fatalf("line exceeds width (%d): %q", w, line)
		}
	}
	if !strings.Contains(out, "Alex  9:00 AM") || !strings.Contains(out, "You  9:01 AM") {
		t.Fatalf("expected sender headers:\n%s", out)
	}
}
