package ui

import (
	"reflect"
	"strings"
	"testing"

	"github.com/atomicstack/bookswap/internal/nav"
)

func TestTypingFiltersMarket(t *testing.T) {
	m := newTestModel(t, Options{InitialTab: nav.TabMarket})
	if got := len(m.currentLevel().Items); got != 7 {
		t.Fatalf("expected all 7 listings, got %d", got)
	}
	typeText(m, "dune")
	if got := itemIDs(m.currentLevel()); !reflect.DeepEqual(got, []string{"2"}) {
		t.Fatalf("expected only Dune, got %v", got)
	}
	press(m, "backspace")
	if got := m.currentLevel().Filter; got != "dun" {
		t.Fatalf("expected backspace to remove a rune, got %q", got)
	}
	press(m, "ctrl+u")
	if got := m.currentLevel().Filter; got != "" {
		t.Fatalf("expected ctrl+u to clear, got %q", got)
	}
	if got := len(m.currentLevel().Items); got != 7 {
		t.Fatalf("expected all listings after clearing, got %d", got)
	}
}

func TestFiltersAreKeptPerScreen(t *testing.T) {
	m := newTestModel(t, Options{InitialTab: nav.TabMarket})
	typeText(m, "dune")
	press(m, "alt+1")
	if got := m.currentLevel().Filter; got != "" {
		t.Fatalf("expected home filter to be empty, got %q", got)
	}
	press(m, "alt+2")
	if got := m.currentLevel().Filter; got != "dune" {
		t.Fatalf("expected market filter to survive a tab switch, got %q", got)
	}
}

func TestMessagesSearchUsesInboxFilter(t *testing.T) {
	m := newTestModel(t, Options{InitialTab: nav.TabMessages, Width: 80, Height: 30})
	view := m.View()
	if !strings.Contains(view, "Active Trades") || !strings.Contains(view, "Recent Chats") {
		t.Fatalf("expected active trades and recent chats on empty query:\n%s", view)
	}
	typeText(m, "chen")
	if got := itemIDs(m.currentLevel()); !reflect.DeepEqual(got, []string{"1"}) {
		t.Fatalf("expected conversation 1, got %v", got)
	}
	view = m.View()
	if strings.Contains(view, "Active Trades") {
		t.Fatalf("expected active trades hidden while searching:\n%s", view)
	}
	if !strings.Contains(view, "Search Results") {
		t.Fatalf("expected search results heading:\n%s", view)
	}
}

func TestMessagesSearchMatchesLastMessage(t *testing.T) {
	m := newTestModel(t, Options{InitialTab: nav.TabMessages})
	typeText(m, "available")
	if got := itemIDs(m.currentLevel()); !reflect.DeepEqual(got, []string{"1"}) {
		t.Fatalf("expected conversation 1, got %v", got)
	}
}

func TestMessagesEmptyState(t *testing.T) {
	m := newTestModel(t, Options{InitialTab: nav.TabMessages, Width: 80, Height: 30})
	typeText(m, "zzz")
	if got := len(m.currentLevel().Items); got != 0 {
		t.Fatalf("expected no conversations, got %d", got)
	}
	if view := m.View(); !strings.Contains(view, `No chats found matching "zzz".`) {
		t.Fatalf("expected empty state text:\n%s", view)
	}
}

func TestFilterIgnoredOnOverlays(t *testing.T) {
	m := newTestModel(t, Options{})
	press(m, "enter")
	typeText(m, "x")
	if got := m.currentLevel().Filter; got != "" {
		t.Fatalf("expected book actions to ignore typing, got %q", got)
	}
}

func TestMarketSearchMatchesEveryWord(t *testing.T) {
	m := newTestModel(t, Options{InitialTab: nav.TabMarket})
	typeText(m, "textbooks")
	if got := itemIDs(m.currentLevel()); !reflect.DeepEqual(got, []string{"1", "3", "5"}) {
		t.Fatalf("expected the textbooks, got %v", got)
	}
	press(m, "space")
	typeText(m, "fair")
	if got := itemIDs(m.currentLevel()); !reflect.DeepEqual(got, []string{"3"}) {
		t.Fatalf("expected only the fair textbook, got %v", got)
	}
	press(m, "ctrl+w")
	if got := m.currentLevel().Filter; got != "textbooks " {
		t.Fatalf("expected the last word removed, got %q", got)
	}
}

func TestMarketSearchCaretEditing(t *testing.T) {
	m := newTestModel(t, Options{InitialTab: nav.TabMarket})
	typeText(m, "dne")
	press(m, "left", "left")
	typeText(m, "u")
	if got := m.currentLevel().Filter; got != "dune" {
		t.Fatalf("expected insertion at the caret, got %q", got)
	}
	if got := itemIDs(m.currentLevel()); !reflect.DeepEqual(got, []string{"2"}) {
		t.Fatalf("expected only Dune, got %v", got)
	}
}
