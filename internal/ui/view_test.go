package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/bookswap/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
)

func TestTabBarShownOnlyWithoutOverlay(t *testing.T) {
	m := newTestModel(t, Options{Width: 100, Height: 30})
	view := m.View()
	for _, want := range []string{"1 Home", "2 Market", "3 Post", "4 Messages (3)", "5 Profile"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in tab bar:\n%s", want, view)
		}
	}
	press(m, "enter")
	if view := m.View(); strings.Contains(view, "4 Messages") {
		t.Fatalf("expected tab bar hidden on overlays:\n%s", view)
	}
}

func TestHomeViewListsFeaturedBooks(t *testing.T) {
	m := newTestModel(t, Options{Width: 100, Height: 30})
	view := m.View()
	for _, want := range []string{"BookSwap › Home", "Featured listings", "Ways of Seeing", "John Berger", "$11.00"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Principles of Economics") {
		t.Fatalf("expected only the newest listings to be featured:\n%s", view)
	}
}

func TestBookDetailView(t *testing.T) {
	m := newTestModel(t, Options{Width: 100, Height: 40})
	m.Nav().SelectBook("1")
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	view := m.View()
	for _, want := range []string{
		"Introduction to Algorithms",
		"by Thomas H. Cormen",
		"Price",
		"$45.00",
		"Like New",
		"Alex Chen",
		"highlighting",
		"dust jacket",
		"Message seller",
		"View seller profile",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in book view:\n%s", want, view)
		}
	}
}

func TestMissingBookView(t *testing.T) {
	m := newTestModel(t, Options{Width: 80, Height: 20})
	m.Nav().SelectBook("nope")
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	if view := m.View(); !strings.Contains(view, "This listing is no longer available.") {
		t.Fatalf("expected missing listing notice:\n%s", view)
	}
	press(m, "enter")
	if got := m.Screen(); got.Kind != nav.ScreenBook {
		t.Fatalf("expected enter on an empty list to do nothing, got %v", got)
	}
}

func TestSellerProfileView(t *testing.T) {
	m := newTestModel(t, Options{Width: 100, Height: 30})
	m.Nav().SelectSeller("alex")
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := m.View()
	for _, want := range []string{"Alex Chen", "Library Square", "41 trades", "Message Alex", "Principles of Economics"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in profile view:\n%s", want, view)
		}
	}
}

func TestViewRespectsHeight(t *testing.T) {
	m := newTestModel(t, Options{InitialTab: nav.TabMarket, Width: 60, Height: 10, ShowFooter: true})
	lines := strings.Split(m.View(), "\n")
	if len(lines) > 10 {
		t.Fatalf("expected at most 10 lines, got %d:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	press(m, "end")
	if view := m.View(); !strings.Contains(view, "Ways of Seeing") {
		t.Fatalf("expected viewport to follow the cursor:\n%s", view)
	}
}

func TestErrorShownInStatusLine(t *testing.T) {
	m := newTestModel(t, Options{InitialTab: nav.TabPost, Width: 80, Height: 24})
	press(m, "ctrl+s")
	if view := m.View(); !strings.Contains(view, "Error: title is required") {
		t.Fatalf("expected validation error:\n%s", view)
	}
}

func TestTruncateText(t *testing.T) {
	cases := []struct {
		text  string
		width int
		want  string
	}{
		{"abcdef", 0, "abcdef"},
		{"abc", 3, "abc"},
		{"abcdef", 4, "abc…"},
		{"abcdef", 1, "a"},
	}
	for _, tc := range cases {
		if got := truncateText(tc.text, tc.width); got != tc.want {
			t.Fatalf("truncateText(%q, %d) = %q, want %q", tc.text, tc.width, got, tc.want)
		}
	}
}
