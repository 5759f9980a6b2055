package ui

import (
	"strings"
	"testing"
	"time"
)

func TestTransitionStartsOnScreenChange(t *testing.T) {
	m := newTestModel(t, Options{Animate: true, Transition: time.Second, Width: 80, Height: 24})
	if m.Transitioning() {
		t.Fatalf("expected the initial screen to render without a transition")
	}
	_, cmd := m.Update(KeyMsg("tab"))
	if cmd == nil || !m.Transitioning() {
		t.Fatalf("expected a transition tick after switching tabs")
	}
	if first := strings.SplitN(m.View(), "\n", 2)[0]; strings.TrimSpace(first) != "" {
		t.Fatalf("expected the fading screen to be offset by one row, got %q", first)
	}
	seq := m.transitionSeq
	m.Update(transitionDoneMsg{seq: seq - 1})
	if !m.Transitioning() {
		t.Fatalf("expected stale ticks to be ignored")
	}
	m.Update(transitionDoneMsg{seq: seq})
	if m.Transitioning() {
		t.Fatalf("expected transition to finish")
	}
}

func TestTransitionFollowsScreenKey(t *testing.T) {
	m := newTestModel(t, Options{Animate: true, Transition: time.Second})
	press(m, "enter")
	if m.screenKey != "book-overlay" || m.transitionSeq != 1 {
		t.Fatalf("expected book transition, key=%q seq=%d", m.screenKey, m.transitionSeq)
	}
	press(m, "down", "enter")
	if m.transitionSeq != 1 {
		t.Fatalf("expected seller overlay above a book to keep the book-overlay key, seq=%d", m.transitionSeq)
	}
	if got := m.Screen().ID; got != "emma" {
		t.Fatalf("expected the seller profile to render, got %q", got)
	}
	press(m, "enter")
	if m.screenKey != "1" || m.transitionSeq != 2 {
		t.Fatalf("expected chat transition, key=%q seq=%d", m.screenKey, m.transitionSeq)
	}
}

func TestNoAnimation(t *testing.T) {
	m := newTestModel(t, Options{Animate: false, Transition: time.Second})
	press(m, "tab")
	if m.Transitioning() {
		t.Fatalf("expected no transition when animation is disabled")
	}
	if m.screenKey != "market" {
		t.Fatalf("expected screen key to track the tab, got %q", m.screenKey)
	}
}
