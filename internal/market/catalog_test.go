package market

import (
	"testing"
	"time"
)

func TestDirectoryPreservesOrderAndReplacesInPlace(t *testing.T) {
	d := NewDirectory([]User{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "a", Name: "A2"}})
	all := d.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 users, got %d", len(all))
	}
	if all[0].ID != "a" || all[0].Name != "A2" || all[1].ID != "b" {
		t.Fatalf("unexpected order %#v", all)
	}
	if _, ok := d.Lookup("missing"); ok {
		t.Fatalf("expected lookup miss")
	}
}

func TestFirstName(t *testing.T) {
	cases := map[string]string{
		"Alex Chen": "Alex",
		"Cher":      "Cher",
		"":          "",
	}
	for name, want := range cases {
		if got := (User{Name: name}).FirstName(); got != want {
			t.Fatalf("FirstName(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{12, "$12.00"},
		{38.5, "$38.50"},
		{1234.5, "$1,234.50"},
		{-3, "$0.00"},
	}
	for _, tc := range cases {
		if got := FormatPrice(tc.in); got != tc.want {
			t.Fatalf("FormatPrice(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFeaturedNewestFirst(t *testing.T) {
	c := MockAt(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	featured := c.Featured(3)
	if len(featured) != 3 {
		t.Fatalf("expected 3 featured books, got %d", len(featured))
	}
	if featured[0].ID != "7" || featured[1].ID != "1" || featured[2].ID != "4" {
		t.Fatalf("unexpected featured order: %s %s %s", featured[0].ID, featured[1].ID, featured[2].ID)
	}
	if all := c.Featured(-1); len(all) != len(c.Books()) {
		t.Fatalf("expected negative limit to return all books")
	}
}

func TestAddListingPrependsOwnedBook(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := MockAt(base)
	c.SetClock(func() time.Time { return base })
	book := c.AddListing(Draft{Title: "  Snow Crash ", Author: "Neal Stephenson", Price: 8})
	if book.ID == "" {
		t.Fatalf("expected generated id")
	}
	if book.Title != "Snow Crash" || book.SellerID != SelfID || book.Condition != "Good" {
		t.Fatalf("unexpected listing %#v", book)
	}
	if got := c.Books()[0].ID; got != book.ID {
		t.Fatalf("expected new listing first, got %s", got)
	}
	if _, ok := c.Book(book.ID); !ok {
		t.Fatalf("expected lookup of new listing")
	}
	mine := c.BooksBySeller(SelfID)
	if len(mine) != 2 {
		t.Fatalf("expected 2 self listings, got %d", len(mine))
	}
}

func TestAppendMessageUpdatesConversation(t *testing.T) {
	base := time.Date(2024, 5, 1, 15, 4, 0, 0, time.UTC)
	c := MockAt(base)
	c.SetClock(func() time.Time { return base })
	msg, ok := c.AppendMessage("1", " See you at noon ")
	if !ok {
		t.Fatalf("expected append to succeed")
	}
	if msg.Text != "See you at noon" || msg.Time != "3:04 PM" || msg.SenderID != SelfID {
		t.Fatalf("unexpected message %#v", msg)
	}
	chat, _ := c.Conversation("1")
	if chat.LastMessage != "See you at noon" || chat.UnreadCount != 0 {
		t.Fatalf("conversation not refreshed: %#v", chat)
	}
	history := c.Messages("1")
	if history[len(history)-1].ID != msg.ID {
		t.Fatalf("expected message appended to history")
	}
	if _, ok := c.AppendMessage("missing", "hi"); ok {
		t.Fatalf("expected unknown conversation to be rejected")
	}
	if _, ok := c.AppendMessage("1", "   "); ok {
		t.Fatalf("expected blank message to be rejected")
	}
}

func TestMarkAllRead(t *testing.T) {
	c := MockAt(time.Now())
	if c.UnreadTotal() != 3 {
		t.Fatalf("expected 3 unread, got %d", c.UnreadTotal())
	}
	if changed := c.MarkAllRead(); changed != 2 {
		t.Fatalf("expected 2 conversations changed, got %d", changed)
	}
	if c.UnreadTotal() != 0 {
		t.Fatalf("expected no unread after mark all read")
	}
}

func TestConversationsAreCopies(t *testing.T) {
	c := MockAt(time.Now())
	chats := c.Conversations()
	chats[0].Participants[0] = "mutated"
	again, _ := c.Conversation(chats[0].ID)
	if again.Participants[0] != SelfID {
		t.Fatalf("expected catalog data to be isolated from callers")
	}
}
