package market

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// SelfID identifies the local user in participant lists and the directory.
const SelfID = "me"

// User is a marketplace member.
type User struct {
	ID       string
	Name     string
	Avatar   string
	Location string
	Bio      string
	Rating   float64
	Trades   int
}

// FirstName returns the leading word of the display name.
func (u User) FirstName() string {
	for i, r := range u.Name {
		if r == ' ' {
			return u.Name[:i]
		}
	}
	return u.Name
}

// Book is a single used-book listing.
type Book struct {
	ID          string
	Title       string
	Author      string
	Price       float64
	Condition   string
	Category    string
	SellerID    string
	Cover       string
	Description string
	PostedAt    time.Time
}

// PriceLabel renders the asking price for display.
func (b Book) PriceLabel() string {
	return FormatPrice(b.Price)
}

// Age describes how long ago the listing was posted.
func (b Book) Age() string {
	if b.PostedAt.IsZero() {
		return "just now"
	}
	return humanize.Time(b.PostedAt)
}

// Conversation is a two-party chat thread between the local user and a
// counterpart.
type Conversation struct {
	ID              string
	Participants    []string
	BookID          string
	LastMessage     string
	LastMessageTime string
	UnreadCount     int
}

// Message is a single entry of a conversation history.
type Message struct {
	ID       string
	SenderID string
	Text     string
	Time     string
}

// Draft carries the fields of a listing before it is posted.
type Draft struct {
	Title       string
	Author      string
	Price       float64
	Condition   string
	Description string
}

// FormatPrice renders prices with thousands separators and two decimals.
func FormatPrice(p float64) string {
	if p < 0 {
		p = 0
	}
	return fmt.Sprintf("$%s", humanize.FormatFloat("#,###.##", p))
}
