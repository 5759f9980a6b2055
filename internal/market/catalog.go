package market

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Catalog holds the in-memory marketplace data consumed by the screens.
type Catalog struct {
	users    *Directory
	books    []Book
	chats    []Conversation
	messages map[string][]Message
	now      func() time.Time
}

// NewCatalog assembles a catalog from the supplied collections. The inputs are
// copied so later mutation through the catalog never aliases caller data.
func NewCatalog(users []User, books []Book, chats []Conversation, messages map[string][]Message) *Catalog {
	c := &Catalog{
		users:    NewDirectory(users),
		books:    cloneBooks(books),
		chats:    cloneConversations(chats),
		messages: make(map[string][]Message, len(messages)),
		now:      time.Now,
	}
	for id, history := range messages {
		c.messages[id] = cloneMessages(history)
	}
	return c
}

// SetClock overrides the time source used for new listings and messages.
func (c *Catalog) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	c.now = now
}

// Users exposes the user directory.
func (c *Catalog) Users() *Directory {
	return c.users
}

// User looks up a user by identifier.
func (c *Catalog) User(id string) (User, bool) {
	return c.users.Lookup(id)
}

// Books returns all listings in source order.
func (c *Catalog) Books() []Book {
	return cloneBooks(c.books)
}

// Book looks up a listing by identifier.
func (c *Catalog) Book(id string) (Book, bool) {
	for _, b := range c.books {
		if b.ID == id {
			return b, true
		}
	}
	return Book{}, false
}

// BooksBySeller returns the listings posted by the given user.
func (c *Catalog) BooksBySeller(sellerID string) []Book {
	out := make([]Book, 0, len(c.books))
	for _, b := range c.books {
		if b.SellerID == sellerID {
			out = append(out, b)
		}
	}
	return out
}

// Featured returns up to n listings, newest first. Ties keep source order.
func (c *Catalog) Featured(n int) []Book {
	books := cloneBooks(c.books)
	sort.SliceStable(books, func(i, j int) bool {
		return books[i].PostedAt.After(books[j].PostedAt)
	})
	if n >= 0 && n < len(books) {
		books = books[:n]
	}
	return books
}

// Conversations returns all conversations in source order.
func (c *Catalog) Conversations() []Conversation {
	return cloneConversations(c.chats)
}

// Conversation looks up a conversation by identifier.
func (c *Catalog) Conversation(id string) (Conversation, bool) {
	for _, chat := range c.chats {
		if chat.ID == id {
			return chat, true
		}
	}
	return Conversation{}, false
}

// Messages returns the history of a conversation, oldest first.
func (c *Catalog) Messages(chatID string) []Message {
	return cloneMessages(c.messages[chatID])
}

// AddListing posts a new listing owned by the local user and returns it.
func (c *Catalog) AddListing(d Draft) Book {
	book := Book{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(d.Title),
		Author:      strings.TrimSpace(d.Author),
		Price:       d.Price,
		Condition:   strings.TrimSpace(d.Condition),
		Description: strings.TrimSpace(d.Description),
		SellerID:    SelfID,
		PostedAt:    c.now(),
	}
	if book.Condition == "" {
		book.Condition = "Good"
	}
	c.books = append([]Book{book}, c.books...)
	return book
}

// AppendMessage records an outgoing message from the local user. Unknown
// conversations are left untouched and reported via the boolean.
func (c *Catalog) AppendMessage(chatID, text string) (Message, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, false
	}
	idx := -1
	for i, chat := range c.chats {
		if chat.ID == chatID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Message{}, false
	}
	msg := Message{
		ID:       uuid.NewString(),
		SenderID: SelfID,
		Text:     text,
		Time:     c.now().Format("3:04 PM"),
	}
	c.messages[chatID] = append(c.messages[chatID], msg)
	c.chats[idx].LastMessage = msg.Text
	c.chats[idx].LastMessageTime = msg.Time
	c.chats[idx].UnreadCount = 0
	return msg, true
}

// MarkRead clears the unread counter of one conversation.
func (c *Catalog) MarkRead(chatID string) bool {
	for i := range c.chats {
		if c.chats[i].ID == chatID {
			changed := c.chats[i].UnreadCount > 0
			c.chats[i].UnreadCount = 0
			return changed
		}
	}
	return false
}

// MarkAllRead clears every unread counter and returns how many conversations
// changed.
func (c *Catalog) MarkAllRead() int {
	changed := 0
	for i := range c.chats {
		if c.chats[i].UnreadCount > 0 {
			c.chats[i].UnreadCount = 0
			changed++
		}
	}
	return changed
}

// UnreadTotal sums unread counters across conversations.
func (c *Catalog) UnreadTotal() int {
	total := 0
	for _, chat := range c.chats {
		total += chat.UnreadCount
	}
	return total
}

func cloneBooks(books []Book) []Book {
	if len(books) == 0 {
		return nil
	}
	dup := make([]Book, len(books))
	copy(dup, books)
	return dup
}

func cloneConversations(chats []Conversation) []Conversation {
	if len(chats) == 0 {
		return nil
	}
	dup := make([]Conversation, len(chats))
	for i, chat := range chats {
		chat.Participants = append([]string(nil), chat.Participants...)
		dup[i] = chat
	}
	return dup
}

func cloneMessages(msgs []Message) []Message {
	if len(msgs) == 0 {
		return nil
	}
	dup := make([]Message, len(msgs))
	copy(dup, msgs)
	return dup
}
