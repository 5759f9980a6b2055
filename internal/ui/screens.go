package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/bookswap/internal/inbox"
	"github.com/atomicstack/bookswap/internal/market"
	"github.com/atomicstack/bookswap/internal/nav"
	uistate "github.com/atomicstack/bookswap/internal/ui/state"
)

const (
	actionOpenBook  = "book:open"
	actionOpenChat  = "chat:open"
	actionStartChat = "chat:start"
	actionOpenUser  = "user:open"
)

func isPostScreen(s nav.Screen) bool {
	return s.Kind == nav.ScreenTab && s.Tab == nav.TabPost
}

func isListScreen(s nav.Screen) bool {
	return s.Kind != nav.ScreenChat && !isPostScreen(s)
}

func screenTitle(s nav.Screen) string {
	switch s.Kind {
	case nav.ScreenBook:
		return "Book"
	case nav.ScreenUser:
		return "Profile"
	case nav.ScreenChat:
		return "Chat"
	}
	return s.Tab.Label()
}

// currentLevel returns the list state of the resolved screen, or nil for the
// screens that are not lists.
func (m *Model) currentLevel() *level {
	screen := m.nav.Resolve()
	if !isListScreen(screen) {
		return nil
	}
	return m.levelFor(screen)
}

func (m *Model) levelFor(screen nav.Screen) *level {
	key := screen.String()
	if l, ok := m.levels[key]; ok {
		return l
	}
	l := uistate.NewLevel(key, screenTitle(screen), nil)
	l.Data = screen
	if screen.Kind == nav.ScreenTab {
		l.Searchable = true
		if screen.Tab == nav.TabMessages {
			l.Matcher = m.matchInbox
		}
	}
	l.UpdateItems(m.itemsFor(screen))
	m.levels[key] = l
	return l
}

// refreshLevels rebuilds the rows of every cached level from the catalog.
func (m *Model) refreshLevels() {
	for _, l := range m.levels {
		screen, ok := l.Data.(nav.Screen)
		if !ok {
			continue
		}
		l.UpdateItems(m.itemsFor(screen))
		m.syncViewport(l)
	}
}

func (m *Model) itemsFor(screen nav.Screen) []uistate.Item {
	switch screen.Kind {
	case nav.ScreenBook:
		return m.bookActionItems(screen.ID)
	case nav.ScreenUser:
		return m.userItems(screen.ID)
	case nav.ScreenChat:
		return nil
	}
	switch screen.Tab {
	case nav.TabMarket:
		return bookItems(m.catalog.Books(), true)
	case nav.TabMessages:
		return m.conversationItems()
	case nav.TabProfile:
		return bookItems(m.catalog.BooksBySeller(screen.ID), false)
	case nav.TabPost:
		return nil
	default:
		return bookItems(m.catalog.Featured(featuredCount), false)
	}
}

func bookItems(books []market.Book, withCategory bool) []uistate.Item {
	items := make([]uistate.Item, 0, len(books))
	for _, b := range books {
		detail := []string{b.Author, b.PriceLabel()}
		if withCategory && b.Category != "" {
			detail = append(detail, b.Category)
		}
		detail = append(detail, b.Condition, b.Age())
		items = append(items, uistate.Item{
			ID:     b.ID,
			Label:  b.Title,
			Detail: joinDetail(detail...),
			Action: actionOpenBook,
		})
	}
	return items
}

func (m *Model) conversationItems() []uistate.Item {
	res := inbox.Filter(m.catalog.Conversations(), m.catalog.Users(), "")
	items := make([]uistate.Item, 0, len(res.Conversations))
	for _, entry := range res.Conversations {
		conv := entry.Conversation
		label := entry.Counterpart.Name
		if label == "" {
			label = "(unknown user)"
		}
		if conv.UnreadCount > 0 {
			label = fmt.Sprintf("%s (%d)", label, conv.UnreadCount)
		}
		items = append(items, uistate.Item{
			ID:     conv.ID,
			Label:  label,
			Detail: joinDetail(conv.LastMessage, conv.LastMessageTime),
			Action: actionOpenChat,
			Marked: conv.UnreadCount > 0,
		})
	}
	return items
}

// matchInbox narrows the conversation rows with the inbox filter and keeps the
// result for the Active Trades strip and the empty state.
func (m *Model) matchInbox(items []uistate.Item, query string) []uistate.Item {
	res := inbox.Filter(m.catalog.Conversations(), m.catalog.Users(), query)
	m.inbox = res
	byID := make(map[string]uistate.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	out := make([]uistate.Item, 0, len(res.Conversations))
	for _, id := range res.IDs() {
		if item, ok := byID[id]; ok {
			out = append(out, item)
		}
	}
	return out
}

func (m *Model) bookActionItems(bookID string) []uistate.Item {
	book, ok := m.catalog.Book(bookID)
	if !ok {
		return nil
	}
	seller, _ := m.catalog.User(book.SellerID)
	name := seller.Name
	if name == "" {
		name = book.SellerID
	}
	return []uistate.Item{
		{ID: "message", Label: "Message seller", Detail: name, Action: actionStartChat},
		{ID: book.SellerID, Label: "View seller profile", Detail: name, Action: actionOpenUser},
	}
}

func (m *Model) userItems(userID string) []uistate.Item {
	user, ok := m.catalog.User(userID)
	if !ok {
		return nil
	}
	first := user.FirstName()
	if first == "" {
		first = "seller"
	}
	items := []uistate.Item{{ID: "message", Label: "Message " + first, Action: actionStartChat}}
	return append(items, bookItems(m.catalog.BooksBySeller(userID), false)...)
}

func joinDetail(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " · ")
}
