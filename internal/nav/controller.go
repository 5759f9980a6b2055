// Package nav owns the selection state of the client: the active tab plus an
// ordered stack of overlay screens (book detail, user profile, chat). Screens
// never mutate this state directly; they receive the callbacks in Props.
package nav

import (
	"github.com/atomicstack/bookswap/internal/logging/events"
	"github.com/atomicstack/bookswap/internal/market"
)

// PlaceholderChatID is opened by every "message the seller" action.
const PlaceholderChatID = "1"

const (
	bookOverlayKey = "book-overlay"
	userOverlayKey = "user-overlay"
)

// Controller holds the active tab and the overlay stack. The stack holds at
// most one entry per OverlayKind and is kept sorted by kind, so the top entry
// is always the one with the highest precedence (chat > user > book).
type Controller struct {
	tab      Tab
	overlays []Overlay
}

// New returns a controller showing the given tab. An empty tab selects home.
func New(initial Tab) *Controller {
	if initial == "" {
		initial = TabHome
	}
	return &Controller{tab: initial}
}

// Tab returns the active tab as last set, which may be an unknown value.
func (c *Controller) Tab() Tab {
	return c.tab
}

// Overlays returns a copy of the overlay stack, bottom first.
func (c *Controller) Overlays() []Overlay {
	if len(c.overlays) == 0 {
		return nil
	}
	dup := make([]Overlay, len(c.overlays))
	copy(dup, c.overlays)
	return dup
}

// Depth returns the number of overlays currently stacked.
func (c *Controller) Depth() int {
	return len(c.overlays)
}

// SelectedBook reports the book overlay identifier.
func (c *Controller) SelectedBook() (string, bool) {
	return c.lookup(OverlayBook)
}

// SelectedChat reports the chat overlay identifier.
func (c *Controller) SelectedChat() (string, bool) {
	return c.lookup(OverlayChat)
}

// ViewingUser reports the user overlay identifier.
func (c *Controller) ViewingUser() (string, bool) {
	return c.lookup(OverlayUser)
}

// SelectTab sets the active tab. Overlays are left in place, so the change is
// only visible once they have all been dismissed.
func (c *Controller) SelectTab(t Tab) {
	if t == c.tab {
		return
	}
	events.Nav.Tab(string(c.tab), string(t))
	c.tab = t
}

// SelectBook opens the book detail overlay.
func (c *Controller) SelectBook(id string) {
	c.set(OverlayBook, id)
}

// SelectChat opens the chat overlay.
func (c *Controller) SelectChat(id string) {
	c.set(OverlayChat, id)
}

// SelectSeller opens the user profile overlay.
func (c *Controller) SelectSeller(id string) {
	c.set(OverlayUser, id)
}

// Back dismisses the top overlay. It reports false, and changes nothing, when
// no overlay is open; the active tab is never altered.
func (c *Controller) Back() bool {
	n := len(c.overlays)
	if n == 0 {
		events.Nav.BackIgnored(string(c.tab))
		return false
	}
	top := c.overlays[n-1]
	c.overlays = c.overlays[:n-1]
	events.Nav.Pop(top.Kind.String(), top.ID, len(c.overlays))
	return true
}

// StartChatFromProfile opens the placeholder chat and dismisses the profile
// and book overlays in one step.
func (c *Controller) StartChatFromProfile() {
	c.clear(OverlayUser)
	c.clear(OverlayBook)
	c.set(OverlayChat, PlaceholderChatID)
	events.Nav.StartChat("profile", PlaceholderChatID)
}

// StartChatFromBook dismisses the book overlay, switches to the messages tab
// and opens the placeholder chat.
func (c *Controller) StartChatFromBook() {
	c.clear(OverlayBook)
	c.SelectTab(TabMessages)
	c.set(OverlayChat, PlaceholderChatID)
	events.Nav.StartChat("book", PlaceholderChatID)
}

// Resolve returns the screen to render. It is a pure function of the
// controller state.
func (c *Controller) Resolve() Screen {
	if n := len(c.overlays); n > 0 {
		top := c.overlays[n-1]
		return Screen{Kind: screenKindFor(top.Kind), ID: top.ID}
	}
	switch c.tab {
	case TabMarket, TabPost, TabMessages:
		return Screen{Kind: ScreenTab, Tab: c.tab}
	case TabProfile:
		return Screen{Kind: ScreenTab, Tab: TabProfile, ID: market.SelfID}
	default:
		return Screen{Kind: ScreenTab, Tab: TabHome}
	}
}

// Props returns the callbacks wired for the resolved screen.
func (c *Controller) Props() Props {
	screen := c.Resolve()
	switch screen.Kind {
	case ScreenChat:
		return Props{OnBack: c.back}
	case ScreenUser:
		return Props{OnBack: c.back, OnChat: c.StartChatFromProfile, OnBookClick: c.SelectBook}
	case ScreenBook:
		return Props{OnBack: c.back, OnChat: c.StartChatFromBook, OnSellerClick: c.SelectSeller}
	}
	switch screen.Tab {
	case TabHome, TabMarket:
		return Props{OnBookClick: c.SelectBook}
	case TabPost:
		return Props{OnBack: func() { c.SelectTab(TabHome) }}
	case TabMessages:
		return Props{OnChatClick: c.SelectChat}
	default:
		return Props{}
	}
}

// ShowTabBar reports whether the bottom navigation is visible, which is the
// case exactly when no overlay is open.
func (c *Controller) ShowTabBar() bool {
	return len(c.overlays) == 0
}

// ScreenKey identifies the resolved screen for transition purposes.
func (c *Controller) ScreenKey() string {
	if id, ok := c.SelectedChat(); ok {
		return id
	}
	if _, ok := c.SelectedBook(); ok {
		return bookOverlayKey
	}
	if _, ok := c.ViewingUser(); ok {
		return userOverlayKey
	}
	return string(c.tab)
}

func (c *Controller) back() {
	c.Back()
}

func (c *Controller) lookup(kind OverlayKind) (string, bool) {
	for _, o := range c.overlays {
		if o.Kind == kind {
			return o.ID, true
		}
	}
	return "", false
}

// set places id in the slot for kind. An empty id empties the slot.
func (c *Controller) set(kind OverlayKind, id string) {
	if id == "" {
		c.clear(kind)
		return
	}
	for i := range c.overlays {
		if c.overlays[i].Kind == kind {
			c.overlays[i].ID = id
			events.Nav.Push(kind.String(), id, len(c.overlays))
			return
		}
	}
	pos := len(c.overlays)
	for i, o := range c.overlays {
		if o.Kind > kind {
			pos = i
			break
		}
	}
	c.overlays = append(c.overlays, Overlay{})
	copy(c.overlays[pos+1:], c.overlays[pos:])
	c.overlays[pos] = Overlay{Kind: kind, ID: id}
	events.Nav.Push(kind.String(), id, len(c.overlays))
}

func (c *Controller) clear(kind OverlayKind) {
	for i, o := range c.overlays {
		if o.Kind == kind {
			c.overlays = append(c.overlays[:i], c.overlays[i+1:]...)
			events.Nav.Pop(kind.String(), o.ID, len(c.overlays))
			return
		}
	}
}
