package state

// Matcher narrows items down to those matching query. Implementations must
// keep the relative order of items.
type Matcher func(items []Item, query string) []Item

// Level encapsulates the list state of one screen: cursor position, filter,
// and viewport.
type Level struct {
	ID             string
	Title          string
	Items          []Item
	Full           []Item
	Filter         string
	FilterCursor   int
	Cursor         int
	Searchable     bool
	Matcher        Matcher
	Data           interface{}
	ViewportOffset int

	restoreID string
}

// NewLevel constructs a Level for the provided items.
func NewLevel(id, title string, items []Item) *Level {
	l := &Level{ID: id, Title: title}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the index for a given item identifier.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the item under the cursor.
func (l *Level) Current() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems refreshes the level items, keeping the cursor on the same item
// when it is still present.
func (l *Level) UpdateItems(items []Item) {
	prevOffset := l.ViewportOffset
	var prevID string
	if item, ok := l.Current(); ok {
		prevID = item.ID
	}
	l.Full = CloneItems(items)
	l.applyFilter()
	if idx := l.IndexOf(prevID); idx >= 0 {
		l.Cursor = idx
	}
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 {
		prevOffset = 0
	}
	if prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}
