package state

// Item is a selectable row of a screen list.
type Item struct {
	ID     string
	Label  string
	Detail string
	// Action names what activating the row does.
	Action string
	// Marked highlights the row, e.g. unread conversations.
	Marked bool
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
