package nav

import "strings"

// Tab is a primary bottom-navigation destination.
type Tab string

const (
	TabHome     Tab = "home"
	TabMarket   Tab = "market"
	TabPost     Tab = "post"
	TabMessages Tab = "messages"
	TabProfile  Tab = "profile"
)

// Tabs lists the tab bar entries in display order.
var Tabs = []Tab{TabHome, TabMarket, TabPost, TabMessages, TabProfile}

var tabLabels = map[Tab]string{
	TabHome:     "Home",
	TabMarket:   "Market",
	TabPost:     "Post",
	TabMessages: "Messages",
	TabProfile:  "Profile",
}

// ParseTab maps user input onto a known tab.
func ParseTab(s string) (Tab, bool) {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	if !t.Known() {
		return TabHome, false
	}
	return t, true
}

// Known reports whether t is one of the enumerated tabs.
func (t Tab) Known() bool {
	_, ok := tabLabels[t]
	return ok
}

// Label returns the tab bar caption.
func (t Tab) Label() string {
	if label, ok := tabLabels[t]; ok {
		return label
	}
	return tabLabels[TabHome]
}

// Index returns the position of t in Tabs, or -1.
func (t Tab) Index() int {
	for i, candidate := range Tabs {
		if candidate == t {
			return i
		}
	}
	return -1
}

// Next returns the tab to the right, wrapping around.
func (t Tab) Next() Tab {
	idx := t.Index()
	if idx < 0 {
		return TabHome
	}
	return Tabs[(idx+1)%len(Tabs)]
}

// Prev returns the tab to the left, wrapping around.
func (t Tab) Prev() Tab {
	idx := t.Index()
	if idx < 0 {
		return TabHome
	}
	return Tabs[(idx+len(Tabs)-1)%len(Tabs)]
}
