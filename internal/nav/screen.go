package nav

import "fmt"

// OverlayKind tags an overlay entry. The numeric order is the rendering
// precedence: a higher kind is always drawn over a lower one.
type OverlayKind int

const (
	OverlayBook OverlayKind = iota
	OverlayUser
	OverlayChat
)

func (k OverlayKind) String() string {
	switch k {
	case OverlayBook:
		return "book"
	case OverlayUser:
		return "user"
	case OverlayChat:
		return "chat"
	default:
		return fmt.Sprintf("overlay(%d)", int(k))
	}
}

// Overlay is a full-screen view layered over the tab content.
type Overlay struct {
	Kind OverlayKind
	ID   string
}

// ScreenKind discriminates the resolved screen.
type ScreenKind int

const (
	ScreenTab ScreenKind = iota
	ScreenBook
	ScreenUser
	ScreenChat
)

func (k ScreenKind) String() string {
	switch k {
	case ScreenTab:
		return "tab"
	case ScreenBook:
		return "book"
	case ScreenUser:
		return "user"
	case ScreenChat:
		return "chat"
	default:
		return fmt.Sprintf("screen(%d)", int(k))
	}
}

// Screen is the single view the controller wants rendered. For ScreenTab the
// Tab field names a known tab; the profile tab carries the self user in ID.
// For overlay kinds ID is the selected record.
type Screen struct {
	Kind ScreenKind
	ID   string
	Tab  Tab
}

// IsOverlay reports whether the screen hides the tab bar.
func (s Screen) IsOverlay() bool {
	return s.Kind != ScreenTab
}

func (s Screen) String() string {
	if s.Kind == ScreenTab {
		if s.ID != "" {
			return fmt.Sprintf("tab:%s:%s", s.Tab, s.ID)
		}
		return "tab:" + string(s.Tab)
	}
	return fmt.Sprintf("%s:%s", s.Kind, s.ID)
}

// Props carries the callbacks a screen may invoke. Only the callbacks the
// resolved screen is entitled to are non-nil.
type Props struct {
	OnBack        func()
	OnChat        func()
	OnBookClick   func(id string)
	OnSellerClick func(id string)
	OnChatClick   func(id string)
}

func screenKindFor(k OverlayKind) ScreenKind {
	switch k {
	case OverlayChat:
		return ScreenChat
	case OverlayUser:
		return ScreenUser
	default:
		return ScreenBook
	}
}
