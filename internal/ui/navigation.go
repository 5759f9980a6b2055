package ui

import (
	"fmt"

	"github.com/atomicstack/bookswap/internal/logging/events"
	"github.com/atomicstack/bookswap/internal/nav"
	"github.com/atomicstack/bookswap/internal/ui/command"
	uistate "github.com/atomicstack/bookswap/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

var listMotions = map[string]uistate.Motion{
	"up":     uistate.MotionUp,
	"down":   uistate.MotionDown,
	"pgup":   uistate.MotionPageUp,
	"pgdown": uistate.MotionPageDown,
	"home":   uistate.MotionFirst,
	"end":    uistate.MotionLast,
}

var tabShortcuts = map[string]nav.Tab{
	"alt+1": nav.TabHome,
	"alt+2": nav.TabMarket,
	"alt+3": nav.TabPost,
	"alt+4": nav.TabMessages,
	"alt+5": nav.TabProfile,
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	key := keyMsg.String()
	if key == "ctrl+c" {
		return tea.Quit
	}
	if m.handleTabKey(key) {
		return nil
	}
	screen := m.nav.Resolve()
	switch {
	case screen.Kind == nav.ScreenChat:
		return m.handleChatKey(keyMsg)
	case isPostScreen(screen):
		return m.handlePostKey(keyMsg)
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch key {
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "ctrl+r":
		if m.canMarkAllRead(screen) {
			m.markAllRead()
		}
	}
	if motion, ok := listMotions[key]; ok {
		m.moveCursor(motion)
	}
	return nil
}

// handleTabKey switches tabs while the tab bar is visible.
func (m *Model) handleTabKey(key string) bool {
	if !m.nav.ShowTabBar() {
		return false
	}
	switch key {
	case "tab":
		m.nav.SelectTab(m.nav.Tab().Next())
		return true
	case "shift+tab":
		m.nav.SelectTab(m.nav.Tab().Prev())
		return true
	}
	if tab, ok := tabShortcuts[key]; ok {
		m.nav.SelectTab(tab)
		return true
	}
	return false
}

// handleEscapeKey goes back when the screen offers it, otherwise clears the
// filter, and quits once there is nothing left to undo.
func (m *Model) handleEscapeKey() tea.Cmd {
	if props := m.nav.Props(); props.OnBack != nil {
		props.OnBack()
		m.errMsg = ""
		m.forceClearInfo()
		return nil
	}
	if current := m.currentLevel(); current != nil && current.Searchable {
		if m.editFilter(current, uistate.EditClear, "") {
			return nil
		}
	}
	return tea.Quit
}

func (m *Model) handleEnterKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	item, ok := current.Current()
	if !ok {
		return nil
	}
	events.UI.ListEnter(current.ID, item.ID, item.Label, current.Filter)
	return m.bus.Execute(command.Request{
		ID:      item.Action + ":" + item.ID,
		Label:   item.Label,
		Handler: m.actionHandler(item, m.nav.Props()),
	})
}

// actionHandler binds a row to the screen callback it needs. Rows whose
// callback the screen was not given resolve to nil and are skipped.
func (m *Model) actionHandler(item uistate.Item, props nav.Props) command.Handler {
	switch item.Action {
	case actionOpenBook:
		if props.OnBookClick == nil {
			return m.infoHandler(fmt.Sprintf("%s is one of your listings", item.Label))
		}
		if m.nav.Resolve().Kind == nav.ScreenUser {
			// the book sits below the profile until the profile is closed
			return func() tea.Cmd {
				props.OnBookClick(item.ID)
				m.setInfo(fmt.Sprintf("%s opens after you leave this profile (esc)", item.Label))
				return nil
			}
		}
		return func() tea.Cmd {
			props.OnBookClick(item.ID)
			return nil
		}
	case actionOpenChat:
		if props.OnChatClick == nil {
			return nil
		}
		return func() tea.Cmd {
			props.OnChatClick(item.ID)
			return nil
		}
	case actionStartChat:
		if props.OnChat == nil {
			return nil
		}
		return func() tea.Cmd {
			props.OnChat()
			return nil
		}
	case actionOpenUser:
		if props.OnSellerClick == nil {
			return nil
		}
		return func() tea.Cmd {
			props.OnSellerClick(item.ID)
			return nil
		}
	}
	return nil
}

func (m *Model) infoHandler(message string) command.Handler {
	return func() tea.Cmd {
		m.setInfo(message)
		events.Action.Success(message)
		return nil
	}
}

// canMarkAllRead reports whether the inbox offers "mark all read", which it
// does only while no search is narrowing the list.
func (m *Model) canMarkAllRead(screen nav.Screen) bool {
	return screen.Kind == nav.ScreenTab && screen.Tab == nav.TabMessages && m.inbox.ShowActive()
}

func (m *Model) markAllRead() {
	changed := m.catalog.MarkAllRead()
	events.Inbox.MarkAllRead(changed)
	m.refreshLevels()
	switch changed {
	case 0:
		m.setInfo("No unread conversations")
	case 1:
		m.setInfo("Marked 1 conversation as read")
	default:
		m.setInfo(fmt.Sprintf("Marked %d conversations as read", changed))
	}
}

// syncScreen prepares the resolved screen after navigation changed it and
// starts the transition when the screen key moved.
func (m *Model) syncScreen() tea.Cmd {
	screen := m.nav.Resolve()
	if id := screen.String(); id != m.screen {
		m.screen = id
		m.enterScreen(screen)
	}
	key := m.nav.ScreenKey()
	if key == m.screenKey {
		return nil
	}
	prev := m.screenKey
	m.screenKey = key
	events.Nav.Transition(prev, key)
	return m.startTransition()
}

func (m *Model) enterScreen(screen nav.Screen) {
	m.errMsg = ""
	switch {
	case screen.Kind == nav.ScreenChat:
		m.openChat(screen.ID)
	case isPostScreen(screen):
		m.post.focusField(m.post.focus)
	default:
		l := m.levelFor(screen)
		l.UpdateItems(m.itemsFor(screen))
		m.syncViewport(l)
	}
}

func (m *Model) moveCursor(motion uistate.Motion) {
	current := m.currentLevel()
	if current == nil {
		return
	}
	if current.Move(motion, m.maxVisibleItems()) {
		events.UI.ListCursor(current.ID, current.Cursor)
	}
	m.syncViewport(current)
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.Scroll(m.maxVisibleItems())
}
