package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/bookswap/internal/inbox"
	"github.com/atomicstack/bookswap/internal/market"
	"github.com/atomicstack/bookswap/internal/nav"
	"github.com/atomicstack/bookswap/internal/theme"
	"github.com/atomicstack/bookswap/internal/ui/command"
	uistate "github.com/atomicstack/bookswap/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

const (
	appTitle        = "BookSwap"
	headerSeparator = " › "
	featuredCount   = 5

	DefaultTransition    = 150 * time.Millisecond
	DefaultMarkdownStyle = "dark"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Width         int
	Height        int
	ShowFooter    bool
	InitialTab    nav.Tab
	Animate       bool
	Transition    time.Duration
	MarkdownStyle string
}

// Model implements the Bubble Tea model for the marketplace client.
type Model struct {
	nav     *nav.Controller
	catalog *market.Catalog
	levels  map[string]*level
	inbox   inbox.Result
	post    *postForm
	chat    *chatPane

	markdown *markdownRenderer

	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	filterCursor      cursor.Model
	filterCursorDirty bool

	// screen tracks the resolved screen, screenKey the transition identity.
	screen        string
	screenKey     string
	animate       bool
	transition    time.Duration
	transitioning bool
	transitionSeq int

	handlers map[reflect.Type]msgHandler
	bus      *command.Bus
}

// NewModel initialises the UI on the configured tab with the given catalog.
func NewModel(catalog *market.Catalog, opts Options) *Model {
	if catalog == nil {
		catalog = market.Mock()
	}
	style := opts.MarkdownStyle
	if style == "" {
		style = DefaultMarkdownStyle
	}
	m := &Model{
		nav:        nav.New(opts.InitialTab),
		catalog:    catalog,
		levels:     map[string]*level{},
		post:       newPostForm(),
		chat:       newChatPane(),
		markdown:   newMarkdownRenderer(style),
		bus:        command.New(),
		showFooter: opts.ShowFooter,
		animate:    opts.Animate,
		transition: opts.Transition,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()

	screen := m.nav.Resolve()
	m.screen = screen.String()
	m.screenKey = m.nav.ScreenKey()
	m.enterScreen(screen)
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if cmd := m.syncScreen(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(transitionDoneMsg{}): m.handleTransitionDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Screen reports the screen currently rendered.
func (m *Model) Screen() nav.Screen {
	return m.nav.Resolve()
}

// Nav exposes the navigation controller.
func (m *Model) Nav() *nav.Controller {
	return m.nav
}

// Catalog exposes the data the model renders.
func (m *Model) Catalog() *market.Catalog {
	return m.catalog
}
