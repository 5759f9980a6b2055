package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/bookswap/internal/format/table"
	"github.com/atomicstack/bookswap/internal/market"
	"github.com/atomicstack/bookswap/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"
)

const (
	listFooter = "↑/↓ move  enter open  tab/shift+tab switch tab  alt+1-5 jump  esc back  ctrl+c quit"
	chatFooter = "enter send  ↑/↓ scroll  esc back  ctrl+c quit"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	screen := m.nav.Resolve()
	var body []styledLine
	switch {
	case screen.Kind == nav.ScreenChat:
		body = m.chatLines()
	case isPostScreen(screen):
		body = m.postLines()
	default:
		body = m.listLines(screen)
	}
	if info := m.currentInfo(); info != "" {
		body = append(body, styledLine{}, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter && !isPostScreen(screen) {
		footer := listFooter
		if screen.Kind == nav.ScreenChat {
			footer = chatFooter
		} else if m.canMarkAllRead(screen) {
			footer += "  ctrl+r mark all read"
		}
		body = append(body, styledLine{}, styledLine{text: footer, style: styles.Footer})
	}
	if m.transitioning {
		body = fadeLines(body)
	}
	bottom := m.bottomLines(screen)
	body = limitHeight(body, m.height-len(bottom), m.width)
	lines := applyWidth(append(body, bottom...), m.width)
	return renderLines(lines)
}

func (m *Model) header() string {
	return appTitle + headerSeparator + screenTitle(m.nav.Resolve())
}

func (m *Model) listLines(screen nav.Screen) []styledLine {
	current := m.levelFor(screen)
	m.syncViewport(current)
	pre, post := m.listSections(screen)
	lines := make([]styledLine, 0, len(pre)+len(current.Items)+len(post))
	lines = append(lines, pre...)
	if len(current.Items) == 0 {
		lines = append(lines, styledLine{text: m.emptyText(screen, current), style: styles.Info})
	} else {
		start := 0
		displayItems := current.Items
		if maxItems := m.maxVisibleItems(); maxItems > 0 && len(displayItems) > maxItems {
			start = current.ViewportOffset
			if start < 0 {
				start = 0
			}
			if start+maxItems > len(displayItems) {
				start = len(displayItems) - maxItems
				if start < 0 {
					start = 0
				}
				current.ViewportOffset = start
			}
			displayItems = displayItems[start : start+maxItems]
		}
		for i, item := range displayItems {
			lines = append(lines, m.buildItemLine(item.Label, item.Detail, item.Marked, start+i, current, m.width))
		}
	}
	return append(lines, post...)
}

func (m *Model) emptyText(screen nav.Screen, current *level) string {
	switch {
	case screen.Kind == nav.ScreenTab && screen.Tab == nav.TabMessages:
		return m.inbox.EmptyText()
	case current.Filter != "":
		return fmt.Sprintf("No matches for %q", current.Filter)
	case screen.Kind == nav.ScreenBook:
		return "This listing is no longer available."
	case screen.Kind == nav.ScreenUser:
		return "User not found."
	case screen.Kind == nav.ScreenTab && screen.Tab == nav.TabProfile:
		return "You have no listings yet. Switch to Post to add one."
	}
	return "(no listings)"
}

// listSections returns the rows rendered above and below the list of a
// screen.
func (m *Model) listSections(screen nav.Screen) (pre, post []styledLine) {
	pre = []styledLine{{text: m.header(), style: styles.Header}}
	section := func(text string) styledLine {
		return styledLine{text: text, style: styles.Section}
	}
	switch screen.Kind {
	case nav.ScreenBook:
		pre = append(pre, m.bookSections(screen.ID)...)
		return pre, nil
	case nav.ScreenUser:
		user, ok := m.catalog.User(screen.ID)
		if !ok {
			return pre, nil
		}
		pre = append(pre, profileLines(user)...)
		return append(pre, styledLine{}, section("Actions & listings")), nil
	}
	switch screen.Tab {
	case nav.TabMarket:
		total := len(m.catalog.Books())
		heading := fmt.Sprintf("All listings (%d)", total)
		if l := m.levels[screen.String()]; l != nil && l.Filter != "" {
			heading = fmt.Sprintf("Matching listings (%d of %d)", len(l.Items), total)
		}
		pre = append(pre, section(heading))
	case nav.TabMessages:
		res := m.inbox
		if res.ShowActive() {
			names := make([]string, 0, len(res.Active))
			for _, u := range res.Active {
				names = append(names, u.FirstName())
			}
			pre = append(pre, section("Active Trades"), styledLine{text: strings.Join(names, "  ·  "), style: styles.Item}, styledLine{})
		}
		pre = append(pre, section(res.Heading()))
	case nav.TabProfile:
		user, ok := m.catalog.User(screen.ID)
		if ok {
			pre = append(pre, profileLines(user)...)
			pre = append(pre, styledLine{})
		}
		pre = append(pre, section(fmt.Sprintf("Your listings (%d)", len(m.catalog.BooksBySeller(screen.ID)))))
	default:
		pre = append(pre, section("Featured listings"))
	}
	return pre, nil
}

func profileLines(u market.User) []styledLine {
	stats := joinDetail(
		u.Location,
		fmt.Sprintf("★ %.1f", u.Rating),
		humanize.Comma(int64(u.Trades))+" trades",
	)
	lines := []styledLine{
		{text: u.Name, style: styles.Header},
		{text: stats, style: styles.ItemDetail},
	}
	if u.Bio != "" {
		lines = append(lines, styledLine{text: u.Bio, style: styles.Info})
	}
	return lines
}

func (m *Model) bookSections(bookID string) []styledLine {
	book, ok := m.catalog.Book(bookID)
	if !ok {
		return nil
	}
	seller, _ := m.catalog.User(book.SellerID)
	lines := []styledLine{
		{text: book.Title, style: styles.Header},
		{text: "by " + book.Author, style: styles.ItemDetail},
		{},
	}
	rows := table.Pairs([][2]string{
		{"Price", book.PriceLabel()},
		{"Condition", book.Condition},
		{"Category", book.Category},
		{"Seller", fallbackName(seller.Name)},
		{"Posted", book.Age()},
	})
	for _, row := range rows {
		lines = append(lines, styledLine{text: row, style: styles.Info})
	}
	source := book.Description
	if strings.TrimSpace(source) == "" {
		source = "_No description provided._"
	}
	lines = append(lines, styledLine{})
	for _, row := range m.markdown.render(book.ID, source, m.width) {
		lines = append(lines, styledLine{text: row, raw: true})
	}
	lines = append(lines, styledLine{}, styledLine{text: "Actions", style: styles.Section})
	return lines
}

// buildItemLine constructs a single styledLine for a list row. width is the
// target column width; when > 0 the text is padded so that the selected row's
// background spans the full container.
func (m *Model) buildItemLine(label, detail string, marked bool, idx int, current *level, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if marked {
		lineStyle = styles.Unread
	}
	if idx == current.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := indicator + " " + label
	if detail != "" {
		fullText += "  " + detail
	}
	if width > 0 {
		if pad := width - lipgloss.Width(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

// bottomLines returns the status line, the search prompt of searchable screens
// and the tab bar.
func (m *Model) bottomLines(screen nav.Screen) []styledLine {
	var status styledLine
	if m.errMsg != "" {
		status = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	lines := []styledLine{status}
	if current := m.currentLevel(); current != nil && current.Searchable {
		lines = append(lines, styledLine{text: m.filterPrompt(), raw: true})
	}
	if m.nav.ShowTabBar() {
		lines = append(lines, styledLine{text: m.tabBar(screen.Tab), raw: true})
	}
	return lines
}

func (m *Model) tabBar(active nav.Tab) string {
	parts := make([]string, 0, len(nav.Tabs))
	for i, t := range nav.Tabs {
		label := fmt.Sprintf("%d %s", i+1, t.Label())
		if t == nav.TabMessages {
			if unread := m.catalog.UnreadTotal(); unread > 0 {
				label = fmt.Sprintf("%s (%d)", label, unread)
			}
		}
		style := styles.Tab
		if t == active {
			style = styles.ActiveTab
		}
		if style != nil {
			label = style.Render(label)
		}
		parts = append(parts, label)
	}
	sep := " │ "
	if styles.TabSeparator != nil {
		sep = styles.TabSeparator.Render(sep)
	}
	bar := strings.Join(parts, sep)
	if m.width > 0 && lipgloss.Width(bar) > m.width {
		bar = truncate.StringWithTail(bar, uint(m.width-1), "…")
	}
	return bar
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if m.nav.Resolve().Kind == nav.ScreenChat {
		m.resizeChat()
		m.refreshChat()
	}
	if current := m.currentLevel(); current != nil {
		m.syncViewport(current)
	}
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	screen := m.nav.Resolve()
	pre, post := m.listSections(screen)
	used := len(pre) + len(post) + len(m.bottomLines(screen))
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	if m.transitioning {
		used++
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			w := lipgloss.Width(text)
			if w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText shortens text to width cells, ending with an ellipsis.
func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return ansi.Truncate(text, 1, "")
	}
	return ansi.Truncate(text, width, "…")
}
