package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/bookswap/internal/logging/events"
	"github.com/atomicstack/bookswap/internal/market"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldTitle = iota
	fieldAuthor
	fieldPrice
	fieldCondition
	fieldDescription
)

var (
	errTitleRequired  = errors.New("title is required")
	errAuthorRequired = errors.New("author is required")
	errPriceRequired  = errors.New("price is required")
	errPriceInvalid   = errors.New("price must be a non-negative number")
)

var postFieldLabels = []string{"Title", "Author", "Price", "Condition", "Description"}

type postForm struct {
	inputs []textinput.Model
	focus  int
}

func newPostForm() *postForm {
	placeholders := []string{
		"e.g. The Left Hand of Darkness",
		"e.g. Ursula K. Le Guin",
		"e.g. 12.50",
		"Like New, Good, Fair (default Good)",
		"Anything a buyer should know",
	}
	limits := []int{120, 80, 12, 20, 500}
	f := &postForm{inputs: make([]textinput.Model, len(postFieldLabels))}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		ti.Cursor.SetMode(cursor.CursorStatic)
		if styles.Filter != nil {
			ti.TextStyle = styles.Filter.Copy()
		}
		if styles.FilterPlaceholder != nil {
			ti.PlaceholderStyle = styles.FilterPlaceholder.Copy()
		}
		f.inputs[i] = ti
	}
	f.focusField(fieldTitle)
	return f
}

func (f *postForm) focusField(idx int) {
	if idx < 0 {
		idx = 0
	}
	if idx >= len(f.inputs) {
		idx = len(f.inputs) - 1
	}
	for i := range f.inputs {
		if i == idx {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	f.focus = idx
}

func (f *postForm) value(idx int) string {
	return strings.TrimSpace(f.inputs[idx].Value())
}

func (f *postForm) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.focusField(fieldTitle)
}

// draft validates the required fields and converts the form to a draft.
func (f *postForm) draft() (market.Draft, error) {
	d := market.Draft{
		Title:       f.value(fieldTitle),
		Author:      f.value(fieldAuthor),
		Condition:   f.value(fieldCondition),
		Description: f.value(fieldDescription),
	}
	if d.Title == "" {
		return d, errTitleRequired
	}
	if d.Author == "" {
		return d, errAuthorRequired
	}
	price, err := parsePrice(f.value(fieldPrice))
	if err != nil {
		return d, err
	}
	d.Price = price
	return d, nil
}

func parsePrice(raw string) (float64, error) {
	raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "$"))
	raw = strings.ReplaceAll(raw, ",", "")
	if raw == "" {
		return 0, errPriceRequired
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price < 0 {
		return 0, errPriceInvalid
	}
	return price, nil
}

func (m *Model) handlePostKey(msg tea.KeyMsg) tea.Cmd {
	f := m.post
	switch msg.String() {
	case "esc":
		events.Listing.Cancel(events.ListingReasonEscape, "")
		f.reset()
		m.errMsg = ""
		if props := m.nav.Props(); props.OnBack != nil {
			props.OnBack()
		}
		return nil
	case "ctrl+s":
		m.submitPost()
		return nil
	case "enter":
		if f.focus == len(f.inputs)-1 {
			m.submitPost()
			return nil
		}
		f.focusField(f.focus + 1)
		return nil
	case "down":
		f.focusField(f.focus + 1)
		return nil
	case "up":
		f.focusField(f.focus - 1)
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (m *Model) submitPost() {
	d, err := m.post.draft()
	if err != nil {
		m.errMsg = err.Error()
		events.Listing.Cancel(events.ListingReasonInvalid, err.Error())
		events.Action.Error(err)
		return
	}
	book := m.catalog.AddListing(d)
	events.Listing.Submit(book.ID, book.Title)
	m.post.reset()
	m.errMsg = ""
	m.refreshLevels()
	if props := m.nav.Props(); props.OnBack != nil {
		props.OnBack()
	}
	m.setInfo(fmt.Sprintf("Posted %q for %s", book.Title, book.PriceLabel()))
}

func (m *Model) postLines() []styledLine {
	lines := []styledLine{
		{text: m.header(), style: styles.Header},
		{text: "List a book for sale", style: styles.Section},
		{},
	}
	labelWidth := 0
	for _, label := range postFieldLabels {
		if len(label) > labelWidth {
			labelWidth = len(label)
		}
	}
	for i, label := range postFieldLabels {
		marker := "  "
		labelStyle := styles.Label
		if i == m.post.focus {
			marker = "▌ "
			labelStyle = styles.Unread
		}
		padded := fmt.Sprintf("%-*s", labelWidth, label)
		if labelStyle != nil {
			padded = labelStyle.Render(padded)
		}
		lines = append(lines, styledLine{text: marker + padded + "  " + m.post.inputs[i].View(), raw: true})
	}
	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: "enter next field  ctrl+s post  esc discard", style: styles.Footer})
	return lines
}
