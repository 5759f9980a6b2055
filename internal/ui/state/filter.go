package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterEdit is one editing step applied to a search query at its caret.
type FilterEdit int

const (
	EditInsert FilterEdit = iota
	EditBackspace
	EditDeleteWord
	EditClear
	EditCaretLeft
	EditCaretRight
	EditCaretStart
	EditCaretEnd
)

var filterEditNames = [...]string{
	EditInsert:     "insert",
	EditBackspace:  "backspace",
	EditDeleteWord: "delete-word",
	EditClear:      "clear",
	EditCaretLeft:  "caret-left",
	EditCaretRight: "caret-right",
	EditCaretStart: "caret-start",
	EditCaretEnd:   "caret-end",
}

func (e FilterEdit) String() string {
	if e < 0 || int(e) >= len(filterEditNames) {
		return "unknown"
	}
	return filterEditNames[e]
}

// EditFilter applies edit and reports whether the query or its caret
// changed. text is only read by EditInsert.
func (l *Level) EditFilter(edit FilterEdit, text string) bool {
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	switch edit {
	case EditInsert:
		insert := []rune(text)
		if len(insert) == 0 {
			return false
		}
		updated := make([]rune, 0, len(runes)+len(insert))
		updated = append(updated, runes[:pos]...)
		updated = append(updated, insert...)
		updated = append(updated, runes[pos:]...)
		l.SetFilter(string(updated), pos+len(insert))
	case EditBackspace:
		if pos == 0 {
			return false
		}
		l.SetFilter(string(runes[:pos-1])+string(runes[pos:]), pos-1)
	case EditDeleteWord:
		start := wordStart(runes, pos)
		if start == pos {
			return false
		}
		l.SetFilter(string(runes[:start])+string(runes[pos:]), start)
	case EditClear:
		if l.Filter == "" {
			return false
		}
		l.SetFilter("", 0)
	case EditCaretLeft:
		return l.placeCaret(pos - 1)
	case EditCaretRight:
		return l.placeCaret(pos + 1)
	case EditCaretStart:
		return l.placeCaret(0)
	case EditCaretEnd:
		return l.placeCaret(len(runes))
	default:
		return false
	}
	return true
}

// SetFilter replaces the query, puts the caret at caret and narrows the rows.
// The row selected when a search starts is selected again once the search is
// cleared, if it is still listed.
func (l *Level) SetFilter(query string, caret int) {
	wasSearching := strings.TrimSpace(l.Filter) != ""
	searching := strings.TrimSpace(query) != ""
	if searching && !wasSearching {
		l.restoreID = ""
		if item, ok := l.Current(); ok {
			l.restoreID = item.ID
		}
	}
	l.Filter = query
	l.FilterCursor = clamp(caret, 0, len([]rune(query)))
	l.applyFilter()
	switch {
	case searching:
		l.Cursor = 0
	case wasSearching:
		l.Cursor = max(l.IndexOf(l.restoreID), 0)
		l.restoreID = ""
	}
}

// FilterCursorPos returns the caret as a rune offset into the query.
func (l *Level) FilterCursorPos() int {
	return clamp(l.FilterCursor, 0, len([]rune(l.Filter)))
}

func (l *Level) placeCaret(pos int) bool {
	pos = clamp(pos, 0, len([]rune(l.Filter)))
	if pos == l.FilterCursorPos() {
		return false
	}
	l.FilterCursor = pos
	return true
}

func (l *Level) applyFilter() {
	match := l.Matcher
	if match == nil {
		match = MatchListings
	}
	l.Items = match(l.Full, l.Filter)
	l.Cursor = clamp(l.Cursor, 0, max(len(l.Items)-1, 0))
	if l.ViewportOffset >= len(l.Items) {
		l.ViewportOffset = 0
	}
}

// wordStart returns where the word ending at pos begins, skipping the
// whitespace directly before pos.
func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

// MatchListings keeps the rows in which every word of query occurs in the
// title or in the detail line (author, price, category, condition), ignoring
// case. When no row matches that way, titles are matched fuzzily so a
// misspelt title still finds its book. Source order is kept either way.
func MatchListings(items []Item, query string) []Item {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return CloneItems(items)
	}
	matched := make([]Item, 0, len(items))
	for _, item := range items {
		if containsAll(strings.ToLower(item.Label+" "+item.Detail), terms) {
			matched = append(matched, item)
		}
	}
	if len(matched) > 0 {
		return matched
	}
	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Label
	}
	hits := make(map[int]bool)
	for _, rank := range fuzzy.RankFindNormalizedFold(strings.Join(terms, ""), titles) {
		hits[rank.OriginalIndex] = true
	}
	for i, item := range items {
		if hits[i] {
			matched = append(matched, item)
		}
	}
	return matched
}

func containsAll(text string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(text, term) {
			return false
		}
	}
	return true
}
