// Package inbox filters the conversation list shown on the messages screen.
package inbox

import (
	"fmt"
	"strings"

	"github.com/atomicstack/bookswap/internal/logging/events"
	"github.com/atomicstack/bookswap/internal/market"
)

// FallbackCounterpart is used when a conversation has no participant other
// than the local user.
const FallbackCounterpart = "alex"

const (
	HeadingActive  = "Active Trades"
	HeadingRecent  = "Recent Chats"
	HeadingResults = "Search Results"
)

// Entry pairs a conversation with its resolved counterpart.
type Entry struct {
	Conversation market.Conversation
	Counterpart  market.User
	// Known is false when the counterpart id is missing from the directory.
	Known bool
}

// Result is the filtered view of the inbox for one query.
type Result struct {
	Query         string
	Active        []market.User
	Conversations []Entry
}

// Counterpart returns the first participant that is not self. When there is
// none the fallback identifier is returned together with fallback=true.
func Counterpart(conv market.Conversation, self string) (id string, fallback bool) {
	for _, p := range conv.Participants {
		if p != self {
			return p, false
		}
	}
	return FallbackCounterpart, true
}

// Filter applies a case-insensitive substring query to the users and
// conversations. An empty query matches everything. Both outputs keep the
// order of their source collections.
func Filter(conversations []market.Conversation, users *market.Directory, query string) Result {
	needle := strings.ToLower(query)
	res := Result{Query: query}

	for _, u := range users.All() {
		if u.ID == market.SelfID {
			continue
		}
		if strings.Contains(strings.ToLower(u.Name), needle) {
			res.Active = append(res.Active, u)
		}
	}

	for _, conv := range conversations {
		id, fallback := Counterpart(conv, market.SelfID)
		if fallback {
			events.Inbox.CounterpartFallback(conv.ID, id)
		}
		user, known := users.Lookup(id)
		if !known {
			user = market.User{ID: id}
		}
		if strings.Contains(strings.ToLower(user.Name), needle) ||
			strings.Contains(strings.ToLower(conv.LastMessage), needle) {
			res.Conversations = append(res.Conversations, Entry{Conversation: conv, Counterpart: user, Known: known})
		}
	}

	events.Inbox.Filter(query, len(res.Conversations), len(res.Active))
	return res
}

// ShowActive reports whether the Active Trades strip is shown.
func (r Result) ShowActive() bool {
	return r.Query == ""
}

// Heading labels the conversation list.
func (r Result) Heading() string {
	if r.Query == "" {
		return HeadingRecent
	}
	return HeadingResults
}

// Empty reports whether no conversation matched.
func (r Result) Empty() bool {
	return len(r.Conversations) == 0
}

// EmptyText is the message shown in place of an empty conversation list. The
// query is embedded as typed, without escaping.
func (r Result) EmptyText() string {
	return fmt.Sprintf("No chats found matching \"%s\".", r.Query)
}

// IDs returns the matching conversation identifiers in order.
func (r Result) IDs() []string {
	ids := make([]string, 0, len(r.Conversations))
	for _, e := range r.Conversations {
		ids = append(ids, e.Conversation.ID)
	}
	return ids
}
