package inbox

import (
	"reflect"
	"strings"
	"testing"

	"github.com/atomicstack/bookswap/internal/market"
)

func exampleData() ([]market.Conversation, *market.Directory) {
	users := market.NewDirectory([]market.User{
		{ID: "me", Name: "Jordan Lee"},
		{ID: "alex", Name: "Alex Chen"},
	})
	convs := []market.Conversation{
		{ID: "1", Participants: []string{"me", "alex"}, LastMessage: "Is this still available?"},
	}
	return convs, users
}

func TestFilterExamples(t *testing.T) {
	convs, users := exampleData()
	cases := []struct {
		query string
		want  []string
	}{
		{"chen", []string{"1"}},
		{"CHEN", []string{"1"}},
		{"available", []string{"1"}},
		{"nope", []string{}},
	}
	for _, tc := range cases {
		res := Filter(convs, users, tc.query)
		if got := res.IDs(); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("query %q: expected %v, got %v", tc.query, tc.want, got)
		}
	}
	res := Filter(convs, users, "nope")
	if !res.Empty() || !strings.Contains(res.EmptyText(), "nope") {
		t.Fatalf("expected empty state mentioning query, got %q", res.EmptyText())
	}
}

func TestEmptyQueryMatchesEverything(t *testing.T) {
	c := market.Mock()
	convs := c.Conversations()
	res := Filter(convs, c.Users(), "")
	if len(res.Conversations) != len(convs) {
		t.Fatalf("expected all %d conversations, got %d", len(convs), len(res.Conversations))
	}
	for i, e := range res.Conversations {
		if e.Conversation.ID != convs[i].ID {
			t.Fatalf("expected source order, got %v", res.IDs())
		}
	}
	if len(res.Active) != c.Users().Len()-1 {
		t.Fatalf("expected all non-self users, got %d", len(res.Active))
	}
	for _, u := range res.Active {
		if u.ID == market.SelfID {
			t.Fatalf("self must not appear among active users")
		}
	}
	if !res.ShowActive() || res.Heading() != HeadingRecent {
		t.Fatalf("expected active strip and recent heading for empty query")
	}
}

func TestNonEmptyQueryHidesActiveStrip(t *testing.T) {
	convs, users := exampleData()
	res := Filter(convs, users, " ")
	if res.ShowActive() {
		t.Fatalf("whitespace query is not empty and must hide the active strip")
	}
	if res.Heading() != HeadingResults {
		t.Fatalf("expected search results heading, got %q", res.Heading())
	}
	if len(res.Conversations) != 1 {
		t.Fatalf("expected the space in the last message to match")
	}
}

func TestNoMatchQuery(t *testing.T) {
	c := market.Mock()
	res := Filter(c.Conversations(), c.Users(), "zzz_no_match")
	if !res.Empty() {
		t.Fatalf("expected no conversations, got %v", res.IDs())
	}
	if res.EmptyText() != `No chats found matching "zzz_no_match".` {
		t.Fatalf("unexpected empty text %q", res.EmptyText())
	}
	if len(res.Active) != 0 {
		t.Fatalf("expected no active users, got %d", len(res.Active))
	}
}

func TestEmptyTextEmbedsQueryVerbatim(t *testing.T) {
	convs, users := exampleData()
	cases := []struct {
		query string
		want  string
	}{
		{`say "hi"`, `No chats found matching "say "hi"".`},
		{`back\slash`, `No chats found matching "back\slash".`},
		{"tab\there", "No chats found matching \"tab\there\"."},
	}
	for _, tc := range cases {
		res := Filter(convs, users, tc.query)
		if !res.Empty() {
			t.Fatalf("query %q: expected no conversations, got %v", tc.query, res.IDs())
		}
		if got := res.EmptyText(); got != tc.want {
			t.Fatalf("query %q: expected %q, got %q", tc.query, tc.want, got)
		}
		if !strings.Contains(res.EmptyText(), tc.query) {
			t.Fatalf("query %q: empty text %q does not contain the query", tc.query, res.EmptyText())
		}
	}
}

func TestActiveUsersFilteredByName(t *testing.T) {
	c := market.Mock()
	res := Filter(c.Conversations(), c.Users(), "mi")
	var ids []string
	for _, u := range res.Active {
		ids = append(ids, u.ID)
	}
	if !reflect.DeepEqual(ids, []string{"sarah", "mike"}) {
		t.Fatalf("expected sarah and mike in source order, got %v", ids)
	}
}

func TestCounterpartFallback(t *testing.T) {
	id, fallback := Counterpart(market.Conversation{Participants: []string{"me"}}, "me")
	if id != FallbackCounterpart || !fallback {
		t.Fatalf("expected fallback, got %q %v", id, fallback)
	}
	id, fallback = Counterpart(market.Conversation{Participants: []string{"me", "sarah"}}, "me")
	if id != "sarah" || fallback {
		t.Fatalf("expected sarah, got %q %v", id, fallback)
	}

	_, users := exampleData()
	convs := []market.Conversation{{ID: "x", Participants: []string{"me"}, LastMessage: "hello"}}
	res := Filter(convs, users, "alex")
	if len(res.Conversations) != 1 || res.Conversations[0].Counterpart.ID != "alex" {
		t.Fatalf("expected fallback counterpart to match by name, got %#v", res.Conversations)
	}
}

func TestUnknownCounterpartMatchesOnMessageOnly(t *testing.T) {
	_, users := exampleData()
	convs := []market.Conversation{{ID: "g", Participants: []string{"me", "ghost"}, LastMessage: "price?"}}
	if res := Filter(convs, users, "ghost"); !res.Empty() {
		t.Fatalf("unknown users have no name to match")
	}
	res := Filter(convs, users, "price")
	if len(res.Conversations) != 1 || res.Conversations[0].Known {
		t.Fatalf("expected message match with unknown counterpart, got %#v", res.Conversations)
	}
}
