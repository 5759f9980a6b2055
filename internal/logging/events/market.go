package events

import "github.com/atomicstack/bookswap/internal/logging"

type InboxTracer struct{}

type ListingTracer struct{}

type ChatTracer struct{}

type listingReason string

const (
	ListingReasonEscape  listingReason = "escape"
	ListingReasonInvalid listingReason = "invalid"
)

var (
	Inbox   = InboxTracer{}
	Listing = ListingTracer{}
	Chat    = ChatTracer{}
)

func (InboxTracer) Filter(query string, conversations, active int) {
	logging.Trace("inbox.filter", map[string]interface{}{
		"query":         query,
		"conversations": conversations,
		"active":        active,
	})
}

// CounterpartFallback records a conversation with no non-self participant.
func (InboxTracer) CounterpartFallback(chatID, fallback string) {
	logging.Trace("inbox.counterpart.fallback", map[string]interface{}{"chat": chatID, "fallback": fallback})
}

func (InboxTracer) MarkAllRead(changed int) {
	logging.Trace("inbox.mark-all-read", map[string]interface{}{"changed": changed})
}

func (ListingTracer) Submit(id, title string) {
	logging.Trace("listing.submit", map[string]interface{}{"id": id, "title": title})
}

func (ListingTracer) Cancel(reason listingReason, detail string) {
	logging.Trace("listing.cancel", map[string]interface{}{"reason": string(reason), "detail": detail})
}

func (ChatTracer) Send(chatID, messageID string) {
	logging.Trace("chat.send", map[string]interface{}{"chat": chatID, "message": messageID})
}

func (ChatTracer) Open(chatID string, messages int) {
	logging.Trace("chat.open", map[string]interface{}{"chat": chatID, "messages": messages})
}
