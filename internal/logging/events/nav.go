package events

import "github.com/atomicstack/bookswap/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Tab(from, to string) {
	logging.Trace("nav.tab", map[string]interface{}{"from": from, "to": to})
}

func (NavTracer) Push(kind, id string, depth int) {
	logging.Trace("nav.push", map[string]interface{}{"kind": kind, "id": id, "depth": depth})
}

func (NavTracer) Pop(kind, id string, depth int) {
	logging.Trace("nav.pop", map[string]interface{}{"kind": kind, "id": id, "depth": depth})
}

func (NavTracer) BackIgnored(tab string) {
	logging.Trace("nav.back.noop", map[string]interface{}{"tab": tab})
}

func (NavTracer) StartChat(origin, chatID string) {
	logging.Trace("nav.chat.start", map[string]interface{}{"origin": origin, "chat": chatID})
}

func (NavTracer) Transition(from, to string) {
	logging.Trace("nav.transition", map[string]interface{}{"from": from, "to": to})
}
