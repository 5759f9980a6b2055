package events

import "github.com/atomicstack/bookswap/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) ListEnter(screen, itemID, label, filter string) {
	logging.Trace("list.enter", map[string]interface{}{
		"screen": screen,
		"item":   itemID,
		"label":  label,
		"filter": filter,
	})
}

func (UITracer) ListCursor(screen string, cursor int) {
	logging.Trace("list.cursor", map[string]interface{}{"screen": screen, "cursor": cursor})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Edit(screen, op, filter string) {
	logging.Trace("filter.edit", map[string]interface{}{"screen": screen, "op": op, "filter": filter})
}

func (FilterTracer) Caret(screen, op string, pos int) {
	logging.Trace("filter.caret", map[string]interface{}{"screen": screen, "op": op, "cursor": pos})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
