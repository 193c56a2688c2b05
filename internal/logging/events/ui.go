package events

import "github.com/atomicstack/research-console/internal/logging"

type UITracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

type SearchTracer struct{}

var (
	UI      = UITracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
	Search  = SearchTracer{}
)

func (UITracer) Focus(screen, controlID string, index int) {
	logging.Trace("ui.focus", map[string]interface{}{"screen": screen, "control": controlID, "index": index})
}

func (UITracer) Activate(controlID, label string) {
	logging.Trace("ui.activate", map[string]interface{}{"control": controlID, "label": label})
}

func (UITracer) Blocked(controlID, reason string) {
	logging.Trace("ui.blocked", map[string]interface{}{"control": controlID, "reason": reason})
}

func (UITracer) Overlay(message string, shown bool) {
	logging.Trace("ui.overlay", map[string]interface{}{"message": message, "shown": shown})
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

func (CommandTracer) Queue(id, action string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "action": action})
}

func (CommandTracer) Skip(id, action string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "action": action})
}

func (CommandTracer) Result(id, action, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "action": action, "msg": msgType})
}

func (SearchTracer) Input(value string) {
	logging.Trace("search.input", map[string]interface{}{"value": value})
}

func (SearchTracer) Submit(term string) {
	logging.Trace("search.submit", map[string]interface{}{"term": term})
}

func (SearchTracer) Reset() {
	logging.Trace("search.reset", nil)
}
