package events

import "github.com/atomicstack/research-console/internal/logging"

type SimTracer struct{}

var Sim = SimTracer{}

func (SimTracer) Fixture(path string, designs int) {
	logging.Trace("sim.fixture", map[string]interface{}{"path": path, "designs": designs})
}

func (SimTracer) Action(id, action string, handled bool) {
	logging.Trace("sim.action", map[string]interface{}{"id": id, "action": action, "handled": handled})
}

func (SimTracer) Publish(subject string, menu, submenu int) {
	logging.Trace("sim.publish", map[string]interface{}{"subject": subject, "menu": menu, "submenu": submenu})
}

func (SimTracer) Reject(err error) {
	logging.Trace("sim.reject", map[string]interface{}{"error": errString(err)})
}
