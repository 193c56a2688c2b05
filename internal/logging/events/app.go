package events

import "github.com/atomicstack/research-console/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload any) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}
