package transport

import (
	"fmt"

	"github.com/atomicstack/research-console/internal/logging"
	"github.com/nats-io/nats-server/v2/server"
)

type serverLogger struct{}

// NewServerLogger routes nats-server log output into the console log file.
// Notices and debug lines go to the trace stream; warnings and errors are
// always written.
func NewServerLogger() server.Logger {
	return serverLogger{}
}

func (serverLogger) Noticef(format string, v ...interface{}) {
	logging.Trace("nats.notice", fmt.Sprintf(format, v...))
}

func (serverLogger) Warnf(format string, v ...interface{}) {
	logging.Errorf("nats warning: "+format, v...)
}

func (serverLogger) Errorf(format string, v ...interface{}) {
	logging.Errorf("nats error: "+format, v...)
}

func (serverLogger) Fatalf(format string, v ...interface{}) {
	logging.Errorf("nats fatal: "+format, v...)
}

func (serverLogger) Debugf(format string, v ...interface{}) {
	logging.Trace("nats.debug", fmt.Sprintf(format, v...))
}

func (serverLogger) Tracef(format string, v ...interface{}) {
	logging.Trace("nats.trace", fmt.Sprintf(format, v...))
}
