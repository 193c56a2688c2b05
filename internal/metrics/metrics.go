package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "rnd_console"

var (
	SnapshotsReceived = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshots_received_total",
		Help:      "State snapshots decoded and applied.",
	})
	SnapshotsRejected = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshots_rejected_total",
		Help:      "Pushed payloads dropped because they were not snapshots.",
	})
	ActionsSent = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "actions_sent_total",
		Help:      "Actions published to the game server, labeled by action.",
	}, []string{"action"})
	ActionFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "action_failures_total",
		Help:      "Actions that could not be published, labeled by action.",
	}, []string{"action"})
	SimActions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sim_actions_total",
		Help:      "Actions seen by the simulator, labeled by action and whether state changed.",
	}, []string{"action", "handled"})
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests served, labeled by method and route.",
	}, []string{"method", "route"})

	registerOnce sync.Once
)

// Init registers the collectors with the default registry. Safe to call more
// than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			SnapshotsReceived,
			SnapshotsRejected,
			ActionsSent,
			ActionFailures,
			SimActions,
			HTTPRequests,
		)
	})
}
