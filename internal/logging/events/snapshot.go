package events

import "github.com/atomicstack/research-console/internal/logging"

type SnapshotTracer struct{}

type BackendTracer struct{}

var (
	Snapshot = SnapshotTracer{}
	Backend  = BackendTracer{}
)

func (SnapshotTracer) Applied(seq uint64, menu, submenu int) {
	logging.Trace("snapshot.applied", map[string]interface{}{"seq": seq, "menu": menu, "submenu": submenu})
}

func (SnapshotTracer) Rejected(err error, size int) {
	logging.Trace("snapshot.rejected", map[string]interface{}{"error": errString(err), "bytes": size})
}

func (SnapshotTracer) Skipped(fields []string) {
	logging.Trace("snapshot.skipped", map[string]interface{}{"fields": fields})
}

func (BackendTracer) Subscribed(subject string) {
	logging.Trace("backend.subscribed", map[string]interface{}{"subject": subject})
}

func (BackendTracer) Fetch(subject string, err error) {
	logging.Trace("backend.fetch", map[string]interface{}{"subject": subject, "error": errString(err)})
}

func (BackendTracer) StaleFetch(startGen, pushGen uint64) {
	logging.Trace("backend.fetch.stale", map[string]interface{}{"start_gen": startGen, "push_gen": pushGen})
}

func (BackendTracer) Connection(status string) {
	logging.Trace("backend.connection", map[string]interface{}{"status": status})
}

func (BackendTracer) Publish(subject, action, id string, err error) {
	logging.Trace("backend.publish", map[string]interface{}{
		"subject": subject,
		"action":  action,
		"id":      id,
		"error":   errString(err),
	})
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
