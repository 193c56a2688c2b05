package dispatcher

import (
	"github.com/atomicstack/research-console/internal/backend"
	"github.com/atomicstack/research-console/internal/logging"
	"github.com/atomicstack/research-console/internal/logging/events"
	"github.com/atomicstack/research-console/internal/metrics"
	"github.com/atomicstack/research-console/internal/rnd"
	"github.com/atomicstack/research-console/internal/state"
)

type Result struct {
	SnapshotUpdated bool
	NavChanged      bool
	Rejected        error
	// Skipped names snapshot fields that were malformed and left empty.
	Skipped         []string
}

type Dispatcher struct {
	snapshots state.SnapshotStore
}

func New(s state.SnapshotStore) *Dispatcher {
	return &Dispatcher{snapshots: s}
}

// Handle applies a backend event to the store. Errors and malformed payloads
// leave the previous snapshot in place.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil || evt.Kind != backend.KindSnapshot {
		return res
	}
	snap, skipped, err := rnd.DecodeSnapshotSections(evt.Data)
	if err != nil {
		metrics.SnapshotsRejected.Inc()
		events.Snapshot.Rejected(err, len(evt.Data))
		logging.Error(err)
		res.Rejected = err
		return res
	}
	if len(skipped) > 0 {
		events.Snapshot.Skipped(skipped)
		res.Skipped = skipped
	}
	prev := d.snapshots.Current()
	hadPrev := d.snapshots.Ready()
	d.snapshots.Replace(snap)
	metrics.SnapshotsReceived.Inc()
	res.SnapshotUpdated = true
	res.NavChanged = !hadPrev || prev.Nav != snap.Nav
	events.Snapshot.Applied(d.snapshots.Seq(), snap.Menu, snap.Submenu)
	if res.NavChanged {
		events.Nav.Changed(snap.Menu, snap.Submenu)
	}
	return res
}
