package state

import "github.com/atomicstack/research-console/internal/rnd"

// SnapshotStore holds the single authoritative snapshot. Replace swaps the
// whole value; there is no partial update.
type SnapshotStore interface {
	Current() rnd.Snapshot
	Replace(rnd.Snapshot)
	Ready() bool
	Seq() uint64
}

type snapshotStore struct {
	current rnd.Snapshot
	ready   bool
	seq     uint64
}

func NewSnapshotStore() SnapshotStore {
	return &snapshotStore{}
}

// Current returns the held snapshot. Callers must treat its slices as
// read-only; Replace stores a private copy.
func (s *snapshotStore) Current() rnd.Snapshot {
	return s.current
}

func (s *snapshotStore) Replace(snap rnd.Snapshot) {
	s.current = snap.Clone()
	s.ready = true
	s.seq++
}

func (s *snapshotStore) Ready() bool {
	return s.ready
}

func (s *snapshotStore) Seq() uint64 {
	return s.seq
}
