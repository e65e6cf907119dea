package models

import "time"

// SyncStatus describes where a local record sits in the sync lifecycle.
type SyncStatus string

const (
	// StatusSynced means the record matches its last confirmed server state.
	StatusSynced SyncStatus = "synced"
	// StatusPending means at least one local field differs from the last
	// synced snapshot and the record awaits a push.
	StatusPending SyncStatus = "pending"
	// StatusConflict means a push hit a version mismatch; further pushes of
	// this record are halted until a resolution is applied.
	StatusConflict SyncStatus = "conflict"
	// StatusError means the last push failed with a non-retryable error; the
	// record behaves as pending once the cause is addressed.
	StatusError SyncStatus = "error"
)

// SyncState is the per-record sync metadata kept alongside a local record.
// LastSyncedSnapshot is only ever written on confirmed-synced state so the
// next delta is always computed against a correct baseline.
type SyncState struct {
	LastSyncedAt       time.Time  `json:"last_synced_at"`
	LastSyncedSnapshot *Record    `json:"last_synced_snapshot,omitempty"`
	LastError          string     `json:"last_error,omitempty"`
	Status             SyncStatus `json:"status"`
	RetryCount         int        `json:"retry_count"`
}

// StoredRecord is what LocalStore persists: the record plus its sync state.
// SyncState never travels on the wire.
type StoredRecord struct {
	Record Record    `json:"record"`
	Sync   SyncState `json:"sync"`
}

// Clone creates a deep copy of the stored record.
func (s *StoredRecord) Clone() *StoredRecord {
	if s == nil {
		return nil
	}
	out := StoredRecord{
		Record: *s.Record.Clone(),
		Sync:   s.Sync,
	}
	out.Sync.LastSyncedSnapshot = s.Sync.LastSyncedSnapshot.Clone()
	return &out
}

// MarkSynced records confirmed server state: the snapshot becomes a deep copy
// of the current record, the error counters reset.
func (s *StoredRecord) MarkSynced(now time.Time) {
	s.Sync.Status = StatusSynced
	s.Sync.LastSyncedSnapshot = s.Record.Clone()
	s.Sync.LastSyncedAt = now
	s.Sync.RetryCount = 0
	s.Sync.LastError = ""
}

// MarkEdited flags a local modification, moving the record back to pending.
func (s *StoredRecord) MarkEdited() {
	s.Sync.Status = StatusPending
	s.Sync.LastError = ""
}

// BaselineFields returns the diff baseline for push: the snapshot fields, or
// nil when the record has never been synced.
func (s *StoredRecord) BaselineFields() Fields {
	if s.Sync.LastSyncedSnapshot == nil {
		return nil
	}
	return s.Sync.LastSyncedSnapshot.Fields
}
