package persistence

import "errors"

// ErrPersistenceClosed is returned by every operation after Close.
var ErrPersistenceClosed = errors.New("persistence layer is closed")

// IBridgePersistence journals bridge action outcomes and the last connected session.
// All implementations must be thread-safe; actions run concurrently.
type IBridgePersistence interface {
	// Action journal

	// SaveActionRecord persists a record keyed by its ID, overwriting any previous value.
	SaveActionRecord(record *ActionRecord) error

	// LoadActionRecord returns the record with the given ID.
	// Returns nil if it doesn't exist, error only on storage failure.
	LoadActionRecord(id string) (*ActionRecord, error)

	// ListActionRecords returns every record sorted by CreatedAt (ascending).
	// Returns an empty slice when nothing has been journaled.
	ListActionRecords() ([]*ActionRecord, error)

	// Session state

	// SaveSessionState overwrites the last connected session.
	SaveSessionState(state *SessionState) error

	// LoadSessionState returns the last connected session, or nil if none was saved.
	LoadSessionState() (*SessionState, error)

	// Lifecycle Management

	// Close cleanly shuts down the persistence layer.
	// Idempotent - safe to call multiple times.
	Close() error

	// HealthCheck verifies the persistence layer is operational.
	HealthCheck() error
}
