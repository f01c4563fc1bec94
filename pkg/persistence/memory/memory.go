package memory

import (
	"fmt"
	"sync"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/persistence"
	"go.uber.org/zap"
)

// MemoryPersistence is an in-memory implementation of IBridgePersistence.
// All data is lost when the process exits.
// Copies records in and out to prevent external mutation.
type MemoryPersistence struct {
	mu sync.RWMutex

	// Action journal: id -> ActionRecord
	records map[string]*persistence.ActionRecord

	session *persistence.SessionState

	closed bool
}

// NewMemoryPersistence creates a new in-memory persistence layer.
func NewMemoryPersistence(logger *zap.Logger) *MemoryPersistence {
	logger.Sugar().Warnw("Using in-memory persistence - the action journal will be lost on restart",
		"hint", "set BRIDGE_PERSISTENCE_TYPE=badger to keep it",
	)

	return &MemoryPersistence{
		records: make(map[string]*persistence.ActionRecord),
	}
}

// SaveActionRecord persists an action record.
func (m *MemoryPersistence) SaveActionRecord(record *persistence.ActionRecord) error {
	if record == nil {
		return fmt.Errorf("cannot save nil ActionRecord")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return persistence.ErrPersistenceClosed
	}

	cp := *record
	m.records[record.ID] = &cp
	return nil
}

// LoadActionRecord retrieves an action record by ID.
func (m *MemoryPersistence) LoadActionRecord(id string) (*persistence.ActionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, persistence.ErrPersistenceClosed
	}

	record, exists := m.records[id]
	if !exists {
		return nil, nil
	}
	cp := *record
	return &cp, nil
}

// ListActionRecords returns all action records sorted by creation time.
func (m *MemoryPersistence) ListActionRecords() ([]*persistence.ActionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, persistence.ErrPersistenceClosed
	}

	result := make([]*persistence.ActionRecord, 0, len(m.records))
	for _, record := range m.records {
		cp := *record
		result = append(result, &cp)
	}
	persistence.SortActionRecords(result)
	return result, nil
}

// SaveSessionState overwrites the last connected session.
func (m *MemoryPersistence) SaveSessionState(state *persistence.SessionState) error {
	if state == nil {
		return fmt.Errorf("cannot save nil SessionState")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return persistence.ErrPersistenceClosed
	}

	cp := *state
	m.session = &cp
	return nil
}

// LoadSessionState returns the last connected session.
func (m *MemoryPersistence) LoadSessionState() (*persistence.SessionState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, persistence.ErrPersistenceClosed
	}
	if m.session == nil {
		return nil, nil
	}
	cp := *m.session
	return &cp, nil
}

// Close shuts down the persistence layer.
func (m *MemoryPersistence) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}

// HealthCheck verifies the persistence layer is operational.
func (m *MemoryPersistence) HealthCheck() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return persistence.ErrPersistenceClosed
	}
	return nil
}
