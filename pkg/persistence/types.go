package persistence

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// ActionRecord is the journaled outcome of one bridge action.
type ActionRecord struct {
	ID string `json:"id"`

	// Action is one of connect, deposit, withdraw, transfer or balance
	Action string `json:"action"`

	// Account is the connected user's address, empty before a session exists
	Account string `json:"account,omitempty"`

	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`

	// Amount is the decimal string as entered; BaseUnits is its 18-decimal integer form
	Amount    string `json:"amount,omitempty"`
	BaseUnits string `json:"baseUnits,omitempty"`

	TxHash    string `json:"txHash,omitempty"`
	Status    string `json:"status"`
	ErrorKind string `json:"errorKind,omitempty"`
	Message   string `json:"message,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// NewActionRecord returns a record with a fresh ID and the current time.
func NewActionRecord(action string) *ActionRecord {
	return &ActionRecord{
		ID:        uuid.New().String(),
		Action:    action,
		CreatedAt: time.Now().UTC(),
	}
}

// SessionState is the last session the bridge connected. It is informational;
// a restarted bridge always requires a fresh Connect.
type SessionState struct {
	Account     string `json:"account"`
	ChainId     uint64 `json:"chainId"`
	ConnectedAt int64  `json:"connectedAt"`
}

// SortActionRecords orders records by CreatedAt, falling back to ID for equal timestamps.
func SortActionRecords(records []*ActionRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].ID < records[j].ID
		}
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
}
