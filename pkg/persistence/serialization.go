package persistence

import (
	"encoding/json"
	"fmt"
)

// MarshalActionRecord serializes an ActionRecord to JSON bytes.
func MarshalActionRecord(record *ActionRecord) ([]byte, error) {
	if record == nil {
		return nil, fmt.Errorf("cannot marshal nil ActionRecord")
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ActionRecord to JSON: %w", err)
	}
	return data, nil
}

// UnmarshalActionRecord deserializes an ActionRecord from JSON bytes.
func UnmarshalActionRecord(data []byte) (*ActionRecord, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("cannot unmarshal empty data")
	}

	var record ActionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON to ActionRecord: %w", err)
	}
	return &record, nil
}

// MarshalSessionState serializes SessionState to JSON bytes.
func MarshalSessionState(state *SessionState) ([]byte, error) {
	if state == nil {
		return nil, fmt.Errorf("cannot marshal nil SessionState")
	}
	return json.Marshal(state)
}

// UnmarshalSessionState deserializes SessionState from JSON bytes.
func UnmarshalSessionState(data []byte) (*SessionState, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("cannot unmarshal empty data")
	}

	var state SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON to SessionState: %w", err)
	}
	return &state, nil
}
