package models

import (
	"encoding/json"
	"time"
)

// OutOfScopeEntry is one persisted unmatched query.
type OutOfScopeEntry struct {
	UserInput string    `json:"user_input"`
	Intent    string    `json:"intent"`
	Entities  []Entity  `json:"entities"`
	Timestamp time.Time `json:"timestamp"`
}

// EntitiesString is the stringified entity list stored alongside the text.
func (e OutOfScopeEntry) EntitiesString() string {
	if len(e.Entities) == 0 {
		return "[]"
	}
	data, err := json.Marshal(e.Entities)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// TimestampString formats the timestamp for text sinks.
func (e OutOfScopeEntry) TimestampString() string {
	if e.Timestamp.IsZero() {
		return ""
	}
	return e.Timestamp.UTC().Format(time.RFC3339Nano)
}
