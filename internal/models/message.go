package models

import (
	"fmt"
	"strconv"
)

// Intent is the classification attached to a user message.
type Intent struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Entity is one extracted entity of a user message.
type Entity struct {
	Entity     string      `json:"entity"`
	Value      interface{} `json:"value"`
	Start      int         `json:"start,omitempty"`
	End        int         `json:"end,omitempty"`
	Confidence float64     `json:"confidence_entity,omitempty"`
	Extractor  string      `json:"extractor,omitempty"`
}

// ValueString renders the entity value as text.
func (e Entity) ValueString() string {
	switch v := e.Value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Message is the latest user message of a turn.
type Message struct {
	Text      string   `json:"text"`
	Intent    Intent   `json:"intent"`
	Entities  []Entity `json:"entities,omitempty"`
	Timestamp float64  `json:"timestamp,omitempty"`
}
