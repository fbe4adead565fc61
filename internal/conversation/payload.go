package conversation

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"vaccine-assistant/internal/models"
)

var payloadPattern = regexp.MustCompile(`^/([A-Za-z0-9_]+)(\{.*\})?\s*$`)

// Payload is a button payload decoded into an intent and its entities.
type Payload struct {
	Intent   string
	Entities []models.Entity
}

// ParsePayload reads text of the form /intent{"slot": "value"}. The second
// result is false for ordinary text. A malformed entity object keeps the
// intent and drops the entities.
func ParsePayload(text string) (Payload, bool) {
	m := payloadPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return Payload{}, false
	}
	p := Payload{Intent: m[1]}
	if m[2] == "" {
		return p, true
	}

	var values map[string]interface{}
	if err := json.Unmarshal([]byte(m[2]), &values); err != nil {
		return p, true
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if values[k] == nil {
			continue
		}
		p.Entities = append(p.Entities, models.Entity{Entity: k, Value: values[k], Extractor: "payload"})
	}
	return p, true
}
