package knowledge

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"vaccine-assistant/internal/common/validation"
)

// DefaultKey names the document entry holding the fallback age range.
const DefaultKey = "default"

//go:embed entry.schema.json
var entrySchemaJSON string

var entrySchema = validation.MustCompileSchema(entrySchemaJSON)

// Entry is one validated document override.
type Entry struct {
	AgeRange    string
	SideEffects []string
}

// Document is the parsed optional knowledge file, keyed by canonical name.
type Document struct {
	Entries map[string]Entry
}

// Issue describes one rejected document entry.
type Issue struct {
	Key      string   `json:"key"`
	Problems []string `json:"problems"`
}

// Report summarizes a parse: accepted keys and rejected entries, both sorted.
type Report struct {
	Accepted []string `json:"accepted"`
	Invalid  []Issue  `json:"invalid,omitempty"`
}

type rawEntry struct {
	AgeRange    string          `json:"age_range"`
	SideEffects json.RawMessage `json:"side_effects"`
}

// ParseDocument decodes a knowledge document. Only a document that is not a
// JSON object fails as a whole; invalid entries are reported and skipped.
func ParseDocument(data []byte) (*Document, *Report, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("knowledge document is not a JSON object: %w", err)
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	doc := &Document{Entries: make(map[string]Entry, len(raw))}
	report := &Report{}
	for _, key := range keys {
		entry, problems := parseEntry(raw[key])
		if len(problems) > 0 {
			report.Invalid = append(report.Invalid, Issue{Key: key, Problems: problems})
			continue
		}
		doc.Entries[key] = entry
		report.Accepted = append(report.Accepted, key)
	}
	return doc, report, nil
}

func parseEntry(data json.RawMessage) (Entry, []string) {
	result, err := entrySchema.ValidateBytes(data)
	if err != nil {
		return Entry{}, []string{err.Error()}
	}
	if !result.Valid {
		return Entry{}, result.GetErrorMessages()
	}

	var raw rawEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return Entry{}, []string{err.Error()}
	}

	entry := Entry{AgeRange: strings.TrimSpace(raw.AgeRange)}
	if len(raw.SideEffects) > 0 {
		effects, err := decodeSideEffects(raw.SideEffects)
		if err != nil {
			return Entry{}, []string{err.Error()}
		}
		entry.SideEffects = effects
	}
	return entry, nil
}

// decodeSideEffects accepts a comma-joined string or a list of strings.
func decodeSideEffects(data json.RawMessage) ([]string, error) {
	var joined string
	if err := json.Unmarshal(data, &joined); err == nil {
		var out []string
		for _, part := range strings.Split(joined, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out, nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("side_effects: %w", err)
	}
	return list, nil
}
