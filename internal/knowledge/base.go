package knowledge

import (
	"os"
	"strings"

	apperrors "vaccine-assistant/internal/common/errors"
	"vaccine-assistant/internal/common/logger"
)

// Base is the read-only knowledge base. It is immutable after construction
// and safe for concurrent reads; accessors return copies.
type Base struct {
	facts           map[string]VaccineFact
	names           []string
	synonyms        []SynonymGroup
	ageAliases      map[string]string
	schedule        []ScheduleEntry
	symptoms        []SymptomEntry
	diseases        []Advisory
	conditions      []Advisory
	defaultAgeRange string
}

// New builds a base from tables alone.
func New(t Tables) *Base {
	return NewWithDocument(t, nil, logger.NewNoOpLogger())
}

// NewWithDocument merges doc into t. A document may override age_range and
// side_effects of vaccines already present in t; other keys are ignored.
func NewWithDocument(t Tables, doc *Document, log logger.Logger) *Base {
	b := &Base{
		facts:      make(map[string]VaccineFact, len(t.Facts)),
		synonyms:   copyGroups(t.Synonyms),
		ageAliases: make(map[string]string, len(t.AgeAliases)),
		schedule:   copySchedule(t.Schedule),
		symptoms:   copySymptoms(t.Symptoms),
		diseases:   append([]Advisory(nil), t.Diseases...),
		conditions: append([]Advisory(nil), t.Conditions...),
	}
	for k, v := range t.AgeAliases {
		b.ageAliases[k] = v
	}
	for _, f := range t.Facts {
		if _, dup := b.facts[f.Name]; dup {
			continue
		}
		f.SideEffects = append([]string(nil), f.SideEffects...)
		b.facts[f.Name] = f
		b.names = append(b.names, f.Name)
	}

	if doc == nil {
		return b
	}

	for key, entry := range doc.Entries {
		if key == DefaultKey {
			b.defaultAgeRange = entry.AgeRange
			continue
		}
		fact, ok := b.facts[key]
		if !ok {
			log.Debug("ignoring knowledge entry for unknown vaccine", map[string]interface{}{"vaccine": key})
			continue
		}
		if entry.AgeRange != "" {
			fact.AgeRange = entry.AgeRange
		}
		if entry.SideEffects != nil {
			fact.SideEffects = append([]string(nil), entry.SideEffects...)
		}
		b.facts[key] = fact
	}
	return b
}

// Load builds the base from the static tables and the document at path.
// It never fails: document problems are logged and the static data is kept.
func Load(path string, log logger.Logger) *Base {
	return LoadTables(StaticTables(), path, log)
}

// LoadTables is Load over caller supplied tables.
func LoadTables(t Tables, path string, log logger.Logger) *Base {
	if strings.TrimSpace(path) == "" {
		log.Info("no knowledge document configured, using static data", nil)
		return New(t)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("knowledge document not found, using static data", map[string]interface{}{"path": path})
		} else {
			log.WithError(apperrors.NewKnowledgeLoadFailedError(path, err)).
				Error("failed to read knowledge document, using static data", map[string]interface{}{"path": path})
		}
		return New(t)
	}

	doc, report, err := ParseDocument(data)
	if err != nil {
		log.WithError(apperrors.NewKnowledgeLoadFailedError(path, err)).
			Error("failed to parse knowledge document, using static data", map[string]interface{}{"path": path})
		return New(t)
	}

	for _, issue := range report.Invalid {
		log.WithError(apperrors.NewKnowledgeEntryInvalidError(issue.Key, issue.Problems)).
			Warn("skipping invalid knowledge entry", map[string]interface{}{"vaccine": issue.Key})
	}

	b := NewWithDocument(t, doc, log)
	log.Info("knowledge base loaded", map[string]interface{}{
		"path":     path,
		"vaccines": len(b.names),
		"accepted": len(report.Accepted),
		"invalid":  len(report.Invalid),
	})
	return b
}

// Fact returns the fact stored under the exact canonical name.
func (b *Base) Fact(name string) (VaccineFact, bool) {
	f, ok := b.facts[name]
	if ok {
		f.SideEffects = append([]string(nil), f.SideEffects...)
	}
	return f, ok
}

// Has reports whether name is a canonical vaccine name.
func (b *Base) Has(name string) bool {
	_, ok := b.facts[name]
	return ok
}

// Names returns canonical vaccine names in table order.
func (b *Base) Names() []string {
	return append([]string(nil), b.names...)
}

// Facts returns every fact in table order.
func (b *Base) Facts() []VaccineFact {
	out := make([]VaccineFact, 0, len(b.names))
	for _, n := range b.names {
		f, _ := b.Fact(n)
		out = append(out, f)
	}
	return out
}

// Suggestions returns up to n canonical names in table order.
func (b *Base) Suggestions(n int) []string {
	if n > len(b.names) {
		n = len(b.names)
	}
	return append([]string(nil), b.names[:n]...)
}

func (b *Base) SynonymGroups() []SynonymGroup { return copyGroups(b.synonyms) }

func (b *Base) AgeAliases() map[string]string {
	out := make(map[string]string, len(b.ageAliases))
	for k, v := range b.ageAliases {
		out[k] = v
	}
	return out
}

func (b *Base) Schedule() []ScheduleEntry { return copySchedule(b.schedule) }

func (b *Base) Symptoms() []SymptomEntry { return copySymptoms(b.symptoms) }

func (b *Base) Diseases() []Advisory { return append([]Advisory(nil), b.diseases...) }

func (b *Base) Conditions() []Advisory { return append([]Advisory(nil), b.conditions...) }

// DefaultAgeRange is the document's "default" age range, "" when absent.
func (b *Base) DefaultAgeRange() string { return b.defaultAgeRange }

func copyGroups(in []SynonymGroup) []SynonymGroup {
	out := make([]SynonymGroup, len(in))
	for i, g := range in {
		out[i] = SynonymGroup{Phrase: g.Phrase, Vaccines: append([]string(nil), g.Vaccines...)}
	}
	return out
}

func copySchedule(in []ScheduleEntry) []ScheduleEntry {
	out := make([]ScheduleEntry, len(in))
	for i, e := range in {
		out[i] = ScheduleEntry{Age: e.Age, Vaccines: append([]string(nil), e.Vaccines...)}
	}
	return out
}

func copySymptoms(in []SymptomEntry) []SymptomEntry {
	out := make([]SymptomEntry, len(in))
	for i, e := range in {
		out[i] = SymptomEntry{Symptom: e.Symptom, Vaccines: append([]string(nil), e.Vaccines...)}
	}
	return out
}
