package resolver

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"vaccine-assistant/internal/knowledge"
	"vaccine-assistant/internal/nlp"
)

// MatchKind tells which resolution step produced a vaccine name.
type MatchKind string

const (
	MatchSynonym   MatchKind = "synonym"
	MatchCanonical MatchKind = "canonical"
	MatchFact      MatchKind = "fact"
	MatchFuzzy     MatchKind = "fuzzy"
	MatchFallback  MatchKind = "fallback"
	MatchNone      MatchKind = "none"
)

// Match is the detailed outcome of a vaccine resolution.
type Match struct {
	Input      string    `json:"input"`
	Normalized string    `json:"normalized"`
	Name       string    `json:"name"`
	Kind       MatchKind `json:"kind"`
	Score      int       `json:"score,omitempty"`
	Candidate  string    `json:"candidate,omitempty"`
}

// Resolver maps noisy text to canonical knowledge base entities. It never
// mutates the base and is safe for concurrent use.
type Resolver struct {
	kb         *knowledge.Base
	normalizer *nlp.Normalizer
	cutoff     int

	groups         []knowledge.SynonymGroup
	groupByPhrase  map[string]int
	canonicalNames map[string]string
	factNames      map[string]string
	choices        []string
	choiceGroup    map[string]int

	schedule   map[string]knowledge.ScheduleEntry
	symptoms   map[string]knowledge.SymptomEntry
	diseases   map[string]knowledge.Advisory
	conditions map[string]knowledge.Advisory
}

// New builds a resolver over kb with the default fuzzy cutoff.
func New(kb *knowledge.Base) *Resolver {
	return NewWithCutoff(kb, nlp.DefaultCutoff)
}

func NewWithCutoff(kb *knowledge.Base, cutoff int) *Resolver {
	names := kb.Names()
	r := &Resolver{
		kb: kb,
		normalizer: nlp.NewNormalizer(nlp.Options{
			AgeAliases: kb.AgeAliases(),
			Protected:  names,
		}),
		cutoff:         cutoff,
		groups:         kb.SynonymGroups(),
		groupByPhrase:  make(map[string]int),
		canonicalNames: make(map[string]string),
		factNames:      make(map[string]string),
		choiceGroup:    make(map[string]int),
		schedule:       make(map[string]knowledge.ScheduleEntry),
		symptoms:       make(map[string]knowledge.SymptomEntry),
		diseases:       make(map[string]knowledge.Advisory),
		conditions:     make(map[string]knowledge.Advisory),
	}

	for i, g := range r.groups {
		if len(g.Vaccines) == 0 {
			continue
		}
		putFirst(r.groupByPhrase, r.normalizer.Normalize(g.Phrase), i)
		for _, v := range g.Vaccines {
			r.indexName(r.canonicalNames, v)
		}
	}
	for _, n := range names {
		r.indexName(r.factNames, n)
		r.choices = append(r.choices, n)
	}
	for i, g := range r.groups {
		if len(g.Vaccines) == 0 {
			continue
		}
		if _, dup := r.choiceGroup[g.Phrase]; !dup {
			r.choiceGroup[g.Phrase] = i
			r.choices = append(r.choices, g.Phrase)
		}
	}

	for _, e := range kb.Schedule() {
		putFirst(r.schedule, r.normalizer.Normalize(e.Age), e)
	}
	for _, e := range kb.Symptoms() {
		putFirst(r.symptoms, r.normalizer.Normalize(e.Symptom), e)
	}
	for _, a := range kb.Diseases() {
		putFirst(r.diseases, r.normalizer.Normalize(a.Key), a)
	}
	for _, a := range kb.Conditions() {
		putFirst(r.conditions, r.normalizer.Normalize(a.Key), a)
	}
	return r
}

// indexName registers name under its lowercase and normalized forms.
func (r *Resolver) indexName(index map[string]string, name string) {
	putFirst(index, strings.ToLower(name), name)
	putFirst(index, r.normalizer.Normalize(name), name)
}

func putFirst[V any](m map[string]V, key string, value V) {
	if key == "" {
		return
	}
	if _, ok := m[key]; !ok {
		m[key] = value
	}
}

// Normalizer exposes the normalizer built for this knowledge base.
func (r *Resolver) Normalizer() *nlp.Normalizer {
	return r.normalizer
}

// Normalize is shorthand for Normalizer().Normalize.
func (r *Resolver) Normalize(text string) string {
	return r.normalizer.Normalize(text)
}

// ResolveVaccine returns the canonical vaccine name for raw. For non-empty
// input the result is never empty.
func (r *Resolver) ResolveVaccine(raw string) string {
	return r.MatchVaccine(raw).Name
}

// MatchVaccine runs the resolution steps in order: synonym phrase, canonical
// name inside a group, fact key, fuzzy match, title-cased fallback.
func (r *Resolver) MatchVaccine(raw string) Match {
	m := Match{Input: raw, Kind: MatchNone}
	if strings.TrimSpace(raw) == "" {
		return m
	}

	normalized := r.normalizer.Normalize(raw)
	m.Normalized = normalized

	if i, ok := r.groupByPhrase[normalized]; ok {
		m.Name, m.Kind = r.groups[i].Vaccines[0], MatchSynonym
		return m
	}
	if name, ok := r.canonicalNames[normalized]; ok {
		m.Name, m.Kind = name, MatchCanonical
		return m
	}
	if name, ok := r.factNames[normalized]; ok {
		m.Name, m.Kind = name, MatchFact
		return m
	}

	if candidate, score, ok := nlp.ExtractOne(normalized, r.choices, r.cutoff); ok {
		m.Kind, m.Score, m.Candidate = MatchFuzzy, score, candidate
		if i, isGroup := r.choiceGroup[candidate]; isGroup && !r.kb.Has(candidate) {
			m.Name = r.groups[i].Vaccines[0]
		} else {
			m.Name = candidate
		}
		return m
	}

	m.Name, m.Kind = r.titleCase(normalized), MatchFallback
	if m.Name == "" {
		m.Name = strings.TrimSpace(raw)
	}
	return m
}

// titleCase builds a Caser per call; casers are not safe for concurrent use.
func (r *Resolver) titleCase(normalized string) string {
	return cases.Title(language.Vietnamese).String(strings.Join(strings.Fields(nlp.Unsegment(normalized)), " "))
}

// ResolveAge returns the canonical schedule bracket for raw when one
// matches, otherwise the normalized input in display form.
func (r *Resolver) ResolveAge(raw string) (string, bool) {
	normalized := r.normalizer.Normalize(raw)
	if e, ok := r.schedule[normalized]; ok {
		return e.Age, true
	}
	return nlp.Unsegment(normalized), false
}

// LookupSchedule returns the schedule entry of the bracket raw names.
func (r *Resolver) LookupSchedule(raw string) (knowledge.ScheduleEntry, bool) {
	e, ok := r.schedule[r.normalizer.Normalize(raw)]
	return e, ok
}

// LookupSymptom returns the symptom entry raw names. When nothing matches
// the entry carries the display form of the input and no vaccines.
func (r *Resolver) LookupSymptom(raw string) (knowledge.SymptomEntry, bool) {
	normalized := r.normalizer.Normalize(raw)
	if e, ok := r.symptoms[normalized]; ok {
		return e, true
	}
	return knowledge.SymptomEntry{Symptom: nlp.Unsegment(normalized)}, false
}

// DiseaseAdvice returns the advisory for the disease raw names.
func (r *Resolver) DiseaseAdvice(raw string) (knowledge.Advisory, bool) {
	return lookupAdvisory(r.diseases, r.normalizer.Normalize(raw))
}

// ConditionAdvice returns the advisory for the special condition raw names.
func (r *Resolver) ConditionAdvice(raw string) (knowledge.Advisory, bool) {
	return lookupAdvisory(r.conditions, r.normalizer.Normalize(raw))
}

func lookupAdvisory(index map[string]knowledge.Advisory, normalized string) (knowledge.Advisory, bool) {
	if a, ok := index[normalized]; ok {
		return a, true
	}
	return knowledge.Advisory{Key: nlp.Unsegment(normalized)}, false
}
