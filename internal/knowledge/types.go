package knowledge

// VaccineFact is the merged static and document record of one vaccine.
type VaccineFact struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Origin      string   `json:"origin"`
	Price       int64    `json:"price"`
	AgeRange    string   `json:"age_range,omitempty"`
	SideEffects []string `json:"side_effects,omitempty"`
}

// SynonymGroup maps a colloquial phrase to canonical vaccines. The first
// vaccine is the default resolution of the phrase.
type SynonymGroup struct {
	Phrase   string   `json:"phrase"`
	Vaccines []string `json:"vaccines"`
}

// ScheduleEntry lists the vaccines due at an age bracket.
type ScheduleEntry struct {
	Age      string   `json:"age"`
	Vaccines []string `json:"vaccines"`
}

// SymptomEntry lists vaccines plausibly associated with a symptom.
type SymptomEntry struct {
	Symptom  string   `json:"symptom"`
	Vaccines []string `json:"vaccines"`
}

// Advisory is the guidance text for a disease or a special condition.
type Advisory struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// Tables holds every knowledge table in its canonical order.
type Tables struct {
	Facts      []VaccineFact
	Synonyms   []SynonymGroup
	AgeAliases map[string]string
	Schedule   []ScheduleEntry
	Symptoms   []SymptomEntry
	Diseases   []Advisory
	Conditions []Advisory
}
