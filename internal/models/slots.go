package models

import "strings"

// Slot names carried across turns of one conversation.
const (
	SlotVaccineName = "vaccine_name"
	SlotAge         = "age"
	SlotSymptom     = "symptom"
	SlotDisease     = "disease"
	SlotCondition   = "condition"
)

// SlotNames lists every slot in a stable order.
var SlotNames = []string{SlotVaccineName, SlotAge, SlotSymptom, SlotDisease, SlotCondition}

// Slots is the per-session conversation state. An empty string means unset.
type Slots struct {
	VaccineName string `json:"vaccine_name,omitempty"`
	Age         string `json:"age,omitempty"`
	Symptom     string `json:"symptom,omitempty"`
	Disease     string `json:"disease,omitempty"`
	Condition   string `json:"condition,omitempty"`
}

// IsSlot reports whether name is a known slot.
func IsSlot(name string) bool {
	for _, n := range SlotNames {
		if n == name {
			return true
		}
	}
	return false
}

// Get returns the value of the named slot, "" when unset or unknown.
func (s Slots) Get(name string) string {
	switch name {
	case SlotVaccineName:
		return s.VaccineName
	case SlotAge:
		return s.Age
	case SlotSymptom:
		return s.Symptom
	case SlotDisease:
		return s.Disease
	case SlotCondition:
		return s.Condition
	}
	return ""
}

// Set assigns the named slot and reports whether the name was known.
func (s *Slots) Set(name, value string) bool {
	value = strings.TrimSpace(value)
	switch name {
	case SlotVaccineName:
		s.VaccineName = value
	case SlotAge:
		s.Age = value
	case SlotSymptom:
		s.Symptom = value
	case SlotDisease:
		s.Disease = value
	case SlotCondition:
		s.Condition = value
	default:
		return false
	}
	return true
}

// Reset clears every slot.
func (s *Slots) Reset() {
	*s = Slots{}
}

// IsEmpty reports whether no slot is set.
func (s Slots) IsEmpty() bool {
	return s == Slots{}
}

// Apply folds slot events into s. Rewind events carry no slot changes.
func (s *Slots) Apply(events []Event) {
	for _, e := range events {
		switch e.Event {
		case EventSlot:
			value := ""
			if e.Value != nil {
				value = *e.Value
			}
			s.Set(e.Name, value)
		case EventResetSlots:
			s.Reset()
		}
	}
}

// ToMap renders the slots the way a tracker carries them: unset slots are nil.
func (s Slots) ToMap() map[string]interface{} {
	out := make(map[string]interface{}, len(SlotNames))
	for _, name := range SlotNames {
		if v := s.Get(name); v != "" {
			out[name] = v
		} else {
			out[name] = nil
		}
	}
	return out
}

// SlotsFromMap reads known string slots from a tracker slot map; other
// value types are ignored.
func SlotsFromMap(m map[string]interface{}) Slots {
	var s Slots
	for _, name := range SlotNames {
		if v, ok := m[name].(string); ok {
			s.Set(name, v)
		}
	}
	return s
}
