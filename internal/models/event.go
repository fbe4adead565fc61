package models

import "encoding/json"

const (
	EventSlot       = "slot"
	EventResetSlots = "reset_slots"
	EventRewind     = "rewind"
)

// Event is a conversation mutation returned by an action.
type Event struct {
	Event string  `json:"event"`
	Name  string  `json:"name,omitempty"`
	Value *string `json:"value,omitempty"`
}

// MarshalJSON always emits "value" for slot events so that clearing a slot
// serializes as null.
func (e Event) MarshalJSON() ([]byte, error) {
	if e.Event != EventSlot {
		return json.Marshal(struct {
			Event string `json:"event"`
		}{e.Event})
	}
	return json.Marshal(struct {
		Event string  `json:"event"`
		Name  string  `json:"name"`
		Value *string `json:"value"`
	}{e.Event, e.Name, e.Value})
}

// SlotSet sets name to value; an empty value clears the slot.
func SlotSet(name, value string) Event {
	e := Event{Event: EventSlot, Name: name}
	if value != "" {
		v := value
		e.Value = &v
	}
	return e
}

// AllSlotsReset clears every slot.
func AllSlotsReset() Event {
	return Event{Event: EventResetSlots}
}

// UserUtteranceReverted drops the last user message from the dialogue history.
func UserUtteranceReverted() Event {
	return Event{Event: EventRewind}
}
