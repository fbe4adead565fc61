package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlots_ApplyEvents(t *testing.T) {
	s := Slots{Age: "2 tháng"}

	s.Apply([]Event{
		SlotSet(SlotVaccineName, "Synflorix"),
		SlotSet(SlotSymptom, "sốt"),
		UserUtteranceReverted(),
	})
	assert.Equal(t, Slots{VaccineName: "Synflorix", Age: "2 tháng", Symptom: "sốt"}, s)

	s.Apply([]Event{SlotSet(SlotAge, "")})
	assert.Equal(t, "", s.Age)

	s.Apply([]Event{AllSlotsReset()})
	assert.True(t, s.IsEmpty())
}

func TestSlots_MapRoundTrip(t *testing.T) {
	s := SlotsFromMap(map[string]interface{}{
		"vaccine_name": "Prevenar 13",
		"age":          nil,
		"symptom":      42.0,
		"requested":    "ignored",
	})
	assert.Equal(t, Slots{VaccineName: "Prevenar 13"}, s)

	m := s.ToMap()
	assert.Len(t, m, len(SlotNames))
	assert.Equal(t, "Prevenar 13", m["vaccine_name"])
	assert.Nil(t, m["condition"])
}

func TestSlots_SetUnknown(t *testing.T) {
	var s Slots
	assert.False(t, s.Set("requested_slot", "x"))
	assert.True(t, IsSlot("disease"))
	assert.False(t, IsSlot("requested_slot"))
}

func TestEvent_MarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{"slot set", SlotSet("vaccine_name", "BCG"), `{"event":"slot","name":"vaccine_name","value":"BCG"}`},
		{"slot cleared", SlotSet("age", ""), `{"event":"slot","name":"age","value":null}`},
		{"reset", AllSlotsReset(), `{"event":"reset_slots"}`},
		{"rewind", UserUtteranceReverted(), `{"event":"rewind"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.event)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestEntity_ValueString(t *testing.T) {
	assert.Equal(t, "Hexaxim", Entity{Value: "Hexaxim"}.ValueString())
	assert.Equal(t, "12", Entity{Value: 12.0}.ValueString())
	assert.Equal(t, "", Entity{}.ValueString())
}

func TestFactBundle(t *testing.T) {
	assert.True(t, FactBundle{}.IsEmpty())
	assert.Equal(t, Unknown, FactBundle{Price: 10}.DescriptionOrUnknown())
	assert.Equal(t, Unknown, FactBundle{}.OriginOrUnknown())
	assert.Equal(t, "Bỉ", FactBundle{Origin: "Bỉ"}.OriginOrUnknown())
}

func TestOutOfScopeEntry_Strings(t *testing.T) {
	e := OutOfScopeEntry{
		UserInput: "vaccine zika",
		Entities:  []Entity{{Entity: "disease", Value: "zika"}},
		Timestamp: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, `[{"entity":"disease","value":"zika"}]`, e.EntitiesString())
	assert.Equal(t, "2024-05-01T08:00:00Z", e.TimestampString())
	assert.Equal(t, "[]", OutOfScopeEntry{}.EntitiesString())
	assert.Equal(t, "", OutOfScopeEntry{}.TimestampString())
}
