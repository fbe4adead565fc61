package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePayload(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		ok       bool
		intent   string
		entities map[string]string
	}{
		{"intent only", "/ask_vaccination_location", true, "ask_vaccination_location", nil},
		{"with slot", `/ask_vaccine_info{"vaccine_name": "Synflorix"}`, true, "ask_vaccine_info", map[string]string{"vaccine_name": "Synflorix"}},
		{"two slots", `/ask_vaccine_info{"vaccine_name": "Rotarix", "age": "2 tháng"}`, true, "ask_vaccine_info", map[string]string{"vaccine_name": "Rotarix", "age": "2 tháng"}},
		{"null value dropped", `/ask_side_effects{"vaccine_name": null}`, true, "ask_side_effects", nil},
		{"malformed entities keep intent", `/ask_vaccine_price{"vaccine_name": }`, true, "ask_vaccine_price", nil},
		{"surrounding spaces", "  /bot_challenge  ", true, "bot_challenge", nil},
		{"plain text", "giá vaccine synflorix", false, "", nil},
		{"slash inside text", "2/3 liều", false, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := ParsePayload(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.intent, p.Intent)

			got := map[string]string{}
			for _, e := range p.Entities {
				got[e.Entity] = e.ValueString()
			}
			if tt.entities == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.entities, got)
			}
		})
	}
}

func TestParsePayload_SortedEntities(t *testing.T) {
	p, ok := ParsePayload(`/ask_vaccine_info{"vaccine_name": "Rotarix", "age": "2 tháng", "disease": "cúm"}`)
	assert.True(t, ok)

	var names []string
	for _, e := range p.Entities {
		names = append(names, e.Entity)
		assert.Equal(t, "payload", e.Extractor)
	}
	assert.Equal(t, []string{"age", "disease", "vaccine_name"}, names)
}
