package actions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaccine-assistant/internal/models"
)

func TestFallback(t *testing.T) {
	env := createTestDispatcher(t)
	res := env.run(t, ActionDefaultFallback, models.Slots{VaccineName: "Hexaxim"})

	require.Len(t, res.Responses, 1)
	assert.Equal(t, UtterDefaultFallback, res.Responses[0].Template)
	assert.Equal(t, []models.Event{models.UserUtteranceReverted()}, res.Events)
}

func TestBotChallenge(t *testing.T) {
	env := createTestDispatcher(t)
	res := env.run(t, ActionBotChallenge, models.Slots{})

	require.Len(t, res.Responses, 1)
	assert.Equal(t, UtterBotChallenge, res.Responses[0].Template)
	assert.Empty(t, res.Events)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Bot rất hữu ích", "Cảm ơn bạn! Tôi rất vui được giúp đỡ. 😊"},
		{"TUYỆT VỜI", "Cảm ơn bạn! Tôi rất vui được giúp đỡ. 😊"},
		{"chưa trả lời đúng", "Xin lỗi nếu tôi chưa đáp ứng mong đợi. Bạn có thể nói rõ hơn để tôi cải thiện không?"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			env := createTestDispatcher(t)
			res, err := env.dispatcher.Dispatch(context.Background(), ActionEvaluateChatbot,
				&Turn{Message: models.Message{Text: tt.text}})
			require.NoError(t, err)
			assert.Equal(t, tt.want, onlyText(t, res))
		})
	}
}

func TestResetAllSlots(t *testing.T) {
	env := createTestDispatcher(t)
	slots := models.Slots{VaccineName: "Hexaxim", Age: "2 tháng", Symptom: "sốt", Disease: "lao", Condition: "hen suyễn"}

	res := env.run(t, ActionResetAllSlots, slots)

	assert.Empty(t, res.Responses)
	assert.Equal(t, []models.Event{models.AllSlotsReset()}, res.Events)

	slots.Apply(res.Events)
	assert.True(t, slots.IsEmpty())
}

func TestOutOfScope(t *testing.T) {
	env := createTestDispatcher(t)

	res, err := env.dispatcher.Dispatch(context.Background(), ActionOutOfScope, &Turn{
		SenderID: "u1",
		Message: models.Message{
			Text:      "vaccine zona có không?",
			Entities:  []models.Entity{{Entity: "vaccine_name", Value: "zona"}},
			Timestamp: 1714550400.5,
		},
	})
	require.NoError(t, err)

	require.Len(t, res.Responses, 1)
	assert.Equal(t, UtterOutOfScope, res.Responses[0].Template)
	assert.Equal(t, []models.Event{models.UserUtteranceReverted()}, res.Events)

	require.Len(t, env.recorder.entries, 1)
	entry := env.recorder.entries[0]
	assert.Equal(t, "vaccine zona có không?", entry.UserInput)
	assert.Equal(t, DefaultIntent, entry.Intent)
	assert.Len(t, entry.Entities, 1)
	assert.Equal(t, time.Date(2024, 5, 1, 8, 0, 0, 500000000, time.UTC), entry.Timestamp)
}

func TestEntryFromMessage_KeepsIntent(t *testing.T) {
	entry := entryFromMessage(models.Message{Text: "x", Intent: models.Intent{Name: "ask_vaccine_for_new_disease"}})
	assert.Equal(t, "ask_vaccine_for_new_disease", entry.Intent)
	assert.True(t, entry.Timestamp.IsZero())
}

func TestLogOnlyActions(t *testing.T) {
	for _, action := range []string{ActionAnalyzeOutOfScope, ActionAnnotateQuery} {
		t.Run(action, func(t *testing.T) {
			env := createTestDispatcher(t)
			res, err := env.dispatcher.Dispatch(context.Background(), action,
				&Turn{Message: models.Message{Text: "vaccine mới"}})
			require.NoError(t, err)
			assert.Empty(t, res.Responses)
			assert.Empty(t, res.Events)
			assert.NotNil(t, res.Events)
		})
	}
}
