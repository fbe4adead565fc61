package actions

import (
	"context"
	"math"
	"strings"
	"time"

	"vaccine-assistant/internal/models"
)

// DefaultIntent labels messages that carry no intent.
const DefaultIntent = "unknown"

// praise marks an evaluation message as positive.
var praise = []string{"hữu ích", "tốt", "tuyệt vời"}

type fallbackHandler struct{ base }

func newFallbackHandler(deps *Deps) *fallbackHandler {
	return &fallbackHandler{newBase(deps, ActionDefaultFallback)}
}

func (h *fallbackHandler) Run(_ context.Context, _ *Turn) (*Result, error) {
	res := NewResult()
	res.Utter(UtterDefaultFallback)
	res.Emit(models.UserUtteranceReverted())
	return res, nil
}

type botChallengeHandler struct{ base }

func newBotChallengeHandler(deps *Deps) *botChallengeHandler {
	return &botChallengeHandler{newBase(deps, ActionBotChallenge)}
}

func (h *botChallengeHandler) Run(_ context.Context, _ *Turn) (*Result, error) {
	res := NewResult()
	res.Utter(UtterBotChallenge)
	return res, nil
}

type evaluateHandler struct{ base }

func newEvaluateHandler(deps *Deps) *evaluateHandler {
	return &evaluateHandler{newBase(deps, ActionEvaluateChatbot)}
}

func (h *evaluateHandler) Run(_ context.Context, turn *Turn) (*Result, error) {
	text := strings.ToLower(turn.Message.Text)
	res := NewResult()
	for _, p := range praise {
		if strings.Contains(text, p) {
			res.Say("Cảm ơn bạn! Tôi rất vui được giúp đỡ. 😊")
			return res, nil
		}
	}
	res.Say("Xin lỗi nếu tôi chưa đáp ứng mong đợi. Bạn có thể nói rõ hơn để tôi cải thiện không?")
	return res, nil
}

type resetHandler struct{ base }

func newResetHandler(deps *Deps) *resetHandler {
	return &resetHandler{newBase(deps, ActionResetAllSlots)}
}

func (h *resetHandler) Run(_ context.Context, turn *Turn) (*Result, error) {
	h.log.Debug("resetting all slots", map[string]interface{}{"senderId": turn.SenderID})
	res := NewResult()
	res.Emit(models.AllSlotsReset())
	return res, nil
}

type outOfScopeHandler struct{ base }

func newOutOfScopeHandler(deps *Deps) *outOfScopeHandler {
	return &outOfScopeHandler{newBase(deps, ActionOutOfScope)}
}

// Run records the query when it looks domain related; the reply is the
// same whatever the recording outcome.
func (h *outOfScopeHandler) Run(ctx context.Context, turn *Turn) (*Result, error) {
	if h.deps.Recorder != nil {
		outcome := h.deps.Recorder.Record(ctx, entryFromMessage(turn.Message))
		h.log.Debug("out-of-scope query handled", map[string]interface{}{
			"senderId": turn.SenderID,
			"outcome":  string(outcome),
		})
	}

	res := NewResult()
	res.Utter(UtterOutOfScope)
	res.Emit(models.UserUtteranceReverted())
	return res, nil
}

func entryFromMessage(msg models.Message) models.OutOfScopeEntry {
	intent := msg.Intent.Name
	if intent == "" {
		intent = DefaultIntent
	}
	entry := models.OutOfScopeEntry{
		UserInput: msg.Text,
		Intent:    intent,
		Entities:  msg.Entities,
	}
	if msg.Timestamp > 0 {
		sec, frac := math.Modf(msg.Timestamp)
		entry.Timestamp = time.Unix(int64(sec), int64(frac*1e9)).UTC()
	}
	return entry
}

type analyzeHandler struct{ base }

func newAnalyzeHandler(deps *Deps) *analyzeHandler {
	return &analyzeHandler{newBase(deps, ActionAnalyzeOutOfScope)}
}

func (h *analyzeHandler) Run(_ context.Context, turn *Turn) (*Result, error) {
	intent := turn.Message.Intent.Name
	if intent == "" {
		intent = DefaultIntent
	}
	h.log.Info("analyzing out-of-scope query", map[string]interface{}{
		"userInput": turn.Message.Text,
		"intent":    intent,
	})
	return NewResult(), nil
}

type annotateHandler struct{ base }

func newAnnotateHandler(deps *Deps) *annotateHandler {
	return &annotateHandler{newBase(deps, ActionAnnotateQuery)}
}

func (h *annotateHandler) Run(_ context.Context, turn *Turn) (*Result, error) {
	h.log.Info("annotating query", map[string]interface{}{"userInput": turn.Message.Text})
	return NewResult(), nil
}
