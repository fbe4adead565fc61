package conversation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"vaccine-assistant/internal/actions"
	"vaccine-assistant/internal/common/logger"
	"vaccine-assistant/internal/common/metrics"
	"vaccine-assistant/internal/models"
	"vaccine-assistant/internal/session"
	"vaccine-assistant/pkg/catalog"
)

var ErrEmptySender = errors.New("sender id is required")

// Dispatcher runs one action against a turn.
type Dispatcher interface {
	Dispatch(ctx context.Context, name string, turn *actions.Turn) (*actions.Result, error)
}

// Input is one user message as received by the session API.
type Input struct {
	Text     string          `json:"text"`
	Intent   string          `json:"intent,omitempty"`
	Entities []models.Entity `json:"entities,omitempty"`
}

// Reply is what one turn produced.
type Reply struct {
	TurnID    string                 `json:"turn_id"`
	Intent    string                 `json:"intent"`
	Action    string                 `json:"action"`
	Responses []models.Response      `json:"responses"`
	Slots     map[string]interface{} `json:"slots"`
}

// Engine drives whole conversations: it keeps slots in the session store,
// classifies each message, routes it to an action and applies the events
// the action returns.
type Engine struct {
	dispatcher Dispatcher
	policy     *Policy
	store      session.Store
	logger     logger.Logger
	newID      func() string
	now        func() time.Time
}

func NewEngine(dispatcher Dispatcher, policy *Policy, store session.Store, log logger.Logger) *Engine {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Engine{
		dispatcher: dispatcher,
		policy:     policy,
		store:      store,
		logger:     log.WithFields(map[string]interface{}{"component": "conversation"}),
		newID:      uuid.NewString,
		now:        time.Now,
	}
}

// Handle runs one turn for senderID. Session store failures are logged and
// the turn continues with empty or unsaved slots.
func (e *Engine) Handle(ctx context.Context, senderID string, in Input) (*Reply, error) {
	if senderID == "" {
		return nil, ErrEmptySender
	}
	metrics.TurnsHandled.WithLabelValues("session").Inc()

	turnID := e.newID()
	log := e.logger.WithFields(map[string]interface{}{"turnId": turnID, "senderId": senderID})

	before := e.loadSlots(ctx, senderID, log)

	msg := e.policy.Classify(in)
	msg.Timestamp = float64(e.now().UnixNano()) / float64(time.Second)

	slots := before
	for _, ent := range msg.Entities {
		if v := ent.ValueString(); v != "" && models.IsSlot(ent.Entity) {
			slots.Set(ent.Entity, v)
		}
	}

	route := e.policy.Route(msg.Intent.Name)
	log.Info("turn routed", map[string]interface{}{
		"intent":   msg.Intent.Name,
		"action":   route.ID,
		"entities": len(msg.Entities),
	})

	turn := &actions.Turn{SenderID: senderID, Slots: slots, Message: msg}
	var responses []models.Response

	if route.Form != "" && e.formApplies(route, slots) {
		result, err := e.dispatch(ctx, route.Form, turn, log)
		if err != nil {
			return nil, err
		}
		responses = append(responses, result.Responses...)
		slots = applyEvents(before, slots, result.Events)
		turn.Slots = slots
		if !e.formApplies(route, slots) {
			e.saveSlots(ctx, senderID, slots, log)
			return e.reply(turnID, msg, route.Form, responses, slots), nil
		}
	}

	actionName := route.ID
	result, err := e.dispatch(ctx, actionName, turn, log)
	if errors.Is(err, actions.ErrActionNotFound) && actionName != actions.ActionDefaultFallback {
		log.Warn("routed action not registered, using fallback", map[string]interface{}{"action": actionName})
		actionName = actions.ActionDefaultFallback
		result, err = e.dispatch(ctx, actionName, turn, log)
	}
	if err != nil {
		return nil, err
	}
	responses = append(responses, result.Responses...)
	slots = applyEvents(before, slots, result.Events)

	e.saveSlots(ctx, senderID, slots, log)
	return e.reply(turnID, msg, actionName, responses, slots), nil
}

// Slots returns the saved slots of senderID.
func (e *Engine) Slots(ctx context.Context, senderID string) (models.Slots, error) {
	if senderID == "" {
		return models.Slots{}, ErrEmptySender
	}
	return e.store.Load(ctx, senderID)
}

// Reset forgets every slot of senderID.
func (e *Engine) Reset(ctx context.Context, senderID string) error {
	if senderID == "" {
		return ErrEmptySender
	}
	return e.store.Delete(ctx, senderID)
}

// formApplies reports whether every slot the form validates is filled.
func (e *Engine) formApplies(route catalog.Action, slots models.Slots) bool {
	if len(route.RequiredSlots) == 0 {
		return false
	}
	for _, name := range route.RequiredSlots {
		if slots.Get(name) == "" {
			return false
		}
	}
	return true
}

func (e *Engine) dispatch(ctx context.Context, name string, turn *actions.Turn, log logger.Logger) (*actions.Result, error) {
	result, err := e.dispatcher.Dispatch(ctx, name, turn)
	if err != nil {
		log.Error("dispatch failed", map[string]interface{}{"action": name, "error": err.Error()})
		return nil, err
	}
	return result, nil
}

func (e *Engine) loadSlots(ctx context.Context, senderID string, log logger.Logger) models.Slots {
	slots, err := e.store.Load(ctx, senderID)
	if err != nil {
		log.Warn("session load failed, starting with empty slots", map[string]interface{}{"error": err.Error()})
		return models.Slots{}
	}
	return slots
}

func (e *Engine) saveSlots(ctx context.Context, senderID string, slots models.Slots, log logger.Logger) {
	if err := e.store.Save(ctx, senderID, slots); err != nil {
		log.Warn("session save failed", map[string]interface{}{"error": err.Error()})
	}
}

func (e *Engine) reply(turnID string, msg models.Message, action string, responses []models.Response, slots models.Slots) *Reply {
	if responses == nil {
		responses = []models.Response{}
	}
	return &Reply{
		TurnID:    turnID,
		Intent:    msg.Intent.Name,
		Action:    action,
		Responses: responses,
		Slots:     slots.ToMap(),
	}
}

// applyEvents folds events into current. A rewind drops the user message of
// the turn, so the slots fall back to before and only later events count.
func applyEvents(before, current models.Slots, events []models.Event) models.Slots {
	start := 0
	for i, ev := range events {
		if ev.Event == models.EventRewind {
			current = before
			start = i + 1
		}
	}
	current.Apply(events[start:])
	return current
}
