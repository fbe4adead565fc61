package actions

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"vaccine-assistant/internal/models"
)

const (
	ActionGetVaccinePrice             = "action_get_vaccine_price"
	ActionGetVaccineInfo              = "action_get_vaccine_info"
	ActionGetVaccinationAge           = "action_get_vaccination_age"
	ActionGetSideEffects              = "action_get_side_effects"
	ActionGetSideEffectsBySymptom     = "action_get_side_effects_by_symptom"
	ActionGetVaccinationScheduleByAge = "action_get_vaccination_schedule_by_age"
	ActionShowPreVaccination          = "action_show_pre_vaccination_preparation"
	ActionShowPostVaccination         = "action_show_post_vaccination_monitoring"
	ActionGetVaccinationLocation      = "action_get_vaccination_location"
	ActionGetVaccineForDisease        = "action_get_vaccine_for_disease"
	ActionGetVaccineForCondition      = "action_get_vaccine_for_condition"
	ActionDefaultFallback             = "action_default_fallback"
	ActionBotChallenge                = "action_bot_challenge"
	ActionEvaluateChatbot             = "action_evaluate_chatbot"
	ActionOutOfScope                  = "action_out_of_scope"
	ActionAnalyzeOutOfScope           = "action_analyze_out_of_scope"
	ActionAnnotateQuery               = "action_annotate_query"
	ActionResetAllSlots               = "action_reset_all_slots"
	ActionValidatePriceForm           = "validate_price_form"
)

// Intents referenced by follow-up button payloads.
const (
	IntentAskVaccineInfo              = "ask_vaccine_info"
	IntentAskVaccinationLocation      = "ask_vaccination_location"
	IntentAskSideEffects              = "ask_side_effects"
	IntentAskVaccinationAge           = "ask_vaccination_age"
	IntentAskPostVaccination          = "ask_post_vaccination_monitoring"
	IntentAskVaccinationScheduleByAge = "ask_vaccination_schedule_by_age"
)

const (
	// SourceURL is cited under every factual answer.
	SourceURL = "https://moh.gov.vn"
	// SkipValue is what users answer to skip the symptom question.
	SkipValue = "bỏ qua"
	// SuggestionLimit bounds alternative lists offered on a miss.
	SuggestionLimit = 5
)

// Turn is the input of one action run: the session slots and the latest
// user message.
type Turn struct {
	SenderID string         `json:"sender_id"`
	Slots    models.Slots   `json:"slots"`
	Message  models.Message `json:"latest_message"`
}

// Result carries the responses to show and the slot events to apply.
type Result struct {
	Events    []models.Event    `json:"events"`
	Responses []models.Response `json:"responses"`
}

func NewResult() *Result {
	return &Result{Events: []models.Event{}, Responses: []models.Response{}}
}

// Say appends a text response.
func (r *Result) Say(text string, buttons ...models.Button) {
	r.Responses = append(r.Responses, models.Response{Text: text, Buttons: buttons})
}

// Utter appends a canned template response.
func (r *Result) Utter(template string) {
	r.Responses = append(r.Responses, Template(template))
}

// Set appends a slot event; an empty value clears the slot.
func (r *Result) Set(slot, value string) {
	r.Events = append(r.Events, models.SlotSet(slot, value))
}

func (r *Result) Emit(e models.Event) {
	r.Events = append(r.Events, e)
}

func (r *Result) normalize() *Result {
	if r.Events == nil {
		r.Events = []models.Event{}
	}
	if r.Responses == nil {
		r.Responses = []models.Response{}
	}
	return r
}

// Handler is one named action.
type Handler interface {
	Name() string
	Run(ctx context.Context, turn *Turn) (*Result, error)
}

// Payload builds a button payload of the form /intent{"slot": "value"}.
func Payload(intent, slot, value string) string {
	quoted, err := json.Marshal(value)
	if err != nil {
		quoted = []byte(`""`)
	}
	return fmt.Sprintf(`/%s{"%s": %s}`, intent, slot, quoted)
}

// FormatPrice groups thousands with commas.
func FormatPrice(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

func buttonsFor(values []string, payload func(string) string) []models.Button {
	buttons := make([]models.Button, 0, len(values))
	for _, v := range values {
		buttons = append(buttons, models.Button{Title: v, Payload: payload(v)})
	}
	return buttons
}

func isSkip(value string) bool {
	return strings.ToLower(strings.TrimSpace(value)) == SkipValue
}
