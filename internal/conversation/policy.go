package conversation

import (
	"strings"

	"vaccine-assistant/internal/actions"
	"vaccine-assistant/internal/models"
	"vaccine-assistant/internal/resolver"
	"vaccine-assistant/pkg/catalog"
)

const (
	IntentInform     = "inform"
	IntentOutOfScope = "out_of_scope"
	IntentFallback   = "nlu_fallback"
)

// Policy turns a user message into an intent and picks the action the
// catalog routes that intent to.
type Policy struct {
	catalog  *catalog.ActionCatalog
	resolver *resolver.Resolver
}

func NewPolicy(cat *catalog.ActionCatalog, res *resolver.Resolver) *Policy {
	return &Policy{catalog: cat, resolver: res}
}

// Classify builds the message of a turn. An explicit intent wins, then a
// button payload, then bare text naming a known vaccine (inform). Anything
// else is out of scope.
func (p *Policy) Classify(in Input) models.Message {
	msg := models.Message{Text: in.Text, Entities: append([]models.Entity(nil), in.Entities...)}

	if in.Intent != "" {
		msg.Intent = models.Intent{Name: in.Intent, Confidence: 1}
		return msg
	}

	if payload, ok := ParsePayload(in.Text); ok {
		msg.Intent = models.Intent{Name: payload.Intent, Confidence: 1}
		msg.Entities = append(msg.Entities, payload.Entities...)
		return msg
	}

	if strings.TrimSpace(in.Text) != "" && p.resolver != nil {
		match := p.resolver.MatchVaccine(in.Text)
		switch match.Kind {
		case resolver.MatchSynonym, resolver.MatchCanonical, resolver.MatchFact:
			msg.Intent = models.Intent{Name: IntentInform, Confidence: 1}
			msg.Entities = append(msg.Entities, models.Entity{
				Entity:    models.SlotVaccineName,
				Value:     match.Name,
				Extractor: "resolver",
			})
			return msg
		}
	}

	msg.Intent = models.Intent{Name: IntentOutOfScope}
	return msg
}

// Route returns the catalog action for intent. Unknown intents go to the
// default fallback.
func (p *Policy) Route(intent string) catalog.Action {
	if p.catalog != nil {
		if a, ok := p.catalog.ActionForIntent(intent); ok {
			return a
		}
		if a, ok := p.catalog.ActionForIntent(IntentFallback); ok {
			return a
		}
	}
	return catalog.Action{ID: actions.ActionDefaultFallback}
}
