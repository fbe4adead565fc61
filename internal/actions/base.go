package actions

import (
	apperrors "vaccine-assistant/internal/common/errors"
	"vaccine-assistant/internal/common/logger"
	"vaccine-assistant/internal/models"
	"vaccine-assistant/internal/resolver"
)

type base struct {
	name string
	deps *Deps
	log  logger.Logger
}

func newBase(deps *Deps, name string) base {
	return base{
		name: name,
		deps: deps,
		log:  deps.Logger.WithFields(map[string]interface{}{"action": name}),
	}
}

func (b base) Name() string { return b.name }

func (b base) missingSlot(slot string) {
	b.log.WithError(apperrors.NewMissingSlotError(slot)).Debug("required slot not set", nil)
}

// resolveVaccine returns the canonical name for raw; unresolved names are
// kept as their best-effort label.
func (b base) resolveVaccine(raw string) string {
	m := b.deps.Resolver.MatchVaccine(raw)
	if m.Kind == resolver.MatchFallback {
		b.log.WithError(apperrors.NewEntityUnresolvedError(models.SlotVaccineName, raw)).
			Debug("vaccine name not resolved", map[string]interface{}{"label": m.Name})
	}
	return m.Name
}

func (b base) suggestions() []models.Button {
	return buttonsFor(b.deps.Knowledge.Suggestions(SuggestionLimit), func(v string) string { return v })
}
