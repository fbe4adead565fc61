package actions

import (
	"context"
	"fmt"
	"strings"

	"vaccine-assistant/internal/models"
)

type priceHandler struct{ base }

func newPriceHandler(deps *Deps) *priceHandler {
	return &priceHandler{newBase(deps, ActionGetVaccinePrice)}
}

func (h *priceHandler) Run(ctx context.Context, turn *Turn) (*Result, error) {
	res := NewResult()
	if turn.Slots.VaccineName == "" {
		h.missingSlot(models.SlotVaccineName)
		res.Utter(UtterAskPriceVaccineName)
		return res, nil
	}

	name := h.resolveVaccine(turn.Slots.VaccineName)
	fact := h.deps.Facts.Fetch(ctx, name)

	if fact.Price > 0 {
		res.Say(
			fmt.Sprintf("💰 **Giá %s**: %s VND\n"+
				"- **Lưu ý**: Giá có thể thay đổi, liên hệ cơ sở y tế để xác nhận.\n"+
				"- **Nguồn**: %s", name, FormatPrice(fact.Price), SourceURL),
			models.Button{Title: "Thông tin vaccine", Payload: Payload(IntentAskVaccineInfo, models.SlotVaccineName, name)},
			models.Button{Title: "Địa điểm tiêm", Payload: Payload(IntentAskVaccinationLocation, models.SlotVaccineName, name)},
		)
	} else {
		res.Say(fmt.Sprintf("⚠️ Không tìm thấy giá cho '%s'. Vui lòng chọn vaccine khác:", name), h.suggestions()...)
	}

	res.Set(models.SlotVaccineName, name)
	return res, nil
}

type infoHandler struct{ base }

func newInfoHandler(deps *Deps) *infoHandler {
	return &infoHandler{newBase(deps, ActionGetVaccineInfo)}
}

func (h *infoHandler) Run(ctx context.Context, turn *Turn) (*Result, error) {
	res := NewResult()
	if turn.Slots.VaccineName == "" {
		h.missingSlot(models.SlotVaccineName)
		res.Utter(UtterAskInfoVaccineName)
		return res, nil
	}

	name := h.resolveVaccine(turn.Slots.VaccineName)
	fact := h.deps.Facts.Fetch(ctx, name)
	description := fact.DescriptionOrUnknown()

	if description != models.Unknown {
		res.Say(
			fmt.Sprintf("💉 **%s**:\n"+
				"- **Mô tả**: %s\n"+
				"- **Nguồn gốc**: %s\n"+
				"- **Giá tham khảo**: %s VND\n"+
				"- **Lưu ý**: Vui lòng tham khảo bác sĩ hoặc %s",
				name, description, fact.OriginOrUnknown(), FormatPrice(fact.Price), SourceURL),
			models.Button{Title: "Tác dụng phụ", Payload: Payload(IntentAskSideEffects, models.SlotVaccineName, name)},
			models.Button{Title: "Độ tuổi tiêm", Payload: Payload(IntentAskVaccinationAge, models.SlotVaccineName, name)},
		)
	} else {
		res.Say(fmt.Sprintf("⚠️ Không tìm thấy thông tin cho '%s'. Vui lòng chọn vaccine khác:", name), h.suggestions()...)
	}

	res.Set(models.SlotVaccineName, name)
	return res, nil
}

type ageHandler struct{ base }

func newAgeHandler(deps *Deps) *ageHandler {
	return &ageHandler{newBase(deps, ActionGetVaccinationAge)}
}

func (h *ageHandler) Run(_ context.Context, turn *Turn) (*Result, error) {
	res := NewResult()
	if turn.Slots.VaccineName == "" {
		h.missingSlot(models.SlotVaccineName)
		res.Utter(UtterRequestVaccineName)
		return res, nil
	}

	name := h.resolveVaccine(turn.Slots.VaccineName)
	age := ""
	if turn.Slots.Age != "" {
		age, _ = h.deps.Resolver.ResolveAge(turn.Slots.Age)
	}

	ageRange := ""
	if fact, ok := h.deps.Knowledge.Fact(name); ok {
		ageRange = fact.AgeRange
	}
	if ageRange == "" || ageRange == models.Unknown {
		ageRange = h.deps.Knowledge.DefaultAgeRange()
	}

	if ageRange != "" && ageRange != models.Unknown {
		var msg strings.Builder
		fmt.Fprintf(&msg, "🎂 **Độ tuổi tiêm %s**: %s\n"+
			"- **Lưu ý**: Tham khảo bác sĩ để xác nhận.\n"+
			"- **Nguồn**: %s", name, ageRange, SourceURL)
		if age != "" {
			fmt.Fprintf(&msg, "\n- **Đối với %s**: Vui lòng kiểm tra với bác sĩ để đảm bảo phù hợp.", age)
		}
		res.Say(msg.String(),
			models.Button{Title: "Thông tin vaccine", Payload: Payload(IntentAskVaccineInfo, models.SlotVaccineName, name)},
			models.Button{Title: "Tác dụng phụ", Payload: Payload(IntentAskSideEffects, models.SlotVaccineName, name)},
		)
	} else {
		res.Say(fmt.Sprintf("⚠️ Không tìm thấy thông tin độ tuổi cho '%s'. Vui lòng chọn vaccine khác:", name), h.suggestions()...)
	}

	res.Set(models.SlotVaccineName, name)
	res.Set(models.SlotAge, age)
	return res, nil
}

type sideEffectsHandler struct{ base }

func newSideEffectsHandler(deps *Deps) *sideEffectsHandler {
	return &sideEffectsHandler{newBase(deps, ActionGetSideEffects)}
}

func (h *sideEffectsHandler) Run(_ context.Context, turn *Turn) (*Result, error) {
	res := NewResult()
	if turn.Slots.VaccineName == "" {
		h.missingSlot(models.SlotVaccineName)
		res.Utter(UtterAskSideEffectsVaccineName)
		return res, nil
	}

	name := h.resolveVaccine(turn.Slots.VaccineName)
	symptom := turn.Slots.Symptom

	var effects []string
	if fact, ok := h.deps.Knowledge.Fact(name); ok {
		effects = fact.SideEffects
	}

	if len(effects) > 0 {
		var msg strings.Builder
		fmt.Fprintf(&msg, "⚠️ **Phản ứng phụ của %s**: %s\n"+
			"- **Hướng dẫn**: Nếu triệu chứng kéo dài, liên hệ bác sĩ.\n"+
			"- **Nguồn**: %s", name, strings.Join(effects, ", "), SourceURL)
		if symptom != "" && !isSkip(symptom) {
			fmt.Fprintf(&msg, "\n- Triệu chứng '%s': Nếu nghiêm trọng, liên hệ bác sĩ.", symptom)
		}
		res.Say(msg.String(),
			models.Button{Title: "Theo dõi sau tiêm", Payload: Payload(IntentAskPostVaccination, models.SlotVaccineName, name)},
		)
	} else {
		res.Say(fmt.Sprintf("⚠️ Không tìm thấy tác dụng phụ cho '%s'. Vui lòng chọn vaccine khác:", name), h.suggestions()...)
	}

	res.Set(models.SlotVaccineName, name)
	res.Set(models.SlotSymptom, symptom)
	return res, nil
}

type validatePriceFormHandler struct{ base }

func newValidatePriceFormHandler(deps *Deps) *validatePriceFormHandler {
	return &validatePriceFormHandler{newBase(deps, ActionValidatePriceForm)}
}

// Run accepts the vaccine_name slot when the name has known facts, and
// clears it otherwise so the form asks again.
func (h *validatePriceFormHandler) Run(ctx context.Context, turn *Turn) (*Result, error) {
	res := NewResult()
	if turn.Slots.VaccineName == "" {
		h.missingSlot(models.SlotVaccineName)
		res.Utter(UtterAskPriceVaccineName)
		res.Set(models.SlotVaccineName, "")
		return res, nil
	}

	name := h.resolveVaccine(turn.Slots.VaccineName)
	fact := h.deps.Facts.Fetch(ctx, name)
	if fact.DescriptionOrUnknown() != models.Unknown || h.deps.Knowledge.Has(name) {
		res.Set(models.SlotVaccineName, name)
		return res, nil
	}

	res.Say(fmt.Sprintf("⚠️ Không tìm thấy vaccine '%s'. Vui lòng chọn vaccine khác:", name), h.suggestions()...)
	res.Set(models.SlotVaccineName, "")
	return res, nil
}
