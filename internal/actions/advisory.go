package actions

import (
	"context"
	"fmt"

	"vaccine-assistant/internal/models"
)

type diseaseHandler struct{ base }

func newDiseaseHandler(deps *Deps) *diseaseHandler {
	return &diseaseHandler{newBase(deps, ActionGetVaccineForDisease)}
}

func (h *diseaseHandler) Run(_ context.Context, turn *Turn) (*Result, error) {
	res := NewResult()
	if turn.Slots.Disease == "" {
		h.missingSlot(models.SlotDisease)
		res.Say("Xin lỗi, tôi không nhận diện được bệnh bạn đang hỏi. " +
			"Vui lòng cung cấp tên bệnh cụ thể, ví dụ: viêm gan C.")
		return res, nil
	}

	advice, ok := h.deps.Resolver.DiseaseAdvice(turn.Slots.Disease)
	text := advice.Text
	if !ok {
		text = fmt.Sprintf("Không có thông tin về vaccine cho %s. "+
			"Bạn có thể hỏi về các bệnh khác hoặc tham khảo ý kiến bác sĩ.", advice.Key)
	}
	res.Say(text,
		models.Button{Title: "Hỏi vaccine khác", Payload: "/" + IntentAskVaccineInfo},
		models.Button{Title: "Lịch tiêm", Payload: "/" + IntentAskVaccinationScheduleByAge},
	)
	res.Set(models.SlotDisease, advice.Key)
	return res, nil
}

type conditionHandler struct{ base }

func newConditionHandler(deps *Deps) *conditionHandler {
	return &conditionHandler{newBase(deps, ActionGetVaccineForCondition)}
}

func (h *conditionHandler) Run(_ context.Context, turn *Turn) (*Result, error) {
	res := NewResult()
	if turn.Slots.Condition == "" {
		h.missingSlot(models.SlotCondition)
		res.Say("Xin lỗi, tôi không nhận diện được tình trạng bạn đang hỏi. " +
			"Vui lòng cung cấp tình trạng cụ thể, ví dụ: dị ứng penicillin.")
		return res, nil
	}

	advice, ok := h.deps.Resolver.ConditionAdvice(turn.Slots.Condition)
	text := advice.Text
	if !ok {
		text = fmt.Sprintf("Đối với %s, bạn nên tham khảo ý kiến bác sĩ để chọn vaccine phù hợp. "+
			"Tôi có thể giúp bạn với thông tin vaccine khác!", advice.Key)
	}
	res.Say(text,
		models.Button{Title: "Hỏi vaccine khác", Payload: "/" + IntentAskVaccineInfo},
		models.Button{Title: "Tác dụng phụ", Payload: "/" + IntentAskSideEffects},
	)
	res.Set(models.SlotCondition, advice.Key)
	return res, nil
}
