package actions

import (
	"context"
	"fmt"
	"strings"

	"vaccine-assistant/internal/models"
)

type symptomHandler struct{ base }

func newSymptomHandler(deps *Deps) *symptomHandler {
	return &symptomHandler{newBase(deps, ActionGetSideEffectsBySymptom)}
}

func (h *symptomHandler) Run(_ context.Context, turn *Turn) (*Result, error) {
	res := NewResult()
	raw := turn.Slots.Symptom
	if raw == "" || isSkip(raw) {
		h.missingSlot(models.SlotSymptom)
		res.Utter(UtterRequestSymptom)
		return res, nil
	}

	entry, _ := h.deps.Resolver.LookupSymptom(raw)
	if len(entry.Vaccines) > 0 {
		res.Say(fmt.Sprintf("🚨 **Triệu chứng '%s'** có thể liên quan đến: %s.\n"+
			"- **Hướng dẫn**: Theo dõi 24-48 giờ, liên hệ bác sĩ nếu nghiêm trọng.\n"+
			"- **Nguồn**: %s", entry.Symptom, strings.Join(entry.Vaccines, ", "), SourceURL))
	} else {
		res.Say(fmt.Sprintf("⚠️ Không tìm thấy vaccine liên quan đến triệu chứng '%s'. Vui lòng kiểm tra lại.", entry.Symptom))
	}

	res.Set(models.SlotSymptom, entry.Symptom)
	return res, nil
}

type preVaccinationHandler struct{ base }

func newPreVaccinationHandler(deps *Deps) *preVaccinationHandler {
	return &preVaccinationHandler{newBase(deps, ActionShowPreVaccination)}
}

func (h *preVaccinationHandler) Run(_ context.Context, turn *Turn) (*Result, error) {
	var msg strings.Builder
	msg.WriteString("Trước khi tiêm, hãy đảm bảo trẻ khỏe mạnh, không sốt, và đã ăn uống đầy đủ. " +
		"Tham khảo bác sĩ nếu trẻ có bệnh nền.")
	if v := turn.Slots.VaccineName; v != "" {
		fmt.Fprintf(&msg, "\n- **Vaccine %s**: Kiểm tra lịch sử tiêm chủng để đảm bảo đúng liều.", v)
	}
	if a := turn.Slots.Age; a != "" {
		fmt.Fprintf(&msg, "\n- **Độ tuổi %s**: Đảm bảo trẻ phù hợp với vaccine theo độ tuổi.", a)
	}

	res := NewResult()
	res.Say(msg.String())
	return res, nil
}

type postVaccinationHandler struct{ base }

func newPostVaccinationHandler(deps *Deps) *postVaccinationHandler {
	return &postVaccinationHandler{newBase(deps, ActionShowPostVaccination)}
}

func (h *postVaccinationHandler) Run(_ context.Context, turn *Turn) (*Result, error) {
	var msg strings.Builder
	msg.WriteString("Sau tiêm, theo dõi trẻ trong 24-48 giờ. Ghi nhận các triệu chứng như sốt, sưng, hoặc quấy khóc. " +
		"Liên hệ bác sĩ nếu bất thường.")
	if v := turn.Slots.VaccineName; v != "" {
		fmt.Fprintf(&msg, "\n- **Vaccine %s**: Theo dõi các phản ứng phụ đặc trưng của vaccine.", v)
	}
	if s := turn.Slots.Symptom; s != "" && !isSkip(s) {
		fmt.Fprintf(&msg, "\n- **Triệu chứng %s**: Nếu kéo dài hoặc nghiêm trọng, liên hệ bác sĩ ngay.", s)
	}

	res := NewResult()
	res.Say(msg.String())
	return res, nil
}
