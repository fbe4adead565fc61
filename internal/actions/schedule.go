package actions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vaccine-assistant/internal/models"
)

// LocationLimit bounds the health centers listed in one answer.
const LocationLimit = 5

var errNoCatalogue = errors.New("catalogue client not configured")

type scheduleHandler struct{ base }

func newScheduleHandler(deps *Deps) *scheduleHandler {
	return &scheduleHandler{newBase(deps, ActionGetVaccinationScheduleByAge)}
}

func (h *scheduleHandler) Run(ctx context.Context, turn *Turn) (*Result, error) {
	res := NewResult()
	raw := turn.Slots.Age
	if raw == "" {
		h.missingSlot(models.SlotAge)
		res.Utter(UtterAskScheduleAge)
		return res, nil
	}

	age, _ := h.deps.Resolver.ResolveAge(raw)
	var vaccines []string
	if entry, ok := h.deps.Resolver.LookupSchedule(raw); ok {
		vaccines = entry.Vaccines
	}

	if len(vaccines) == 0 {
		normalized := h.deps.Resolver.Normalize(raw)
		h.log.Debug("no static schedule, asking the catalogue", map[string]interface{}{"age": normalized})
		vaccines = h.remoteSchedule(ctx, normalized)
	}

	if len(vaccines) > 0 {
		res.Say(fmt.Sprintf("📅 **Lịch tiêm cho %s**:\n"+
			"- Vaccine: %s\n"+
			"- **Lưu ý**: Tham khảo bác sĩ để xác nhận.\n"+
			"- **Nguồn**: %s", age, strings.Join(vaccines, ", "), SourceURL))
	} else {
		ages := h.knownAges()
		res.Say(
			fmt.Sprintf("⚠️ Không tìm thấy lịch tiêm cho độ tuổi '%s'. Vui lòng thử một trong các độ tuổi sau: %s.",
				age, strings.Join(ages, ", ")),
			buttonsFor(ages, func(a string) string {
				return Payload(IntentAskVaccinationScheduleByAge, models.SlotAge, a)
			})...,
		)
	}

	res.Set(models.SlotAge, age)
	return res, nil
}

func (h *scheduleHandler) remoteSchedule(ctx context.Context, age string) []string {
	if h.deps.Catalogue == nil {
		return nil
	}
	schedules, err := h.deps.Catalogue.SchedulesByAge(ctx, age)
	if err != nil {
		h.log.WithError(err).Error("schedule lookup failed", map[string]interface{}{"age": age})
		return nil
	}
	vaccines := make([]string, 0, len(schedules))
	for _, s := range schedules {
		if s.VaccineName != "" {
			vaccines = append(vaccines, s.VaccineName)
		}
	}
	return vaccines
}

func (h *scheduleHandler) knownAges() []string {
	schedule := h.deps.Knowledge.Schedule()
	ages := make([]string, 0, SuggestionLimit)
	for _, e := range schedule {
		if len(ages) == SuggestionLimit {
			break
		}
		ages = append(ages, e.Age)
	}
	return ages
}

type locationHandler struct{ base }

func newLocationHandler(deps *Deps) *locationHandler {
	return &locationHandler{newBase(deps, ActionGetVaccinationLocation)}
}

func (h *locationHandler) Run(ctx context.Context, turn *Turn) (*Result, error) {
	res := NewResult()

	if h.deps.Catalogue == nil {
		h.log.WithError(errNoCatalogue).Error("health center lookup failed", nil)
		res.Say("⚠️ Không thể kết nối đến danh sách địa điểm tiêm. Vui lòng thử lại sau hoặc kiểm tra kết nối mạng.")
		return res, nil
	}

	centers, err := h.deps.Catalogue.HealthCenters(ctx)
	if err != nil {
		h.log.WithError(err).Error("health center lookup failed", nil)
		res.Say("⚠️ Không thể kết nối đến danh sách địa điểm tiêm. Vui lòng thử lại sau hoặc kiểm tra kết nối mạng.")
		return res, nil
	}
	if len(centers) == 0 {
		res.Say("⚠️ Hiện tại không có địa điểm tiêm nào trong hệ thống.")
		return res, nil
	}

	var msg strings.Builder
	vaccine := ""
	if turn.Slots.VaccineName != "" {
		vaccine = " " + turn.Slots.VaccineName
	}
	fmt.Fprintf(&msg, "📍 Dưới đây là các địa điểm tiêm%s bạn có thể tham khảo:\n\n", vaccine)
	for i, c := range centers {
		if i == LocationLimit {
			break
		}
		fmt.Fprintf(&msg, "%d. **%s**\n   - Địa chỉ: %s\n\n", i+1, c.Name, c.Address)
	}
	msg.WriteString("📞 Vui lòng liên hệ trực tiếp các trung tâm để biết tình trạng vaccine hiện tại.")

	res.Say(msg.String())
	return res, nil
}
