package actions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaccine-assistant/internal/models"
)

// ==========================
// Price
// ==========================

func TestPrice_Success(t *testing.T) {
	env := createTestDispatcher(t)

	res := env.run(t, ActionGetVaccinePrice, models.Slots{VaccineName: "Synflorix"})

	require.Len(t, res.Responses, 1)
	r := res.Responses[0]
	assert.Equal(t, "💰 **Giá Synflorix**: 1,045,000 VND\n"+
		"- **Lưu ý**: Giá có thể thay đổi, liên hệ cơ sở y tế để xác nhận.\n"+
		"- **Nguồn**: https://moh.gov.vn", r.Text)
	require.Len(t, r.Buttons, 2)
	assert.Equal(t, models.Button{Title: "Thông tin vaccine", Payload: `/ask_vaccine_info{"vaccine_name": "Synflorix"}`}, r.Buttons[0])
	assert.Equal(t, models.Button{Title: "Địa điểm tiêm", Payload: `/ask_vaccination_location{"vaccine_name": "Synflorix"}`}, r.Buttons[1])
	assert.Equal(t, []models.Event{models.SlotSet(models.SlotVaccineName, "Synflorix")}, res.Events)
}

func TestPrice_ResolvesSynonym(t *testing.T) {
	env := createTestDispatcher(t)

	res := env.run(t, ActionGetVaccinePrice, models.Slots{VaccineName: "vắc xin cúm"})

	assert.True(t, strings.HasPrefix(onlyText(t, res), "💰 **Giá Vaxigrip Tetra**: 350,000 VND"))
	assert.Equal(t, []models.Event{models.SlotSet(models.SlotVaccineName, "Vaxigrip Tetra")}, res.Events)
}

func TestPrice_UnknownVaccineOffersSuggestions(t *testing.T) {
	env := createTestDispatcher(t)

	res := env.run(t, ActionGetVaccinePrice, models.Slots{VaccineName: "zzzz qqqq"})

	assert.Equal(t, "⚠️ Không tìm thấy giá cho 'Zzzz Qqqq'. Vui lòng chọn vaccine khác:", onlyText(t, res))
	assert.Equal(t, firstFive, buttonTitles(res))
	assert.Equal(t, "Hexaxim", res.Responses[0].Buttons[1].Payload)
	assert.Equal(t, []models.Event{models.SlotSet(models.SlotVaccineName, "Zzzz Qqqq")}, res.Events)
}

func TestVaccineActions_MissingSlot(t *testing.T) {
	tests := []struct {
		action   string
		template string
	}{
		{ActionGetVaccinePrice, UtterAskPriceVaccineName},
		{ActionGetVaccineInfo, UtterAskInfoVaccineName},
		{ActionGetVaccinationAge, UtterRequestVaccineName},
		{ActionGetSideEffects, UtterAskSideEffectsVaccineName},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			env := createTestDispatcher(t)
			res := env.run(t, tt.action, models.Slots{Age: "2 tháng"})

			require.Len(t, res.Responses, 1)
			assert.Equal(t, tt.template, res.Responses[0].Template)
			assert.NotEmpty(t, res.Responses[0].Text)
			assert.Empty(t, res.Events)
		})
	}
}

// ==========================
// Info
// ==========================

func TestInfo(t *testing.T) {
	env := createTestDispatcher(t)

	res := env.run(t, ActionGetVaccineInfo, models.Slots{VaccineName: "synflorix"})

	require.Len(t, res.Responses, 1)
	assert.Equal(t, "💉 **Synflorix**:\n"+
		"- **Mô tả**: Phòng các bệnh do phế cầu khuẩn.\n"+
		"- **Nguồn gốc**: Bỉ\n"+
		"- **Giá tham khảo**: 1,045,000 VND\n"+
		"- **Lưu ý**: Vui lòng tham khảo bác sĩ hoặc https://moh.gov.vn", res.Responses[0].Text)
	assert.Equal(t, []string{"Tác dụng phụ", "Độ tuổi tiêm"}, buttonTitles(res))
	assert.Equal(t, `/ask_vaccination_age{"vaccine_name": "Synflorix"}`, res.Responses[0].Buttons[1].Payload)
}

func TestInfo_Unknown(t *testing.T) {
	env := createTestDispatcher(t)

	res := env.run(t, ActionGetVaccineInfo, models.Slots{VaccineName: "zzzz qqqq"})

	assert.Equal(t, "⚠️ Không tìm thấy thông tin cho 'Zzzz Qqqq'. Vui lòng chọn vaccine khác:", onlyText(t, res))
	assert.Equal(t, firstFive, buttonTitles(res))
}

// ==========================
// Age
// ==========================

func TestAge(t *testing.T) {
	tests := []struct {
		name     string
		document string
		slots    models.Slots
		want     string
		events   []models.Event
	}{
		{
			name:     "document age range",
			document: testDocument,
			slots:    models.Slots{VaccineName: "Synflorix"},
			want: "🎂 **Độ tuổi tiêm Synflorix**: Từ 6 tuần đến 5 tuổi\n" +
				"- **Lưu ý**: Tham khảo bác sĩ để xác nhận.\n" +
				"- **Nguồn**: https://moh.gov.vn",
			events: []models.Event{
				models.SlotSet(models.SlotVaccineName, "Synflorix"),
				models.SlotSet(models.SlotAge, ""),
			},
		},
		{
			name:     "age disclaimer",
			document: testDocument,
			slots:    models.Slots{VaccineName: "Gardasil A", Age: "người lớn"},
			want: "🎂 **Độ tuổi tiêm Gardasil A**: Từ 9 đến 26 tuổi\n" +
				"- **Lưu ý**: Tham khảo bác sĩ để xác nhận.\n" +
				"- **Nguồn**: https://moh.gov.vn\n" +
				"- **Đối với người lớn**: Vui lòng kiểm tra với bác sĩ để đảm bảo phù hợp.",
			events: []models.Event{
				models.SlotSet(models.SlotVaccineName, "Gardasil A"),
				models.SlotSet(models.SlotAge, "người lớn"),
			},
		},
		{
			name:     "default bucket",
			document: testDocument,
			slots:    models.Slots{VaccineName: "Hexaxim"},
			want: "🎂 **Độ tuổi tiêm Hexaxim**: Tùy loại vaccine, vui lòng tham khảo bác sĩ\n" +
				"- **Lưu ý**: Tham khảo bác sĩ để xác nhận.\n" +
				"- **Nguồn**: https://moh.gov.vn",
			events: []models.Event{
				models.SlotSet(models.SlotVaccineName, "Hexaxim"),
				models.SlotSet(models.SlotAge, ""),
			},
		},
		{
			name:     "no document",
			document: "",
			slots:    models.Slots{VaccineName: "Hexaxim"},
			want:     "⚠️ Không tìm thấy thông tin độ tuổi cho 'Hexaxim'. Vui lòng chọn vaccine khác:",
			events: []models.Event{
				models.SlotSet(models.SlotVaccineName, "Hexaxim"),
				models.SlotSet(models.SlotAge, ""),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := createTestEnv(t, createTestKnowledge(t, tt.document), Options{})
			res := env.run(t, ActionGetVaccinationAge, tt.slots)

			assert.Equal(t, tt.want, onlyText(t, res))
			assert.Equal(t, tt.events, res.Events)
		})
	}
}

// ==========================
// Side effects
// ==========================

func TestSideEffects(t *testing.T) {
	tests := []struct {
		name    string
		slots   models.Slots
		want    string
		buttons []string
	}{
		{
			name:  "list side effects",
			slots: models.Slots{VaccineName: "Gardasil A"},
			want: "⚠️ **Phản ứng phụ của Gardasil A**: Đau tại chỗ tiêm, Đau cơ, Nhức đầu, Sốt nhẹ\n" +
				"- **Hướng dẫn**: Nếu triệu chứng kéo dài, liên hệ bác sĩ.\n" +
				"- **Nguồn**: https://moh.gov.vn",
			buttons: []string{"Theo dõi sau tiêm"},
		},
		{
			name:  "with symptom",
			slots: models.Slots{VaccineName: "Synflorix", Symptom: "sốt"},
			want: "⚠️ **Phản ứng phụ của Synflorix**: Sốt, sưng, quấy khóc, chán ăn\n" +
				"- **Hướng dẫn**: Nếu triệu chứng kéo dài, liên hệ bác sĩ.\n" +
				"- **Nguồn**: https://moh.gov.vn\n" +
				"- Triệu chứng 'sốt': Nếu nghiêm trọng, liên hệ bác sĩ.",
			buttons: []string{"Theo dõi sau tiêm"},
		},
		{
			name:  "skipped symptom",
			slots: models.Slots{VaccineName: "Synflorix", Symptom: "Bỏ qua"},
			want: "⚠️ **Phản ứng phụ của Synflorix**: Sốt, sưng, quấy khóc, chán ăn\n" +
				"- **Hướng dẫn**: Nếu triệu chứng kéo dài, liên hệ bác sĩ.\n" +
				"- **Nguồn**: https://moh.gov.vn",
			buttons: []string{"Theo dõi sau tiêm"},
		},
		{
			name:    "no side effects known",
			slots:   models.Slots{VaccineName: "Hexaxim"},
			want:    "⚠️ Không tìm thấy tác dụng phụ cho 'Hexaxim'. Vui lòng chọn vaccine khác:",
			buttons: firstFive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := createTestDispatcher(t)
			res := env.run(t, ActionGetSideEffects, tt.slots)

			assert.Equal(t, tt.want, onlyText(t, res))
			assert.Equal(t, tt.buttons, buttonTitles(res))
			require.Len(t, res.Events, 2)
			assert.Equal(t, models.SlotSet(models.SlotSymptom, tt.slots.Symptom), res.Events[1])
		})
	}
}

// ==========================
// validate_price_form
// ==========================

func TestValidatePriceForm(t *testing.T) {
	tests := []struct {
		name      string
		slot      string
		wantSlot  string
		responses int
	}{
		{"known vaccine", "synflorix", "Synflorix", 0},
		{"synonym", "vắc xin cúm", "Vaxigrip Tetra", 0},
		{"unknown vaccine", "zzzz qqqq", "", 1},
		{"empty slot", "", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := createTestDispatcher(t)
			res := env.run(t, ActionValidatePriceForm, models.Slots{VaccineName: tt.slot})

			assert.Len(t, res.Responses, tt.responses)
			assert.Equal(t, []models.Event{models.SlotSet(models.SlotVaccineName, tt.wantSlot)}, res.Events)
		})
	}
}

func TestValidatePriceForm_UnknownMessage(t *testing.T) {
	env := createTestDispatcher(t)
	res := env.run(t, ActionValidatePriceForm, models.Slots{VaccineName: "zzzz qqqq"})

	assert.Equal(t, "⚠️ Không tìm thấy vaccine 'Zzzz Qqqq'. Vui lòng chọn vaccine khác:", onlyText(t, res))
	assert.Equal(t, firstFive, buttonTitles(res))
}
