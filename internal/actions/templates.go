package actions

import "vaccine-assistant/internal/models"

const (
	UtterAskPriceVaccineName       = "utter_ask_price_form_vaccine_name"
	UtterAskInfoVaccineName        = "utter_ask_vaccine_form_vaccine_name"
	UtterRequestVaccineName        = "utter_request_vaccine_name"
	UtterAskSideEffectsVaccineName = "utter_ask_side_effects_form_vaccine_name"
	UtterRequestSymptom            = "utter_request_symptom"
	UtterAskScheduleAge            = "utter_ask_schedule_form_age"
	UtterDefaultFallback           = "utter_default_fallback"
	UtterBotChallenge              = "utter_bot_challenge"
	UtterOutOfScope                = "utter_out_of_scope"
	UtterActionFailed              = "utter_action_failed"
)

var templates = map[string]string{
	UtterAskPriceVaccineName:       "Bạn muốn hỏi giá của vaccine nào?",
	UtterAskInfoVaccineName:        "Bạn muốn tìm hiểu thông tin về vaccine nào?",
	UtterRequestVaccineName:        "Vui lòng cho biết tên vaccine bạn muốn hỏi.",
	UtterAskSideEffectsVaccineName: "Bạn muốn biết tác dụng phụ của vaccine nào?",
	UtterRequestSymptom:            "Bạn hoặc bé đang gặp triệu chứng gì sau khi tiêm? Ví dụ: sốt, sưng, quấy khóc.",
	UtterAskScheduleAge:            "Bạn muốn xem lịch tiêm cho độ tuổi nào? Ví dụ: trẻ sơ sinh, 2 tháng, người lớn.",
	UtterDefaultFallback:           "Xin lỗi, tôi chưa hiểu ý bạn. Bạn có thể nói rõ hơn được không?",
	UtterBotChallenge:              "Tôi là trợ lý ảo, giúp bạn tra cứu thông tin về vaccine và lịch tiêm chủng. 🤖",
	UtterOutOfScope:                "Xin lỗi, câu hỏi này nằm ngoài phạm vi hỗ trợ của tôi. Tôi đã ghi nhận để cải thiện trong thời gian tới.",
	UtterActionFailed:              "⚠️ Xin lỗi, hệ thống đang gặp sự cố khi xử lý yêu cầu của bạn. Vui lòng thử lại sau.",
}

// Template renders a canned response and keeps its template name.
func Template(name string) models.Response {
	return models.Response{Text: templates[name], Template: name}
}

// Templates lists the canned template names.
func Templates() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	return names
}
