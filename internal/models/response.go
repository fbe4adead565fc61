package models

// Button is a clickable follow-up; Payload is either plain text or an
// intent payload such as /ask_vaccine_info{"vaccine_name": "Synflorix"}.
type Button struct {
	Title   string `json:"title"`
	Payload string `json:"payload"`
}

// Response is one bot message. Template names the canned response the text
// was rendered from, when any.
type Response struct {
	Text     string   `json:"text,omitempty"`
	Buttons  []Button `json:"buttons,omitempty"`
	Template string   `json:"response,omitempty"`
}
