package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending
// email. Subject/Text/HTML may be given directly, or Template+Data to
// render one of the embedded templates in the worker.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // "kyc_submitted" or "kyc_decision"
	Data     map[string]any `json:"data,omitempty"`
}
