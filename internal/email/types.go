package email

// Email is one outbound HTML message.
type Email struct {
	From     string
	To       string
	Subject  string
	HTMLBody string
}

// TemplateData is passed to html templates.
type TemplateData map[string]interface{}
