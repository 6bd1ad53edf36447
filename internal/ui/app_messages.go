package ui

// SelectTopicMsg is sent when the user picks a topic (picker Enter, digit keys).
type SelectTopicMsg struct {
	Name string
}

// StepTopicMsg moves the selection by Delta topics, wrapping ("]" / "[").
type StepTopicMsg struct {
	Delta int
}

// ShowTopicPickerMsg opens the topic dropdown (t or SPC t t).
type ShowTopicPickerMsg struct{}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}
