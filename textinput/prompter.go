package textinput

// Prompter obtains one line of text from the user. Prompt blocks until the
// user submits or cancels; ok is false on cancellation.
type Prompter interface {
	Prompt(title, initialValue string) (text string, ok bool)
}

// PromptFunc adapts an ordinary function, such as dialogs.Prompt, to the
// Prompter interface.
type PromptFunc func(title, initialValue string) (text string, ok bool)

// Prompt calls f(title, initialValue).
func (f PromptFunc) Prompt(title, initialValue string) (string, bool) {
	return f(title, initialValue)
}

// Echo is a Prompter for environments without a modal: it submits the
// initial value unchanged.
var Echo Prompter = PromptFunc(func(_, initialValue string) (string, bool) {
	return initialValue, true
})
