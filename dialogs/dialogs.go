//go:build js && wasm

package dialogs

import (
	"syscall/js"
)

func Alert(msg string) {
	js.Global().Call("alert", msg)
}

// Prompt shows the browser's modal prompt pre-filled with initialValue and
// blocks until the user answers. ok is false when the user cancelled, which
// window.prompt reports as null.
func Prompt(title, initialValue string) (text string, ok bool) {
	result := js.Global().Call("prompt", title, initialValue)
	if result.IsNull() || result.IsUndefined() {
		return "", false
	}
	return result.String(), true
}
