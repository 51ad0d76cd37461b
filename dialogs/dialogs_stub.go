//go:build !(js && wasm)

package dialogs

// Alert is a no-op in native builds.
func Alert(msg string) {}

// Prompt has no modal to show in native builds; it submits initialValue
// unchanged.
func Prompt(title, initialValue string) (text string, ok bool) {
	return initialValue, true
}
