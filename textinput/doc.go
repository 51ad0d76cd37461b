// Package textinput implements a one-slot request/response handshake for
// single line text entry.
//
// A host calls Present, which blocks on a Prompter (in the browser, the
// native window.prompt modal) and stores the outcome. Later, typically on a
// following frame, the host calls TryReceive, which drains that outcome
// without ever blocking:
//
//	b := textinput.New(textinput.PromptFunc(dialogs.Prompt), nil)
//	b.Present("Character name", "Arthur")
//	...
//	if res, ok := b.TryReceive(); ok && !res.Cancelled {
//	    name = res.Text
//	}
//
// The bridge holds at most one pending result. With the default Overwrite
// policy a second Present before a poll silently replaces the first outcome;
// RejectWhilePending refuses it with ErrPending instead.
//
// This package has no build tags and runs in WASM and native test builds alike.
package textinput
