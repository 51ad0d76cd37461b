//go:build js && wasm

// Command textinput-wasm is the browser side of the text input plugin. Load
// it next to the miniquad loader; it registers the present and poll exports
// and then stays resident to serve them.
package main

import (
	"github.com/vcrobe/nojs-textinput/console"
	"github.com/vcrobe/nojs-textinput/dialogs"
	"github.com/vcrobe/nojs-textinput/hostabi"
	"github.com/vcrobe/nojs-textinput/plugin"
	"github.com/vcrobe/nojs-textinput/textinput"
)

func main() {
	// 1. The bridge owns the single pending result and prompts through the
	// browser's modal.
	bridge := textinput.New(textinput.PromptFunc(dialogs.Prompt), nil)

	// 2. Expose it to the loader using its object table for strings.
	exports := hostabi.NewExports(bridge, plugin.JSHandles{})

	if _, err := plugin.Register(exports, hostabi.DefaultDescriptor); err != nil {
		console.Error("Error registering text input plugin:", err.Error())
		dialogs.Alert("Text input is unavailable: " + err.Error())
		return
	}

	// Keep the Go program running
	select {}
}
