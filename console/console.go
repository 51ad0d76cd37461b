//go:build js && wasm

package console

import (
	"syscall/js"
)

func call(method string, args ...any) {
	console := js.Global().Get("console")
	if !console.Truthy() {
		return
	}
	console.Call(method, args...)
}

// Debug writes to console.debug, hidden by default in most devtools.
func Debug(args ...any) {
	call("debug", args...)
}

func Log(args ...any) {
	call("log", args...)
}

func Warn(args ...any) {
	call("warn", args...)
}

func Error(args ...any) {
	call("error", args...)
}
