//go:build js && wasm

package plugin

import (
	"fmt"
	"syscall/js"

	"github.com/vcrobe/nojs-textinput/console"
	"github.com/vcrobe/nojs-textinput/hostabi"
)

// Compile-time assertion to ensure JSHandles implements hostabi.Handles.
var _ hostabi.Handles = JSHandles{}

// JSHandles marshals strings through the loader's object table
// (consume_js_object and js_object).
type JSHandles struct{}

func (JSHandles) ReadString(h hostabi.Handle) string {
	v := js.Global().Call("consume_js_object", int(h))
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

func (JSHandles) WriteValue(s string) hostabi.Handle {
	return hostabi.Handle(js.Global().Call("js_object", s).Int())
}

// Register adds the text input plugin to the miniquad loader. The loader
// later calls register_plugin with its import object, and this binds the
// two exports on importObject.env. Call release once the host has been torn
// down to free the underlying js.Funcs.
func Register(exports *hostabi.Exports, d hostabi.Descriptor) (release func(), err error) {
	if err = d.Validate(); err != nil {
		return nil, fmt.Errorf("register plugin: %w", err)
	}

	addPlugin := js.Global().Get(LoaderGlobal)
	if addPlugin.Type() != js.TypeFunction {
		return nil, ErrNoLoader
	}

	present := js.FuncOf(func(this js.Value, args []js.Value) (ret any) {
		defer recoverExport(hostabi.PresentExport)
		if len(args) < 2 {
			console.Error("[plugin]", hostabi.PresentExport, "called with", len(args), "arguments")
			return nil
		}
		exports.PresentSingleLineTextInput(handleOf(args[0]), handleOf(args[1]))
		return nil
	})

	tryRecv := js.FuncOf(func(this js.Value, args []js.Value) (ret any) {
		ret = int(hostabi.NoValue)
		defer recoverExport(hostabi.TryRecvExport)
		return int(exports.TryRecvTextInput())
	})

	registerPlugin := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 || !args[0].Truthy() {
			console.Error("[plugin] register_plugin called without an import object")
			return nil
		}
		env := args[0].Get("env")
		if !env.Truthy() {
			env = js.Global().Get("Object").New()
			args[0].Set("env", env)
		}
		env.Set(hostabi.PresentExport, present)
		env.Set(hostabi.TryRecvExport, tryRecv)
		console.Debug("[plugin] bound", hostabi.PresentExport, "and", hostabi.TryRecvExport)
		return nil
	})

	onInit := js.FuncOf(func(this js.Value, args []js.Value) any {
		return nil
	})

	addPlugin.Invoke(map[string]any{
		"register_plugin": registerPlugin,
		"on_init":         onInit,
		"version":         d.Version,
		"name":            d.Name,
	})
	console.Log("[plugin] registered", d.Name, d.Version)

	return func() {
		present.Release()
		tryRecv.Release()
		registerPlugin.Release()
		onInit.Release()
	}, nil
}

func handleOf(v js.Value) hostabi.Handle {
	if v.Type() != js.TypeNumber {
		return hostabi.NoValue
	}
	return hostabi.Handle(v.Int())
}

// recoverExport keeps a panic from unwinding into the loader, which has no
// way to report it back to the host.
func recoverExport(name string) {
	if rec := recover(); rec != nil {
		console.Error("[plugin]", name, "panic:", fmt.Sprint(rec))
	}
}
