// Package plugin registers the text input exports with a miniquad-style
// JavaScript loader (the global miniquad_add_plugin function).
//
// It only does real work in js/wasm builds; elsewhere Register returns
// ErrUnsupported.
package plugin

import "errors"

// LoaderGlobal is the JavaScript function the loader exposes for plugins.
const LoaderGlobal = "miniquad_add_plugin"

var (
	// ErrUnsupported is returned by Register outside js/wasm builds.
	ErrUnsupported = errors.New("plugin: registration requires a js/wasm build")
	// ErrNoLoader is returned when the loader global is missing from the page.
	ErrNoLoader = errors.New("plugin: " + LoaderGlobal + " is not defined")
)
