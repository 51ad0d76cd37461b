//go:build !(js && wasm)

package plugin

import (
	"fmt"

	"github.com/vcrobe/nojs-textinput/hostabi"
)

// Register validates d and then reports that native builds have no loader
// to register with.
func Register(exports *hostabi.Exports, d hostabi.Descriptor) (release func(), err error) {
	if err = d.Validate(); err != nil {
		return nil, fmt.Errorf("register plugin: %w", err)
	}
	return nil, ErrUnsupported
}
