// Package hostabi encodes the text input bridge for a host that can only
// pass opaque integer handles across the wasm boundary, such as a
// miniquad-style JS loader.
//
// Strings arrive and leave as Handles; the Handles interface turns them into
// Go strings and back. Results are signalled with reserved negative handles:
// NoValue when nothing is pending and CancelledValue when the user dismissed
// the prompt. Every non-negative handle carries a submitted string, including
// the empty one.
package hostabi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vcrobe/nojs-textinput/console"
	"github.com/vcrobe/nojs-textinput/textinput"
)

// Handle is an opaque reference to a host-side value.
type Handle int32

const (
	// NoValue is returned by TryRecvTextInput when no result is pending.
	NoValue Handle = -1
	// CancelledValue is returned by TryRecvTextInput when the pending result
	// is a cancelled prompt.
	CancelledValue Handle = -2
)

// IsSentinel reports whether h is one of the reserved result handles.
func (h Handle) IsSentinel() bool {
	return h < 0
}

// Export names the host binds at load time.
const (
	PresentExport = "present_singleline_text_input"
	TryRecvExport = "try_recv_text_input"
)

// Handles is the host's string marshaling capability. ReadString consumes
// the handle; WriteValue allocates a new one the host takes ownership of.
type Handles interface {
	ReadString(h Handle) string
	WriteValue(s string) Handle
}

// Exports are the two entry points a host calls, backed by a Bridge.
type Exports struct {
	Bridge  *textinput.Bridge
	Handles Handles
}

// NewExports returns Exports for b marshaling through h.
func NewExports(b *textinput.Bridge, h Handles) *Exports {
	return &Exports{Bridge: b, Handles: h}
}

// PresentSingleLineTextInput consumes the title and value handles and
// presents the prompt. A refused present is logged; the host has no
// channel to receive it.
func (e *Exports) PresentSingleLineTextInput(title, value Handle) {
	titleString := e.Handles.ReadString(title)
	valueString := e.Handles.ReadString(value)
	if err := e.Bridge.Present(titleString, valueString); err != nil {
		console.Warn("[hostabi] present_singleline_text_input:", err.Error())
	}
}

// TryRecvTextInput drains the bridge. It returns NoValue when nothing is
// pending, CancelledValue for a cancelled prompt, and otherwise a fresh
// handle to the submitted text.
func (e *Exports) TryRecvTextInput() Handle {
	res, ok := e.Bridge.TryReceive()
	switch {
	case !ok:
		return NoValue
	case res.Cancelled:
		return CancelledValue
	default:
		return e.Handles.WriteValue(res.Text)
	}
}

// Descriptor identifies the plugin to the host's loader.
type Descriptor struct {
	Name    string
	Version string
}

// DefaultDescriptor is the name and version the loader knows this plugin by.
var DefaultDescriptor = Descriptor{Name: "rollgui2", Version: "0.1.0"}

var errInvalidDescriptor = errors.New("invalid plugin descriptor")

// Validate checks that the name is set and the version is MAJOR.MINOR.PATCH.
func (d Descriptor) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: empty name", errInvalidDescriptor)
	}
	parts := strings.Split(d.Version, ".")
	if len(parts) != 3 {
		return fmt.Errorf("%w: version %q is not MAJOR.MINOR.PATCH", errInvalidDescriptor, d.Version)
	}
	for _, p := range parts {
		if _, err := strconv.ParseUint(p, 10, 32); err != nil {
			return fmt.Errorf("%w: version %q: %v", errInvalidDescriptor, d.Version, err)
		}
	}
	return nil
}

// IsInvalidDescriptor reports whether err came from Descriptor.Validate.
func IsInvalidDescriptor(err error) bool {
	return errors.Is(err, errInvalidDescriptor)
}
