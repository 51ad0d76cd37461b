package textinput

import "fmt"

// Request ties a presented prompt to the named form field it fills, so a
// host can route the answer once it arrives.
type Request struct {
	bridge *Bridge
	name   string
	value  string
}

// NewRequest presents title on b and returns a Request for the field name.
// value is shown as the prompt's initial text.
func NewRequest(b *Bridge, title, name, value string) (*Request, error) {
	if err := b.Present(title, value); err != nil {
		return nil, fmt.Errorf("text input request %q: %w", name, err)
	}
	return &Request{bridge: b, name: name, value: value}, nil
}

// TryRecv polls the bridge for the answer to this request.
func (r *Request) TryRecv() (Result, bool) {
	return r.bridge.TryReceive()
}

// Name returns the field name the request was created for.
func (r *Request) Name() string {
	return r.name
}

// InitialValue returns the text the prompt was pre-filled with.
func (r *Request) InitialValue() string {
	return r.value
}
