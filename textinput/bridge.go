package textinput

import (
	"errors"
	"sync"

	"github.com/vcrobe/nojs-textinput/console"
)

// ErrPending is returned by Present under RejectWhilePending when an
// unconsumed result is still waiting to be polled.
var ErrPending = errors.New("textinput: a previous result has not been received yet")

// Policy selects what Present does while a result is still pending.
type Policy int

const (
	// Overwrite replaces the unconsumed result with the new outcome.
	Overwrite Policy = iota
	// RejectWhilePending refuses to prompt and returns ErrPending.
	RejectWhilePending
)

func (p Policy) String() string {
	switch p {
	case Overwrite:
		return "overwrite"
	case RejectWhilePending:
		return "reject-while-pending"
	default:
		return "unknown"
	}
}

// Config holds optional Bridge settings. A nil *Config means defaults.
type Config struct {
	Policy Policy
}

// Result is the outcome of one prompt. A cancelled prompt has Cancelled set
// and an empty Text; an empty submission has neither.
type Result struct {
	Text      string
	Cancelled bool
}

// Bridge mediates one-shot text entry between a host and a blocking
// Prompter. The zero value is not usable; create one with New.
type Bridge struct {
	prompter Prompter
	policy   Policy

	mu      sync.Mutex
	pending *Result // nil while empty
}

// New returns an empty Bridge that prompts through p.
func New(p Prompter, cfg *Config) *Bridge {
	if p == nil {
		p = Echo
	}
	b := &Bridge{prompter: p}
	if cfg != nil {
		b.policy = cfg.Policy
	}
	return b
}

// Present prompts the user with title and initialValue and stores the
// outcome for the next TryReceive. It blocks for as long as the prompter
// does. The only error is ErrPending under RejectWhilePending.
func (b *Bridge) Present(title, initialValue string) error {
	if b.policy == RejectWhilePending && b.Pending() {
		console.Warn("[textinput] present refused, result still pending")
		return ErrPending
	}

	console.Debug("[textinput] present single line text input:", title)
	// Not under the lock: TryReceive must return while the prompt is open.
	text, ok := b.prompter.Prompt(title, initialValue)
	res := Result{Text: text, Cancelled: !ok}
	if res.Cancelled {
		res.Text = ""
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pending != nil {
		if b.policy == RejectWhilePending {
			// Another Present stored a result while this prompt was open.
			return ErrPending
		}
		console.Debug("[textinput] discarding unreceived result")
	}
	b.pending = &res
	console.Debug("[textinput] text input value given, cancelled:", res.Cancelled)
	return nil
}

// TryReceive returns the pending result and clears the slot. ok is false
// when nothing is pending. It never blocks on the prompter.
func (b *Bridge) TryReceive() (res Result, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pending == nil {
		return Result{}, false
	}
	res = *b.pending
	b.pending = nil
	return res, true
}

// Pending reports whether a result is waiting, without draining it.
func (b *Bridge) Pending() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pending != nil
}
