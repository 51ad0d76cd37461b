//go:build !wasm

package hostabi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-textinput/textinput"
)

func newExports(p textinput.PromptFunc, cfg *textinput.Config) (*Exports, *Table) {
	table := NewTable()
	return NewExports(textinput.New(p, cfg), table), table
}

func TestExports_NothingPending(t *testing.T) {
	e, _ := newExports(func(_, _ string) (string, bool) {
		t.Fatal("polling must not prompt")
		return "", false
	}, nil)

	assert.Equal(t, NoValue, e.TryRecvTextInput())
}

func TestExports_RoundTrip(t *testing.T) {
	// Arrange
	var gotTitle, gotValue string
	e, table := newExports(func(title, value string) (string, bool) {
		gotTitle, gotValue = title, value
		return "hello", true
	}, nil)

	// Act
	e.PresentSingleLineTextInput(table.Put("T"), table.Put("V"))
	h := e.TryRecvTextInput()

	// Assert
	assert.Equal(t, "T", gotTitle)
	assert.Equal(t, "V", gotValue)
	require.False(t, h.IsSentinel())
	assert.Equal(t, "hello", table.ReadString(h))
	assert.Equal(t, 0, table.Len(), "input handles must be consumed")
	assert.Equal(t, NoValue, e.TryRecvTextInput())
}

func TestExports_EmptyAndCancelledAreDistinct(t *testing.T) {
	answers := []struct {
		text string
		ok   bool
	}{{"", true}, {"", false}}
	e, table := newExports(func(_, _ string) (string, bool) {
		a := answers[0]
		answers = answers[1:]
		return a.text, a.ok
	}, nil)

	e.PresentSingleLineTextInput(table.Put("T"), table.Put(""))
	empty := e.TryRecvTextInput()
	e.PresentSingleLineTextInput(table.Put("T"), table.Put(""))
	cancelled := e.TryRecvTextInput()

	require.False(t, empty.IsSentinel())
	assert.Equal(t, "", table.ReadString(empty))
	assert.Equal(t, CancelledValue, cancelled)
	assert.NotEqual(t, NoValue, cancelled)
}

func TestExports_OverwriteLosesFirst(t *testing.T) {
	next := []string{"a", "b"}
	e, table := newExports(func(_, _ string) (string, bool) {
		s := next[0]
		next = next[1:]
		return s, true
	}, nil)

	e.PresentSingleLineTextInput(table.Put("T"), table.Put(""))
	e.PresentSingleLineTextInput(table.Put("T"), table.Put(""))

	assert.Equal(t, "b", table.ReadString(e.TryRecvTextInput()))
	assert.Equal(t, NoValue, e.TryRecvTextInput())
}

func TestExports_RefusedPresentStillConsumesHandles(t *testing.T) {
	calls := 0
	e, table := newExports(func(_, _ string) (string, bool) {
		calls++
		return "first", true
	}, &textinput.Config{Policy: textinput.RejectWhilePending})

	e.PresentSingleLineTextInput(table.Put("T"), table.Put(""))
	e.PresentSingleLineTextInput(table.Put("T"), table.Put(""))

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, "first", table.ReadString(e.TryRecvTextInput()))
}

func TestDescriptor_Validate(t *testing.T) {
	tests := []struct {
		name    string
		d       Descriptor
		wantErr bool
	}{
		{"default", DefaultDescriptor, false},
		{"empty name", Descriptor{Name: " ", Version: "0.1.0"}, true},
		{"two part version", Descriptor{Name: "x", Version: "1.0"}, true},
		{"non numeric", Descriptor{Name: "x", Version: "1.0.beta"}, true},
		{"empty version", Descriptor{Name: "x"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.d.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsInvalidDescriptor(err))
		})
	}
}

func TestTable_UnknownHandleReadsEmpty(t *testing.T) {
	table := NewTable()

	assert.Equal(t, "", table.ReadString(Handle(99)))
}

func TestTable_CounterWrapSkipsSentinelsAndLiveHandles(t *testing.T) {
	// Arrange: the counter is one step from overflowing, handle 0 is live
	table := NewTable()
	live := table.Put("still held")
	require.Equal(t, Handle(0), live)
	table.next = math.MaxInt32

	// Act
	last := table.Put("last")
	wrapped := table.Put("wrapped")

	// Assert
	assert.Equal(t, Handle(math.MaxInt32), last)
	assert.False(t, wrapped.IsSentinel())
	assert.Equal(t, Handle(1), wrapped, "live handle 0 must be skipped")
	assert.Equal(t, "still held", table.ReadString(live))
	assert.Equal(t, "wrapped", table.ReadString(wrapped))
}
