package hostabi

import "sync"

// Table is an in-memory Handles implementation. Hosts that keep their
// strings on the Go side, and tests, use it in place of the loader's object
// table. Handles are non-negative and are not reused until the counter
// wraps, after which live handles are skipped.
type Table struct {
	mu     sync.Mutex
	next   Handle
	values map[Handle]string
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{values: make(map[Handle]string)}
}

// Put stores s and returns its handle, as the host does before a call.
func (t *Table) Put(s string) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	for {
		if _, live := t.values[t.next]; !live {
			break
		}
		t.advance()
	}
	h := t.next
	t.advance()
	t.values[h] = s
	return h
}

// advance moves next forward, wrapping past the reserved negative handles.
func (t *Table) advance() {
	t.next++
	if t.next.IsSentinel() {
		t.next = 0
	}
}

// ReadString returns and forgets the string behind h. An unknown handle
// reads as the empty string.
func (t *Table) ReadString(h Handle) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.values[h]
	delete(t.values, h)
	return s
}

// WriteValue stores s and returns its handle.
func (t *Table) WriteValue(s string) Handle {
	return t.Put(s)
}

// Len reports how many handles are still live.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.values)
}
