package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Machine turns terminal key events into intents and driving controls
// Safe for concurrent use: the event loop writes, the tick goroutine reads Controls
type Machine struct {
	mu    sync.Mutex
	table *KeyTable
	hold  *HoldTracker
}

// NewMachine creates a machine over the key table, nil uses DefaultKeyTable
func NewMachine(table *KeyTable) *Machine {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Machine{
		table: table,
		hold:  NewHoldTracker(NewState(table)),
	}
}

// HandleKey parses one tcell key event received at now
func (m *Machine) HandleKey(ev *tcell.EventKey, now time.Time) Intent {
	return m.HandleName(KeyName(ev), now)
}

// HandleName parses a normalized key name, used directly by tests and scripted input
func (m *Machine) HandleName(key string, now time.Time) Intent {
	m.mu.Lock()
	defer m.mu.Unlock()

	intent := m.table.Lookup(key)
	if intent.Type == IntentDrive {
		m.hold.Press(intent.Key, now)
	}
	return intent
}

// Controls expires stale holds at now and returns the current driving input
func (m *Machine) Controls(now time.Time) Controls {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hold.Expire(now)
	return m.hold.State().Controls()
}

// Reset releases all held keys
func (m *Machine) Reset() {
	m.mu.Lock()
	m.hold.Reset()
	m.mu.Unlock()
}

// SetHoldTimings overrides the press-hold emulation windows
func (m *Machine) SetHoldTimings(initial, repeat time.Duration) {
	m.mu.Lock()
	m.hold.InitialHold = initial
	m.hold.RepeatHold = repeat
	m.mu.Unlock()
}

// SetTable swaps the key table, releasing every held key
func (m *Machine) SetTable(table *KeyTable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h := NewHoldTracker(NewState(table))
	h.InitialHold = m.hold.InitialHold
	h.RepeatHold = m.hold.RepeatHold
	m.table = table
	m.hold = h
}
