package input

import (
	"time"

	"github.com/lixenwraith/vi-racer/parameter"
)

// HoldTracker emulates key-up events for backends that only report presses
// The first press holds a key for InitialHold to bridge the OS auto-repeat delay,
// each repeat then refreshes the hold for RepeatHold
type HoldTracker struct {
	state       *State
	InitialHold time.Duration
	RepeatHold  time.Duration

	deadlines map[string]time.Time
}

// NewHoldTracker wraps state with the default hold timings
func NewHoldTracker(state *State) *HoldTracker {
	return &HoldTracker{
		state:       state,
		InitialHold: parameter.InputInitialHold,
		RepeatHold:  parameter.InputRepeatHold,
		deadlines:   make(map[string]time.Time),
	}
}

// Press records a press event at now, returns true on the initial press edge
func (h *HoldTracker) Press(key string, now time.Time) bool {
	key = NormalizeKey(key)
	if h.state.Press(key) {
		h.deadlines[key] = now.Add(h.InitialHold)
		return true
	}
	if _, ok := h.deadlines[key]; ok {
		// Auto-repeat: extend, never shorten an initial hold still pending
		next := now.Add(h.RepeatHold)
		if next.After(h.deadlines[key]) {
			h.deadlines[key] = next
		}
	}
	return false
}

// Expire releases every key whose hold ended at or before now
// Returns the number of keys released
func (h *HoldTracker) Expire(now time.Time) int {
	n := 0
	for key, deadline := range h.deadlines {
		if !now.Before(deadline) {
			delete(h.deadlines, key)
			h.state.Release(key)
			n++
		}
	}
	return n
}

// Reset releases all keys
func (h *HoldTracker) Reset() {
	clear(h.deadlines)
	h.state.Reset()
}

// State returns the wrapped state
func (h *HoldTracker) State() *State { return h.state }
