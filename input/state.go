package input

// State tracks held keys and derives Controls from them
// Edge-triggered on key identity: repeated presses of a held key are no-ops
// A control stays active while any key bound to it is held
type State struct {
	table *KeyTable
	held  map[string]Control
}

// NewState creates an empty state over the given key table
func NewState(table *KeyTable) *State {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &State{
		table: table,
		held:  make(map[string]Control),
	}
}

// Press marks key as held, returns false if it was already held or is unbound
func (s *State) Press(key string) bool {
	key = NormalizeKey(key)
	c, ok := s.table.Controls[key]
	if !ok {
		return false
	}
	if _, already := s.held[key]; already {
		return false
	}
	s.held[key] = c
	return true
}

// Release marks key as released, returns false if it was not held
func (s *State) Release(key string) bool {
	key = NormalizeKey(key)
	if _, ok := s.held[key]; !ok {
		return false
	}
	delete(s.held, key)
	return true
}

// Controls returns the current driving input snapshot
func (s *State) Controls() Controls {
	var c Controls
	for _, ctl := range s.held {
		ctl.apply(&c, true)
	}
	return c
}

// Reset releases every key
func (s *State) Reset() {
	clear(s.held)
}
