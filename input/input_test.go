package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TestStatePressRelease verifies edge-triggered key tracking
func TestStatePressRelease(t *testing.T) {
	s := NewState(nil)

	if !s.Press("w") {
		t.Fatal("Expected first press to report an edge")
	}
	if s.Press("W") {
		t.Error("Expected repeated press of held key to be a no-op")
	}
	if c := s.Controls(); !c.Gas || c.Brake || c.TurnLeft || c.TurnRight {
		t.Errorf("Expected only gas, got %+v", c)
	}

	if !s.Release("w") {
		t.Error("Expected release of held key to report true")
	}
	if s.Release("w") {
		t.Error("Expected second release to report false")
	}
	if c := s.Controls(); c != (Controls{}) {
		t.Errorf("Expected no controls, got %+v", c)
	}
}

// TestStateMultipleKeysPerControl verifies a control stays active while any bound key is held
func TestStateMultipleKeysPerControl(t *testing.T) {
	s := NewState(nil)
	s.Press("a")
	s.Press("left")
	s.Release("a")

	if !s.Controls().TurnLeft {
		t.Error("Expected turn left to remain active while arrow is held")
	}
	s.Release("left")
	if s.Controls().TurnLeft {
		t.Error("Expected turn left released")
	}
}

// TestStateUnboundKey verifies unbound keys are ignored
func TestStateUnboundKey(t *testing.T) {
	s := NewState(nil)
	if s.Press("x") {
		t.Error("Expected unbound key press to be ignored")
	}
	if s.Release("x") {
		t.Error("Expected unbound key to not be held")
	}
}

// TestKeyTableBind verifies rebinding replaces previous keys
func TestKeyTableBind(t *testing.T) {
	kt := DefaultKeyTable()
	kt.Bind(ControlGas, "i", "Space")

	if got := kt.Lookup("w"); got.Type == IntentDrive {
		t.Errorf("Expected w unbound after rebind, got %+v", got)
	}
	if got := kt.Lookup("space"); got.Type != IntentDrive || got.Control != ControlGas {
		t.Errorf("Expected space to drive gas, got %+v", got)
	}
	if got := kt.KeysFor(ControlGas); len(got) != 2 || got[0] != "i" || got[1] != "space" {
		t.Errorf("Expected sorted gas keys [i space], got %v", got)
	}
	if got := kt.KeysFor(ControlBrake); len(got) != 2 || got[0] != "down" || got[1] != "s" {
		t.Errorf("Expected brake keys [down s], got %v", got)
	}
	if got := kt.Lookup("Escape"); got.Type != IntentQuit {
		t.Errorf("Expected Escape to quit, got %+v", got)
	}
}

// TestParseControl verifies config name mapping
func TestParseControl(t *testing.T) {
	if ParseControl("brake") != ControlBrake {
		t.Error("Expected brake to parse")
	}
	if ParseControl("none") != ControlNone || ParseControl("nitro") != ControlNone {
		t.Error("Expected invalid names to map to ControlNone")
	}
	for _, c := range DrivingControls {
		if ParseControl(c.String()) != c {
			t.Errorf("Expected %s to round-trip", c)
		}
	}
	if ControlRight.String() != "right" {
		t.Errorf("Expected name right, got %s", ControlRight.String())
	}
}

// TestHoldTrackerExpiry verifies press-only backends release after the hold window
func TestHoldTrackerExpiry(t *testing.T) {
	h := NewHoldTracker(NewState(nil))
	h.InitialHold = 500 * time.Millisecond
	h.RepeatHold = 100 * time.Millisecond
	t0 := time.Unix(1000, 0)

	if !h.Press("w", t0) {
		t.Fatal("Expected initial press edge")
	}

	// Still within initial hold
	if n := h.Expire(t0.Add(400 * time.Millisecond)); n != 0 {
		t.Errorf("Expected no release inside initial hold, got %d", n)
	}

	// Repeat before initial hold ends must not shorten it
	h.Press("w", t0.Add(300*time.Millisecond))
	if n := h.Expire(t0.Add(450 * time.Millisecond)); n != 0 {
		t.Errorf("Expected repeat to keep initial hold, got %d releases", n)
	}

	// Repeat after initial window extends by RepeatHold
	h.Press("w", t0.Add(480*time.Millisecond))
	if n := h.Expire(t0.Add(550 * time.Millisecond)); n != 0 {
		t.Errorf("Expected repeat to extend hold, got %d releases", n)
	}
	if !h.State().Controls().Gas {
		t.Error("Expected gas held")
	}

	if n := h.Expire(t0.Add(580 * time.Millisecond)); n != 1 {
		t.Errorf("Expected one release at deadline, got %d", n)
	}
	if h.State().Controls().Gas {
		t.Error("Expected gas released")
	}
}

// TestMachineHandleKey verifies tcell events produce intents and controls
func TestMachineHandleKey(t *testing.T) {
	m := NewMachine(nil)
	now := time.Unix(2000, 0)

	intent := m.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), now)
	if intent.Type != IntentDrive || intent.Control != ControlGas {
		t.Errorf("Expected drive gas, got %+v", intent)
	}
	if !m.Controls(now).Gas {
		t.Error("Expected gas active")
	}

	intent = m.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'P', tcell.ModNone), now)
	if intent.Type != IntentPause {
		t.Errorf("Expected pause intent, got %+v", intent)
	}

	intent = m.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), now)
	if intent.Type != IntentQuit {
		t.Errorf("Expected quit intent, got %+v", intent)
	}

	if m.Controls(now.Add(time.Second)).Gas {
		t.Error("Expected gas to expire after hold window")
	}

	m.HandleName("d", now)
	m.Reset()
	if m.Controls(now) != (Controls{}) {
		t.Error("Expected reset to release all controls")
	}
}

// TestKeyName verifies tcell normalization
func TestKeyName(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want string
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone), "w"},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "space"},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), "left"},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "esc"},
	}
	for _, tt := range tests {
		if got := KeyName(tt.ev); got != tt.want {
			t.Errorf("KeyName(%v) = %q, want %q", tt.ev.Name(), got, tt.want)
		}
	}
}

// TestMachineSetTable verifies swapping tables releases holds and applies new bindings
func TestMachineSetTable(t *testing.T) {
	m := NewMachine(nil)
	now := time.Unix(3000, 0)

	m.HandleName("w", now)
	if !m.Controls(now).Gas {
		t.Fatal("Expected gas active")
	}

	kt := DefaultKeyTable()
	kt.Bind(ControlGas, "i")
	m.SetTable(kt)

	if m.Controls(now) != (Controls{}) {
		t.Error("Expected table swap to release held keys")
	}
	if intent := m.HandleName("w", now); intent.Type != IntentNone {
		t.Errorf("Expected w unbound, got %+v", intent)
	}
	m.HandleName("i", now)
	if !m.Controls(now).Gas {
		t.Error("Expected i to drive gas")
	}
}

// TestMachineSetHoldTimings verifies overridden hold windows govern expiry
func TestMachineSetHoldTimings(t *testing.T) {
	m := NewMachine(nil)
	m.SetHoldTimings(50*time.Millisecond, 20*time.Millisecond)
	now := time.Unix(4000, 0)

	m.HandleName("w", now)
	if !m.Controls(now.Add(40 * time.Millisecond)).Gas {
		t.Error("Expected gas held inside the initial window")
	}
	if m.Controls(now.Add(60 * time.Millisecond)).Gas {
		t.Error("Expected gas released after the shortened initial window")
	}

	// Timings survive a table swap
	m.SetTable(DefaultKeyTable())
	m.HandleName("w", now)
	if m.Controls(now.Add(60 * time.Millisecond)).Gas {
		t.Error("Expected swapped table to keep the shortened window")
	}
}
