package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-racer/vehicle"
	"github.com/lixenwraith/vi-racer/vmath"
)

// Status is the sandbox state shown next to the vehicle readout
type Status struct {
	Preset string
	Policy string
	Tick   uint64
	Paused bool
	Muted  bool
}

// StatusLine formats the bottom bar; ASCII only so byte index equals column
func StatusLine(state vehicle.State, st Status) string {
	var b strings.Builder
	fmt.Fprintf(&b, " %s/%s | spd %5.2f | hdg %6.1f | acc %+.4f | pos %7.1f,%7.1f | tick %d",
		st.Preset, st.Policy, state.Speed, vmath.WrapRange(state.Heading, 0, 360), state.Acceleration, state.X, state.Y, st.Tick)
	if st.Paused {
		b.WriteString(" | PAUSED")
	}
	if st.Muted {
		b.WriteString(" | muted")
	}
	b.WriteString(" | p pause r reset m mute q quit")
	return b.String()
}
