package parameter

import "time"

// World simulation
const (
	// TickInterval is the fixed virtual timestep paced in real time by the scheduler
	TickInterval = 16 * time.Millisecond

	// FrameInterval is the render cadence of the front ends
	FrameInterval = 33 * time.Millisecond

	// CollisionFlashTicks is how long an obstacle stays highlighted after a hit
	CollisionFlashTicks = 20
)

// Input hold emulation for terminals that only report key presses
const (
	// InputInitialHold covers the OS auto-repeat delay after the first press
	InputInitialHold = 500 * time.Millisecond
	// InputRepeatHold covers the gap between auto-repeat events
	InputRepeatHold = 120 * time.Millisecond
)

// Scenario runner
const (
	// ScenarioMaxTicks bounds a single scenario run
	ScenarioMaxTicks = 1_000_000
)
