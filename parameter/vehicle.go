package parameter

// Vehicle tuning, canonical "default" preset
const (
	VehicleMaxSpeed = 5.0
	// VehicleTurnRate is degrees of heading change per tick while turning
	VehicleTurnRate = 3.0
	// VehicleFriction decays scalar acceleration each tick
	VehicleFriction = 0.98
	// VehicleDrag decays velocity each tick
	VehicleDrag           = 0.99
	VehicleThrottleAccel  = 0.05
	VehicleBrakeAccel     = 0.1
	VehicleAccelEpsilon   = 0.0001
	VehicleInitialHeading = 0.0
)

// "classic" preset, slow-thrust variant facing up the screen
const (
	ClassicDrag           = 0.95
	ClassicThrottleAccel  = 0.0003
	ClassicBrakeAccel     = 0.0002
	ClassicAccelEpsilon   = 0.0001
	ClassicInitialHeading = -90.0
)

// "arcade" preset, coarse epsilon variant
// ThrottleAccel*Friction < AccelEpsilon: acceleration snaps to zero every tick
const (
	ArcadeDrag          = 0.99
	ArcadeThrottleAccel = 0.05
	ArcadeBrakeAccel    = 0.1
	ArcadeAccelEpsilon  = 0.1
)

// Preset names
const (
	PresetDefault = "default"
	PresetClassic = "classic"
	PresetArcade  = "arcade"
)

// Default vehicle footprint in world units, sized for a terminal cell grid
const (
	VehicleWidth  = 4.0
	VehicleHeight = 2.0
)
