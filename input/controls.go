package input

// Controls is the per-tick driving input, passed by value into the motion model
type Controls struct {
	Gas       bool
	Brake     bool
	TurnLeft  bool
	TurnRight bool
}

// Control identifies one of the four driving inputs
type Control uint8

const (
	ControlNone Control = iota
	ControlGas
	ControlBrake
	ControlLeft
	ControlRight
)

// DrivingControls lists the four bindable controls in display order
var DrivingControls = [...]Control{ControlGas, ControlBrake, ControlLeft, ControlRight}

var controlNames = [...]string{
	ControlNone:  "none",
	ControlGas:   "gas",
	ControlBrake: "brake",
	ControlLeft:  "left",
	ControlRight: "right",
}

func (c Control) String() string {
	if int(c) < len(controlNames) {
		return controlNames[c]
	}
	return "unknown"
}

// ParseControl maps a config name to a Control, ControlNone if unknown
func ParseControl(name string) Control {
	for i, n := range controlNames {
		if n == name && Control(i) != ControlNone {
			return Control(i)
		}
	}
	return ControlNone
}

// apply sets the field for c on a Controls value
func (c Control) apply(ctl *Controls, on bool) {
	switch c {
	case ControlGas:
		ctl.Gas = on
	case ControlBrake:
		ctl.Brake = on
	case ControlLeft:
		ctl.TurnLeft = on
	case ControlRight:
		ctl.TurnRight = on
	}
}
