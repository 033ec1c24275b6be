package input

// IntentType discriminates semantic actions produced from key events
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit       // q, Esc, Ctrl+C
	IntentPause      // p
	IntentReset      // r
	IntentToggleMute // m
	IntentDrive      // Key bound to a driving control, state already updated
)

// Intent is the parsed result of one key event
type Intent struct {
	Type    IntentType
	Control Control // Valid for IntentDrive
	Key     string  // Normalized key name that produced the intent
}
