package input

import (
	"sort"
	"strings"
)

// KeyTable maps normalized key names to driving controls and system intents
type KeyTable struct {
	Controls map[string]Control
	System   map[string]IntentType
}

// DefaultKeyTable returns WASD + arrows driving and the sandbox system keys
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Controls: map[string]Control{
			"w":     ControlGas,
			"up":    ControlGas,
			"s":     ControlBrake,
			"down":  ControlBrake,
			"a":     ControlLeft,
			"left":  ControlLeft,
			"d":     ControlRight,
			"right": ControlRight,
		},
		System: map[string]IntentType{
			"q":      IntentQuit,
			"esc":    IntentQuit,
			"ctrl-c": IntentQuit,
			"p":      IntentPause,
			"r":      IntentReset,
			"m":      IntentToggleMute,
		},
	}
}

// Bind replaces all keys for a control with the given key names
func (kt *KeyTable) Bind(c Control, keys ...string) {
	for k, bound := range kt.Controls {
		if bound == c {
			delete(kt.Controls, k)
		}
	}
	for _, k := range keys {
		kt.Controls[NormalizeKey(k)] = c
	}
}

// KeysFor returns the sorted key names currently bound to c
func (kt *KeyTable) KeysFor(c Control) []string {
	var keys []string
	for k, bound := range kt.Controls {
		if bound == c {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Lookup resolves a key name, driving bindings take precedence over system keys
func (kt *KeyTable) Lookup(key string) Intent {
	key = NormalizeKey(key)
	if c, ok := kt.Controls[key]; ok {
		return Intent{Type: IntentDrive, Control: c, Key: key}
	}
	if it, ok := kt.System[key]; ok {
		return Intent{Type: it, Key: key}
	}
	return Intent{Type: IntentNone, Key: key}
}

// NormalizeKey lowercases and maps common aliases to canonical names
func NormalizeKey(key string) string {
	k := strings.ToLower(strings.TrimSpace(key))
	switch k {
	case "arrowup":
		return "up"
	case "arrowdown":
		return "down"
	case "arrowleft":
		return "left"
	case "arrowright":
		return "right"
	case "escape":
		return "esc"
	case " ":
		return "space"
	}
	return k
}
