package input

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyName normalizes a tcell key event to the names used by KeyTable
func KeyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			return "space"
		}
		name := string(unicode.ToLower(r))
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return "ctrl-" + name
		}
		return name
	}
	if name, ok := tcell.KeyNames[ev.Key()]; ok {
		return NormalizeKey(strings.ToLower(name))
	}
	return ""
}
