package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings, vi and wasd steering
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the standard bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyUp:     IntentUp,
			tcell.KeyDown:   IntentDown,
			tcell.KeyLeft:   IntentLeft,
			tcell.KeyRight:  IntentRight,
			tcell.KeyEnter:  IntentStart,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
		},
		Runes: map[rune]IntentType{
			'k': IntentUp,
			'j': IntentDown,
			'h': IntentLeft,
			'l': IntentRight,
			'w': IntentUp,
			's': IntentDown,
			'a': IntentLeft,
			'd': IntentRight,
			' ': IntentStart,
			'r': IntentRestart,
			'R': IntentRestart,
			'q': IntentQuit,
		},
	}
}

// Lookup resolves a key/rune pair; runes are only consulted for tcell.KeyRune
func (kt *KeyTable) Lookup(key tcell.Key, ch rune) IntentType {
	if key == tcell.KeyRune {
		return kt.Runes[ch]
	}
	return kt.SpecialKeys[key]
}

// Translate maps a tcell event to an intent
func (kt *KeyTable) Translate(ev tcell.Event) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return kt.Lookup(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		return IntentResize
	}
	return IntentNone
}
