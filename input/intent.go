package input

import "github.com/lixenwraith/vi-snake/game"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Steering
	IntentUp
	IntentDown
	IntentLeft
	IntentRight

	// Lifecycle
	IntentStart   // Enter, Space
	IntentRestart // r
	IntentQuit    // Esc, Ctrl+C, q

	IntentResize // Terminal resize event
)

var intentNames = map[IntentType]string{
	IntentNone:    "none",
	IntentUp:      "up",
	IntentDown:    "down",
	IntentLeft:    "left",
	IntentRight:   "right",
	IntentStart:   "start",
	IntentRestart: "restart",
	IntentQuit:    "quit",
	IntentResize:  "resize",
}

func (i IntentType) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}

// Direction converts a steering intent to a game heading
func (i IntentType) Direction() (game.Direction, bool) {
	switch i {
	case IntentUp:
		return game.DirUp, true
	case IntentDown:
		return game.DirDown, true
	case IntentLeft:
		return game.DirLeft, true
	case IntentRight:
		return game.DirRight, true
	}
	return game.DirNone, false
}
