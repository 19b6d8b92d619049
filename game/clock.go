package game

import "fmt"

// Elapsed is the second-resolution play timer
type Elapsed struct {
	Minutes int
	Seconds int
}

// Tick advances the timer by one second, carrying into minutes at 60
func (e *Elapsed) Tick() {
	if e.Seconds == 59 {
		e.Minutes++
		e.Seconds = 0
		return
	}
	e.Seconds++
}

// Reset zeroes the timer
func (e *Elapsed) Reset() {
	e.Minutes, e.Seconds = 0, 0
}

// String formats as mm:ss
func (e Elapsed) String() string {
	return fmt.Sprintf("%02d:%02d", e.Minutes, e.Seconds)
}

// FormatScore zero-pads a score to two digits for display
func FormatScore(score int) string {
	return fmt.Sprintf("%02d", score)
}
