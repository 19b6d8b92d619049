package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat SoundType = iota // Food consumed
)

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
