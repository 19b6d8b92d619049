package spectate

import "github.com/lixenwraith/vi-snake/game"

// Frame is the wire form of a snapshot sent to spectators
type Frame struct {
	Rows      int             `json:"rows"`
	Cols      int             `json:"cols"`
	Phase     string          `json:"phase"`
	Snake     []game.Position `json:"snake"`
	Food      game.Position   `json:"food"`
	Direction string          `json:"direction"`
	Score     string          `json:"score"`
	HighScore string          `json:"highScore"`
	Elapsed   string          `json:"elapsed"`
	Collision string          `json:"collision,omitempty"`
	Tick      uint64          `json:"tick"`
}

// NewFrame converts a snapshot; score fields carry the HUD formatting
func NewFrame(snap game.Snapshot) Frame {
	f := Frame{
		Rows:      snap.Rows,
		Cols:      snap.Cols,
		Phase:     snap.Phase.String(),
		Snake:     snap.Snake,
		Food:      snap.Food,
		Direction: snap.Direction.String(),
		Score:     game.FormatScore(snap.Score),
		HighScore: game.FormatScore(snap.HighScore),
		Elapsed:   snap.Elapsed.String(),
		Tick:      snap.Tick,
	}
	if snap.Collision != game.CollisionNone {
		f.Collision = snap.Collision.String()
	}
	if f.Snake == nil {
		f.Snake = []game.Position{}
	}
	return f
}
