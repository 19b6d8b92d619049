package engine

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/status"
)

const defaultQueueSize = 64

// Renderer draws one snapshot; called on the loop goroutine
type Renderer interface {
	Render(snap game.Snapshot)
}

// Syncer is implemented by renderers that must repaint fully after a resize
type Syncer interface {
	Sync()
}

// SoundPlayer plays the eat cue, fire-and-forget
type SoundPlayer interface {
	PlayEat()
}

// ScoreSaver persists a new high score
type ScoreSaver interface {
	Save(score int) error
}

// LoopConfig wires the collaborators of a Loop
// Step and Clock are required; the rest may be nil
type LoopConfig struct {
	Step      TickSource
	Clock     TickSource
	Renderers []Renderer
	Sound     SoundPlayer
	Scores    ScoreSaver
	Status    *status.Registry
	Time      TimeSource
	Logger    logrus.FieldLogger
	QueueSize int
}

// Loop owns a game and drives it from tick sources and queued intents
// All game mutation happens on the goroutine running Run, or on the caller
// of HandleIntent/Tick/Second when the loop is driven directly
type Loop struct {
	game      *game.Game
	step      TickSource
	clock     TickSource
	renderers []Renderer
	sound     SoundPlayer
	scores    ScoreSaver
	time      TimeSource
	log       logrus.FieldLogger
	intents   chan input.IntentType

	status        *status.Registry
	statTicks     *atomic.Int64
	statMeals     *atomic.Int64
	statGames     *atomic.Int64
	statHighScore *atomic.Int64
	statCollision *status.AtomicString

	sessionStart time.Time
}

var ErrMissingTickSource = errors.New("loop requires step and clock tick sources")

// NewLoop creates a loop around g; tickers stay stopped until a start intent
func NewLoop(g *game.Game, cfg LoopConfig) (*Loop, error) {
	if cfg.Step == nil || cfg.Clock == nil {
		return nil, ErrMissingTickSource
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}
	if cfg.Time == nil {
		cfg.Time = NewTimeProvider()
	}
	if cfg.Logger == nil {
		silent := logrus.New()
		silent.SetOutput(io.Discard)
		cfg.Logger = silent
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}

	l := &Loop{
		game:          g,
		step:          cfg.Step,
		clock:         cfg.Clock,
		renderers:     cfg.Renderers,
		sound:         cfg.Sound,
		scores:        cfg.Scores,
		time:          cfg.Time,
		log:           cfg.Logger.WithField("component", "loop"),
		intents:       make(chan input.IntentType, cfg.QueueSize),
		status:        cfg.Status,
		statTicks:     cfg.Status.Ints.Get("engine.ticks"),
		statMeals:     cfg.Status.Ints.Get("game.meals"),
		statGames:     cfg.Status.Ints.Get("game.played"),
		statHighScore: cfg.Status.Ints.Get("game.high_score"),
		statCollision: cfg.Status.Strings.Get("game.last_collision"),
	}
	l.statHighScore.Store(int64(g.HighScore()))
	return l, nil
}

// Submit queues an intent without blocking; a full queue drops it
func (l *Loop) Submit(intent input.IntentType) bool {
	select {
	case l.intents <- intent:
		return true
	default:
		return false
	}
}

// Status exposes the loop counters
func (l *Loop) Status() *status.Registry {
	return l.status
}

// Run processes intents and ticks until ctx is done or a quit intent arrives
func (l *Loop) Run(ctx context.Context) error {
	defer l.stopTickers()

	l.render()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case intent := <-l.intents:
			if intent == input.IntentQuit {
				l.log.Info("quit requested")
				return nil
			}
			l.HandleIntent(intent)

		case <-l.step.C():
			l.Tick()

		case <-l.clock.C():
			l.Second()
		}
	}
}

// HandleIntent applies one intent to the game
func (l *Loop) HandleIntent(intent input.IntentType) {
	switch intent {
	case input.IntentStart:
		switch l.game.Phase() {
		case game.PhaseIdle:
			l.begin(l.game.Start)
		case game.PhaseGameOver:
			l.begin(l.game.Restart)
		}

	case input.IntentRestart:
		if l.game.Phase() == game.PhaseGameOver {
			l.begin(l.game.Restart)
		}

	case input.IntentResize:
		for _, r := range l.renderers {
			if s, ok := r.(Syncer); ok {
				s.Sync()
			}
		}
		l.render()

	default:
		if d, ok := intent.Direction(); ok {
			if !l.game.SetDirection(d) {
				l.log.WithField("direction", d).Debug("reversal ignored")
			}
		}
	}
}

func (l *Loop) begin(transition func() error) {
	l.stopTickers()
	if err := transition(); err != nil {
		l.log.WithError(err).Debug("transition rejected")
		return
	}

	l.sessionStart = l.time.Now()
	l.statGames.Add(1)
	l.log.WithField("game", l.statGames.Load()).Info("game started")

	l.step.Start()
	l.clock.Start()
	l.render()
}

// Tick performs one Step and its side effects
func (l *Loop) Tick() {
	res, err := l.game.Step()
	if err != nil {
		// Tick delivered after the game ended
		return
	}
	l.statTicks.Add(1)

	if res.Ate {
		l.statMeals.Add(1)
		if l.sound != nil {
			l.sound.PlayEat()
		}
	}
	if res.NewHighScore {
		l.saveHighScore()
	}
	if res.GameOver() {
		l.stopTickers()
		l.statCollision.Store(res.Collision.String())
		l.log.WithFields(logrus.Fields{
			"score":     l.game.Score(),
			"length":    l.game.Len(),
			"collision": res.Collision.String(),
			"elapsed":   l.game.Elapsed().String(),
			"duration":  l.time.Now().Sub(l.sessionStart).Round(time.Second).String(),
		}).Info("game over")
	}

	l.render()
}

// Second advances the play timer
func (l *Loop) Second() {
	if l.game.AdvanceClock() {
		l.render()
	}
}

func (l *Loop) saveHighScore() {
	score := l.game.HighScore()
	l.statHighScore.Store(int64(score))
	if l.scores == nil {
		return
	}
	if err := l.scores.Save(score); err != nil {
		l.log.WithError(err).WithField("score", score).Warn("high score not persisted")
	}
}

func (l *Loop) stopTickers() {
	l.step.Stop()
	l.clock.Stop()
}

func (l *Loop) render() {
	snap := l.game.Snapshot()
	for _, r := range l.renderers {
		r.Render(snap)
	}
}
