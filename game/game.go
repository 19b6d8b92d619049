package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Sentinel errors
var (
	ErrNotRunning        = errors.New("game is not running")
	ErrInvalidTransition = errors.New("invalid phase transition")
	ErrGridTooSmall      = errors.New("grid too small")
	ErrOutOfBounds       = errors.New("position out of bounds")
	ErrCellOccupied      = errors.New("cell occupied by snake")
)

const (
	DefaultScoreIncrement = 10
)

// DefaultStart is the spawn cell of a fresh snake
var DefaultStart = Position{Row: 1, Col: 3}

// Phase is the lifecycle state of a game
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// Collision is the cause of a game over
type Collision uint8

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
)

func (c Collision) String() string {
	switch c {
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	}
	return "none"
}

// Config fixes the board and spawn rules for a session
type Config struct {
	Rows           int
	Cols           int
	Start          Position
	StartDirection Direction
	ScoreIncrement int
}

// DefaultConfig returns the standard rules for a rows x cols board
func DefaultConfig(rows, cols int) Config {
	return Config{
		Rows:           rows,
		Cols:           cols,
		Start:          DefaultStart,
		StartDirection: DirDown,
		ScoreIncrement: DefaultScoreIncrement,
	}
}

// Validate checks the board can hold a snake and a food cell
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 || c.Rows*c.Cols < 2 {
		return fmt.Errorf("%w: %dx%d", ErrGridTooSmall, c.Rows, c.Cols)
	}
	if c.Start.Row < 0 || c.Start.Row >= c.Rows || c.Start.Col < 0 || c.Start.Col >= c.Cols {
		return fmt.Errorf("start %v on %dx%d: %w", c.Start, c.Rows, c.Cols, ErrOutOfBounds)
	}
	if !c.StartDirection.Valid() {
		return fmt.Errorf("invalid start direction %d", c.StartDirection)
	}
	if c.ScoreIncrement <= 0 {
		return fmt.Errorf("score increment must be positive, got %d", c.ScoreIncrement)
	}
	return nil
}

// StepResult describes what a single Step committed
type StepResult struct {
	Head         Position
	Collision    Collision
	Ate          bool
	NewHighScore bool
	EatenFood    Position // Valid when Ate
	Vacated      Position // Valid when HasVacated
	HasVacated   bool
}

// GameOver reports whether the step ended the game
func (r StepResult) GameOver() bool {
	return r.Collision != CollisionNone
}

// Game owns the whole simulation state
// Not safe for concurrent use; the engine loop is the single owner
type Game struct {
	cfg Config
	rng *rand.Rand

	phase     Phase
	snake     []Position // head at index 0
	food      Position
	direction Direction // heading applied by the last step
	pending   Direction // heading for the next step

	score     int
	highScore int
	elapsed   Elapsed
	collision Collision
	ticks     uint64
}

// New creates an idle game with the given persisted high score
// A nil rng is seeded from the wall clock
func New(cfg Config, highScore int, rng *rand.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if highScore < 0 {
		highScore = 0
	}

	g := &Game{
		cfg:       cfg,
		rng:       rng,
		highScore: highScore,
		snake:     make([]Position, 0, 16),
	}
	g.reset()
	g.phase = PhaseIdle
	return g, nil
}

// Start begins the first game from Idle
func (g *Game) Start() error {
	if g.phase != PhaseIdle {
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, g.phase)
	}
	g.reset()
	g.phase = PhaseRunning
	return nil
}

// Restart begins a new game after GameOver; the high score carries over
func (g *Game) Restart() error {
	if g.phase != PhaseGameOver {
		return fmt.Errorf("%w: restart from %s", ErrInvalidTransition, g.phase)
	}
	g.reset()
	g.phase = PhaseRunning
	return nil
}

func (g *Game) reset() {
	g.snake = append(g.snake[:0], g.cfg.Start)
	g.direction = g.cfg.StartDirection
	g.pending = g.cfg.StartDirection
	g.score = 0
	g.elapsed.Reset()
	g.collision = CollisionNone
	g.ticks = 0
	g.food = g.spawnFood()
}

// SetDirection queues a heading for the next step
// Reversals of the current heading are rejected; the last accepted request wins
func (g *Game) SetDirection(d Direction) bool {
	if !d.Valid() || d == g.direction.Reverse() {
		return false
	}
	g.pending = d
	return true
}

// Step advances the simulation by one tick
func (g *Game) Step() (StepResult, error) {
	if g.phase != PhaseRunning {
		return StepResult{}, ErrNotRunning
	}

	g.direction = g.pending
	head := g.snake[0].Add(g.direction)
	g.ticks++

	res := StepResult{Head: head}

	if !g.InBounds(head) {
		g.end(CollisionWall)
		res.Collision = CollisionWall
		return res, nil
	}
	if g.onSnake(head) {
		g.end(CollisionSelf)
		res.Collision = CollisionSelf
		return res, nil
	}

	if head == g.food {
		g.snake = append(g.snake, Position{})
		copy(g.snake[1:], g.snake[:len(g.snake)-1])
		g.snake[0] = head

		g.score += g.cfg.ScoreIncrement
		if g.score > g.highScore {
			g.highScore = g.score
			res.NewHighScore = true
		}

		res.Ate = true
		res.EatenFood = g.food
		g.food = g.spawnFood()
		return res, nil
	}

	tail := g.snake[len(g.snake)-1]
	copy(g.snake[1:], g.snake[:len(g.snake)-1])
	g.snake[0] = head
	res.Vacated = tail
	res.HasVacated = true
	return res, nil
}

func (g *Game) end(c Collision) {
	g.phase = PhaseGameOver
	g.collision = c
}

// AdvanceClock adds one second to the play timer while running
func (g *Game) AdvanceClock() bool {
	if g.phase != PhaseRunning {
		return false
	}
	g.elapsed.Tick()
	return true
}

// spawnFood samples uniformly until it hits a free cell
// Unbounded when the snake nearly fills the board
func (g *Game) spawnFood() Position {
	for {
		p := Position{
			Row: g.rng.Intn(g.cfg.Rows),
			Col: g.rng.Intn(g.cfg.Cols),
		}
		if !g.onSnake(p) {
			return p
		}
	}
}

// PlaceFood moves the food to a chosen free cell
func (g *Game) PlaceFood(p Position) error {
	if !g.InBounds(p) {
		return fmt.Errorf("food %v: %w", p, ErrOutOfBounds)
	}
	if g.onSnake(p) {
		return fmt.Errorf("food %v: %w", p, ErrCellOccupied)
	}
	g.food = p
	return nil
}

func (g *Game) onSnake(p Position) bool {
	for _, s := range g.snake {
		if s == p {
			return true
		}
	}
	return false
}

// InBounds reports whether p lies on the board
func (g *Game) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.cfg.Rows && p.Col >= 0 && p.Col < g.cfg.Cols
}

func (g *Game) Phase() Phase { return g.phase }
func (g *Game) Score() int { return g.score }
func (g *Game) HighScore() int { return g.highScore }
func (g *Game) Elapsed() Elapsed { return g.elapsed }
func (g *Game) Direction() Direction { return g.direction }
func (g *Game) Pending() Direction { return g.pending }
func (g *Game) Food() Position { return g.food }
func (g *Game) Head() Position { return g.snake[0] }
func (g *Game) Len() int { return len(g.snake) }
func (g *Game) Collision() Collision { return g.collision }
func (g *Game) Ticks() uint64 { return g.ticks }
func (g *Game) Size() (rows, cols int) { return g.cfg.Rows, g.cfg.Cols }
