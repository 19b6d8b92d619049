package game

// CellState is what a renderer draws at one cell
type CellState uint8

const (
	CellEmpty CellState = iota
	CellSnake
	CellHead
	CellFood
)

// Snapshot is an immutable copy of the visible game state
type Snapshot struct {
	Rows      int
	Cols      int
	Phase     Phase
	Snake     []Position
	Food      Position
	Direction Direction
	Score     int
	HighScore int
	Elapsed   Elapsed
	Collision Collision
	Tick      uint64
}

// Snapshot copies the current state
func (g *Game) Snapshot() Snapshot {
	snake := make([]Position, len(g.snake))
	copy(snake, g.snake)

	return Snapshot{
		Rows:      g.cfg.Rows,
		Cols:      g.cfg.Cols,
		Phase:     g.phase,
		Snake:     snake,
		Food:      g.food,
		Direction: g.direction,
		Score:     g.score,
		HighScore: g.highScore,
		Elapsed:   g.elapsed,
		Collision: g.collision,
		Tick:      g.ticks,
	}
}

// Cells expands the snapshot into a row-major grid
func (s Snapshot) Cells() [][]CellState {
	cells := make([][]CellState, s.Rows)
	for r := range cells {
		cells[r] = make([]CellState, s.Cols)
	}
	for i, p := range s.Snake {
		if !s.inBounds(p) {
			continue
		}
		if i == 0 {
			cells[p.Row][p.Col] = CellHead
		} else {
			cells[p.Row][p.Col] = CellSnake
		}
	}
	if s.inBounds(s.Food) {
		cells[s.Food.Row][s.Food.Col] = CellFood
	}
	return cells
}

// CellAt returns the state of a single cell
func (s Snapshot) CellAt(p Position) CellState {
	if len(s.Snake) > 0 && s.Snake[0] == p {
		return CellHead
	}
	for _, seg := range s.Snake {
		if seg == p {
			return CellSnake
		}
	}
	if s.Food == p {
		return CellFood
	}
	return CellEmpty
}

func (s Snapshot) inBounds(p Position) bool {
	return p.Row >= 0 && p.Row < s.Rows && p.Col >= 0 && p.Col < s.Cols
}
