package game

import (
	"errors"
	"math/rand"
	"testing"
)

func newTestGame(t *testing.T, rows, cols int) *Game {
	t.Helper()
	g, err := New(DefaultConfig(rows, cols), 0, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g
}

func mustStart(t *testing.T, g *Game) {
	t.Helper()
	if err := g.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
}

func mustPlaceFood(t *testing.T, g *Game, p Position) {
	t.Helper()
	if err := g.PlaceFood(p); err != nil {
		t.Fatalf("PlaceFood(%v) failed: %v", p, err)
	}
}

func mustStep(t *testing.T, g *Game) StepResult {
	t.Helper()
	res, err := g.Step()
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	return res
}

func TestNewValidatesConfig(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"default", DefaultConfig(10, 10), nil},
		{"empty grid", DefaultConfig(0, 10), ErrGridTooSmall},
		{"single cell", Config{Rows: 1, Cols: 1, StartDirection: DirDown, ScoreIncrement: 10}, ErrGridTooSmall},
		{"start outside", DefaultConfig(2, 3), ErrOutOfBounds},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.cfg, 0, nil)
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestNewGameIsIdle(t *testing.T) {
	g, err := New(DefaultConfig(8, 8), 70, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if g.Phase() != PhaseIdle {
		t.Errorf("Expected idle phase, got %s", g.Phase())
	}
	if g.HighScore() != 70 {
		t.Errorf("Expected high score 70, got %d", g.HighScore())
	}
	if g.Head() != DefaultStart {
		t.Errorf("Expected head at %v, got %v", DefaultStart, g.Head())
	}
	if g.Food() == g.Head() {
		t.Error("Food spawned on the snake")
	}
	if _, err := g.Step(); !errors.Is(err, ErrNotRunning) {
		t.Errorf("Expected ErrNotRunning stepping an idle game, got %v", err)
	}
}

func TestPhaseTransitions(t *testing.T) {
	g := newTestGame(t, 8, 8)

	if err := g.Restart(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected restart from idle to fail, got %v", err)
	}

	mustStart(t, g)
	if g.Phase() != PhaseRunning {
		t.Fatalf("Expected running phase, got %s", g.Phase())
	}
	if err := g.Start(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected second start to fail, got %v", err)
	}
	if err := g.Restart(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected restart while running to fail, got %v", err)
	}
}

// TestStepMovesDown covers a plain move: head advances, tail cell vacated
func TestStepMovesDown(t *testing.T) {
	g := newTestGame(t, 10, 10)
	mustStart(t, g)
	mustPlaceFood(t, g, Position{Row: 9, Col: 9})

	res := mustStep(t, g)

	want := Position{Row: 2, Col: 3}
	if g.Head() != want {
		t.Errorf("Expected head %v, got %v", want, g.Head())
	}
	if !res.HasVacated || res.Vacated != DefaultStart {
		t.Errorf("Expected vacated %v, got %v (has=%v)", DefaultStart, res.Vacated, res.HasVacated)
	}
	if g.Len() != 1 {
		t.Errorf("Expected length 1, got %d", g.Len())
	}
	if res.Ate || res.GameOver() {
		t.Errorf("Unexpected result flags: %+v", res)
	}
}

func TestStepEatsFood(t *testing.T) {
	g := newTestGame(t, 10, 10)
	mustStart(t, g)
	mustPlaceFood(t, g, Position{Row: 2, Col: 3})

	res := mustStep(t, g)

	if !res.Ate {
		t.Fatal("Expected food to be eaten")
	}
	if g.Len() != 2 {
		t.Errorf("Expected length 2, got %d", g.Len())
	}
	if g.Score() != 10 {
		t.Errorf("Expected score 10, got %d", g.Score())
	}
	if !res.NewHighScore || g.HighScore() != 10 {
		t.Errorf("Expected new high score 10, got %d (flag=%v)", g.HighScore(), res.NewHighScore)
	}
	if res.EatenFood != (Position{Row: 2, Col: 3}) {
		t.Errorf("Expected eaten food at (2,3), got %v", res.EatenFood)
	}
	if res.HasVacated {
		t.Error("Growth step must keep the tail")
	}

	snap := g.Snapshot()
	for _, seg := range snap.Snake {
		if seg == snap.Food {
			t.Errorf("Respawned food %v lies on the snake", snap.Food)
		}
	}
	if snap.Snake[1] != DefaultStart {
		t.Errorf("Expected old head %v retained as body, got %v", DefaultStart, snap.Snake[1])
	}
}

func TestHighScoreOnlyRisesPastRecord(t *testing.T) {
	g, err := New(DefaultConfig(10, 10), 20, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	mustStart(t, g)

	for i, wantFlag := range []bool{false, false, true} {
		mustPlaceFood(t, g, g.Head().Add(DirDown))
		res := mustStep(t, g)
		if res.NewHighScore != wantFlag {
			t.Errorf("Meal %d: expected NewHighScore=%v, got %v", i+1, wantFlag, res.NewHighScore)
		}
	}
	if g.HighScore() != 30 {
		t.Errorf("Expected high score 30, got %d", g.HighScore())
	}
}

func TestWallCollision(t *testing.T) {
	testCases := []struct {
		name    string
		prelude []Direction // turns taken before the fatal run
		dir     Direction
		steps   int
	}{
		{"top", []Direction{DirLeft}, DirUp, 2},
		{"left", nil, DirLeft, 4},
		{"bottom", nil, DirDown, 4},
		{"right", nil, DirRight, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 5, 6)
			mustStart(t, g)

			for _, d := range tc.prelude {
				g.SetDirection(d)
				mustPlaceFood(t, g, farCell(g))
				mustStep(t, g)
			}
			if !g.SetDirection(tc.dir) {
				t.Fatalf("SetDirection(%s) rejected", tc.dir)
			}

			var res StepResult
			for i := 0; i < tc.steps; i++ {
				mustPlaceFood(t, g, farCell(g))
				res = mustStep(t, g)
				if res.GameOver() && i < tc.steps-1 {
					t.Fatalf("Game ended early at step %d", i+1)
				}
			}

			if res.Collision != CollisionWall {
				t.Errorf("Expected wall collision, got %s", res.Collision)
			}
			if g.Phase() != PhaseGameOver {
				t.Errorf("Expected game over phase, got %s", g.Phase())
			}
			if g.InBounds(res.Head) {
				t.Errorf("Collision head %v should be out of bounds", res.Head)
			}
		})
	}
}

// farCell finds a free cell away from the head's next few moves
func farCell(g *Game) Position {
	rows, cols := g.Size()
	snap := g.Snapshot()
	head := g.Head()
	for r := rows - 1; r >= 0; r-- {
		for c := cols - 1; c >= 0; c-- {
			p := Position{Row: r, Col: c}
			if snap.CellAt(p) != CellEmpty {
				continue
			}
			if p.Row == head.Row || p.Col == head.Col {
				continue
			}
			return p
		}
	}
	return Position{}
}

func TestSelfCollision(t *testing.T) {
	g := newTestGame(t, 8, 8)
	mustStart(t, g)

	// Grow to length 5 heading down
	for i := 0; i < 4; i++ {
		mustPlaceFood(t, g, g.Head().Add(DirDown))
		if res := mustStep(t, g); !res.Ate {
			t.Fatalf("Expected meal %d", i+1)
		}
	}
	if g.Len() != 5 {
		t.Fatalf("Expected length 5, got %d", g.Len())
	}

	for _, d := range []Direction{DirRight, DirUp} {
		mustPlaceFood(t, g, Position{Row: 7, Col: 7})
		g.SetDirection(d)
		if res := mustStep(t, g); res.GameOver() {
			t.Fatalf("Unexpected collision turning %s", d)
		}
	}

	mustPlaceFood(t, g, Position{Row: 7, Col: 7})
	g.SetDirection(DirLeft)
	res := mustStep(t, g)

	if res.Collision != CollisionSelf {
		t.Errorf("Expected self collision, got %s", res.Collision)
	}
	if g.Collision() != CollisionSelf || g.Phase() != PhaseGameOver {
		t.Errorf("Expected game over by self collision, got %s/%s", g.Phase(), g.Collision())
	}
	if g.Len() != 5 {
		t.Errorf("Fatal step must not mutate the snake, length %d", g.Len())
	}
}

func TestReverseDirectionIgnored(t *testing.T) {
	g := newTestGame(t, 10, 10)
	mustStart(t, g)
	mustPlaceFood(t, g, Position{Row: 9, Col: 9})

	if g.SetDirection(DirUp) {
		t.Error("Expected reversal to be rejected")
	}
	mustStep(t, g)

	if g.Head() != (Position{Row: 2, Col: 3}) {
		t.Errorf("Expected snake to keep moving down, head %v", g.Head())
	}
}

func TestLastNonReversingDirectionWins(t *testing.T) {
	g := newTestGame(t, 10, 10)
	mustStart(t, g)
	mustPlaceFood(t, g, Position{Row: 9, Col: 9})

	if !g.SetDirection(DirLeft) {
		t.Fatal("Expected left to be accepted")
	}
	// Still heading down until the next step, so up is a reversal
	if g.SetDirection(DirUp) {
		t.Error("Expected up to be rejected while heading down")
	}
	if !g.SetDirection(DirRight) {
		t.Fatal("Expected right to be accepted")
	}
	mustStep(t, g)

	if g.Head() != (Position{Row: 1, Col: 4}) {
		t.Errorf("Expected head (1,4), got %v", g.Head())
	}
	if g.Direction() != DirRight {
		t.Errorf("Expected direction right, got %s", g.Direction())
	}
}

func TestRestartResetsState(t *testing.T) {
	g := newTestGame(t, 6, 6)
	mustStart(t, g)

	mustPlaceFood(t, g, Position{Row: 2, Col: 3})
	mustStep(t, g)
	g.AdvanceClock()
	g.AdvanceClock()

	g.SetDirection(DirRight)
	for g.Phase() == PhaseRunning {
		mustPlaceFood(t, g, Position{Row: 5, Col: 0})
		mustStep(t, g)
	}

	if err := g.Restart(); err != nil {
		t.Fatalf("Restart failed: %v", err)
	}

	if g.Phase() != PhaseRunning {
		t.Errorf("Expected running after restart, got %s", g.Phase())
	}
	if g.Len() != 1 || g.Head() != DefaultStart {
		t.Errorf("Expected fresh snake at %v, got len %d head %v", DefaultStart, g.Len(), g.Head())
	}
	if g.Score() != 0 {
		t.Errorf("Expected score 0, got %d", g.Score())
	}
	if g.Elapsed().String() != "00:00" {
		t.Errorf("Expected time 00:00, got %s", g.Elapsed())
	}
	if g.HighScore() != 10 {
		t.Errorf("Expected high score 10 kept, got %d", g.HighScore())
	}
	if g.Direction() != DirDown {
		t.Errorf("Expected direction down, got %s", g.Direction())
	}
	if g.Food() == g.Head() || !g.InBounds(g.Food()) {
		t.Errorf("Invalid food %v after restart", g.Food())
	}
	if g.Collision() != CollisionNone {
		t.Errorf("Expected collision cleared, got %s", g.Collision())
	}
}

func TestAdvanceClockOnlyWhileRunning(t *testing.T) {
	g := newTestGame(t, 8, 8)

	if g.AdvanceClock() {
		t.Error("Clock must not run while idle")
	}
	mustStart(t, g)
	for i := 0; i < 61; i++ {
		g.AdvanceClock()
	}
	if got := g.Elapsed().String(); got != "01:01" {
		t.Errorf("Expected 01:01, got %s", got)
	}
}

// TestRandomPlayInvariants drives random play and checks the board invariants after every step
func TestRandomPlayInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g, err := New(DefaultConfig(7, 9), 0, rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	mustStart(t, g)

	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}
	lastHigh := g.HighScore()
	games := 0

	for i := 0; i < 5000 && games < 50; i++ {
		if g.Phase() == PhaseGameOver {
			games++
			if err := g.Restart(); err != nil {
				t.Fatalf("Restart failed: %v", err)
			}
		}

		g.SetDirection(dirs[rng.Intn(len(dirs))])
		before := g.Len()
		res := mustStep(t, g)

		if res.GameOver() {
			if g.Len() != before {
				t.Fatalf("Step %d: fatal step changed length %d -> %d", i, before, g.Len())
			}
		} else if res.Ate {
			if g.Len() != before+1 {
				t.Fatalf("Step %d: meal must grow by one, %d -> %d", i, before, g.Len())
			}
		} else if g.Len() != before {
			t.Fatalf("Step %d: plain move changed length %d -> %d", i, before, g.Len())
		}

		snap := g.Snapshot()
		seen := make(map[Position]bool, len(snap.Snake))
		for _, seg := range snap.Snake {
			if seen[seg] {
				t.Fatalf("Step %d: duplicate segment %v", i, seg)
			}
			seen[seg] = true
			if !g.InBounds(seg) {
				t.Fatalf("Step %d: segment %v out of bounds", i, seg)
			}
		}
		if seen[snap.Food] {
			t.Fatalf("Step %d: food %v on snake", i, snap.Food)
		}
		if snap.Score < 0 || snap.Score%DefaultScoreIncrement != 0 {
			t.Fatalf("Step %d: score %d is not a multiple of %d", i, snap.Score, DefaultScoreIncrement)
		}
		if snap.HighScore < lastHigh {
			t.Fatalf("Step %d: high score dropped %d -> %d", i, lastHigh, snap.HighScore)
		}
		lastHigh = snap.HighScore
	}
}
