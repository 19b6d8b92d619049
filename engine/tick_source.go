package engine

import (
	"sync"
	"time"
)

// TickSource is a restartable fixed-rate trigger
// C returns a nil channel while stopped so a select on it never fires
type TickSource interface {
	Start()
	Stop()
	C() <-chan time.Time
}

// Ticker is a TickSource backed by time.Ticker
// Owned by a single goroutine, the game loop
type Ticker struct {
	interval time.Duration
	t        *time.Ticker
}

// NewTicker creates a stopped ticker
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{interval: interval}
}

// Start arms the ticker; a running ticker is left untouched
func (t *Ticker) Start() {
	if t.t != nil {
		return
	}
	t.t = time.NewTicker(t.interval)
}

// Stop disarms the ticker and drops its channel, discarding any pending tick
func (t *Ticker) Stop() {
	if t.t == nil {
		return
	}
	t.t.Stop()
	t.t = nil
}

func (t *Ticker) C() <-chan time.Time {
	if t.t == nil {
		return nil
	}
	return t.t.C
}

func (t *Ticker) Running() bool {
	return t.t != nil
}

func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// ManualTicker fires only when told to, for deterministic loop tests
type ManualTicker struct {
	mu      sync.Mutex
	running bool
	starts  int
	stops   int
	ch      chan time.Time
}

func NewManualTicker() *ManualTicker {
	return &ManualTicker{ch: make(chan time.Time, 1)}
}

func (m *ManualTicker) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.running = true
	m.starts++
}

func (m *ManualTicker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.running = false
	m.stops++
	select {
	case <-m.ch:
	default:
	}
}

func (m *ManualTicker) C() <-chan time.Time {
	return m.ch
}

// Fire queues one tick; it reports false when stopped or a tick is already pending
func (m *ManualTicker) Fire() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running {
		return false
	}
	select {
	case m.ch <- time.Now():
		return true
	default:
		return false
	}
}

func (m *ManualTicker) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// Starts returns how many times the ticker was armed
func (m *ManualTicker) Starts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.starts
}
