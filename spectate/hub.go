package spectate

import (
	"encoding/json"
	"io"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-snake/game"
)

const clientBuffer = 16

type client struct {
	send chan []byte
}

// Hub fans encoded snapshots out to connected spectators
// Render runs on the game loop goroutine and never blocks on a client
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	latest  []byte
	closed  bool

	frames  atomic.Int64
	dropped atomic.Int64

	log logrus.FieldLogger
}

// NewHub creates an empty hub; a nil logger discards output
func NewHub(logger logrus.FieldLogger) *Hub {
	if logger == nil {
		silent := logrus.New()
		silent.SetOutput(io.Discard)
		logger = silent
	}
	return &Hub{
		clients: make(map[*client]struct{}),
		log:     logger.WithField("component", "spectate"),
	}
}

// Render encodes snap and queues it for every client
func (h *Hub) Render(snap game.Snapshot) {
	data, err := json.Marshal(NewFrame(snap))
	if err != nil {
		h.log.WithError(err).Error("frame encode failed")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest = data
	h.frames.Add(1)
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.dropped.Add(1)
		}
	}
}

// Latest returns the most recent encoded frame
func (h *Hub) Latest() ([]byte, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest, h.latest != nil
}

// Clients returns the number of connected spectators
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Frames and Dropped report broadcast counters
func (h *Hub) Frames() int64  { return h.frames.Load() }
func (h *Hub) Dropped() int64 { return h.dropped.Load() }

// register adds a client, priming it with the latest frame
// Returns nil once the hub is closed
func (h *Hub) register() *client {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}

	c := &client{send: make(chan []byte, clientBuffer)}
	if h.latest != nil {
		c.send <- h.latest
	}
	h.clients[c] = struct{}{}
	h.log.WithField("clients", len(h.clients)).Debug("spectator joined")
	return c
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	h.log.WithField("clients", len(h.clients)).Debug("spectator left")
}

// Close disconnects every client and rejects new ones
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}
