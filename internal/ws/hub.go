// Package ws implements the WebSocket hub that streams newly appended
// audit records to connected UI clients.
package ws

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/bookinglog/bookinglog/internal/metrics"
	"github.com/bookinglog/bookinglog/internal/models"
)

// Hub channel buffer sizes.
const (
	broadcastBuffer = 256
	registerBuffer  = 64
)

// maxClients caps concurrent connections; this is an admin tool, not a
// public fan-out.
const maxClients = 200

// subjectBroadcast is sent through the broadcast channel to the Run goroutine.
type subjectBroadcast struct {
	subjectID string
	msg       []byte
}

// Hub manages active WebSocket clients and broadcasts audit record events.
// All client map mutations happen exclusively in the Run goroutine.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan subjectBroadcast
	count      atomic.Int64
	seq        atomic.Uint64
	log        *logrus.Logger
}

// NewHub creates a new Hub instance.
func NewHub(log *logrus.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client, registerBuffer),
		unregister: make(chan *Client, registerBuffer),
		broadcast:  make(chan subjectBroadcast, broadcastBuffer),
		log:        log,
	}
}

// Run starts the hub event loop. It should be run as a goroutine and exits
// when the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				client.closeSend()
				delete(h.clients, client)
			}
			h.count.Store(0)
			metrics.WSConnections.Set(0)

			return

		case client := <-h.register:
			if len(h.clients) >= maxClients {
				h.log.Warn("connection limit reached, dropping client")
				client.closeSend()
				continue
			}
			h.clients[client] = true
			h.count.Store(int64(len(h.clients)))
			metrics.WSConnections.Set(float64(len(h.clients)))
			h.log.WithField("total", len(h.clients)).Info("client registered")

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.closeSend()
			}
			h.count.Store(int64(len(h.clients)))
			metrics.WSConnections.Set(float64(len(h.clients)))
			h.log.WithField("total", len(h.clients)).Info("client unregistered")

		case b := <-h.broadcast:
			for client := range h.clients {
				if client.SubjectID != "" && client.SubjectID != b.subjectID {
					continue
				}
				select {
				case client.send <- b.msg:
				default:
					// Slow consumer; disconnect rather than block the hub.
					client.closeSend()
					delete(h.clients, client)
				}
			}
			h.count.Store(int64(len(h.clients)))
		}
	}
}

// BroadcastRecord sends an audit.record event to every connected client
// whose subject filter matches. The actual send happens in the Run
// goroutine via a channel; if the channel is full the event is dropped.
func (h *Hub) BroadcastRecord(rec models.AuditRecord) {
	data, err := json.Marshal(rec)
	if err != nil {
		h.log.WithError(err).Error("failed to marshal audit record event")

		return
	}

	evt := Event{
		Type: EventTypeRecord,
		ID:   h.seq.Add(1),
		Data: data,
		Time: rec.Timestamp,
	}

	msg, err := json.Marshal(evt)
	if err != nil {
		h.log.WithError(err).Error("failed to marshal event")

		return
	}

	select {
	case h.broadcast <- subjectBroadcast{subjectID: rec.SubjectID, msg: msg}:
	default:
		h.log.Warn("broadcast channel full, dropping event")
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	default:
		h.log.Warn("register channel full, dropping client")
		c.closeSend()
	}
}

// Unregister removes a client from the hub.
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	default:
		// Run loop already exited; cleanup happened during shutdown.
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	return int(h.count.Load())
}
