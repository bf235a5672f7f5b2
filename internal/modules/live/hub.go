package live

import (
	"sync"

	"tattooparlor/internal/domain"
	"tattooparlor/internal/observability/metrics"
	"tattooparlor/internal/pkg/logging"
	"tattooparlor/internal/session"
)

const sendBuffer = 32

// client is one websocket connection. Everything written to the socket goes
// through send so that writePump stays the only writer.
type client struct {
	sessionID  string
	visibility session.Visibility
	send       chan *ServerMessage

	closeOnce sync.Once
	done      chan struct{}
}

func newClient(sess *session.Session) *client {
	return &client{
		sessionID:  sess.ID,
		visibility: session.VisibilityFor(sess),
		send:       make(chan *ServerMessage, sendBuffer),
		done:       make(chan struct{}),
	}
}

// enqueue reports false when the client is gone or too slow to keep up.
func (c *client) enqueue(msg *ServerMessage) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *client) close() {
	c.closeOnce.Do(func() { close(c.done) })
}

// Hub tracks open connections and fans out booking changes.
type Hub struct {
	clients map[*client]struct{}
	mutex   sync.RWMutex

	logger  *logging.Logger
	metrics *metrics.LiveMetrics
}

func NewHub(logger *logging.Logger, m *metrics.LiveMetrics) *Hub {
	if logger == nil {
		logger = logging.Default()
	}
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger.With("component", "live"),
		metrics: m,
	}
}

func (h *Hub) Register(c *client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.clients[c] = struct{}{}
	h.metrics.ConnectionOpened()
}

func (h *Hub) Unregister(c *client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		c.close()
		h.metrics.ConnectionClosed()
	}
}

func (h *Hub) GetOnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.clients)
}

// AppointmentChanged broadcasts a confirmed change to every connection that
// can see booking lists. Slow connections are dropped rather than waited on.
func (h *Hub) AppointmentChanged(ev domain.AppointmentEvent) {
	msg := NewBookingChangedEvent(ev)
	h.metrics.ObserveEvent(string(ev.Kind), string(ev.Action))

	h.mutex.RLock()
	var slow []*client
	for c := range h.clients {
		if !c.visibility.CanSeeBookings {
			continue
		}
		if !c.enqueue(msg) {
			slow = append(slow, c)
		}
	}
	h.mutex.RUnlock()

	for _, c := range slow {
		h.logger.Warn("dropping slow websocket client", "session_id", c.sessionID)
		h.Unregister(c)
	}
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for c := range h.clients {
		c.close()
		delete(h.clients, c)
		h.metrics.ConnectionClosed()
	}
}
