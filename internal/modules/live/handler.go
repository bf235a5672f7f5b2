package live

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"tattooparlor/internal/observability/metrics"
	"tattooparlor/internal/pkg/logging"
	"tattooparlor/internal/pkg/response"
	"tattooparlor/internal/search"
	"tattooparlor/internal/session"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 4096
)

// Sessions resolves the handle passed as ?token=.
type Sessions interface {
	Resolve(ctx context.Context, handle string) (*session.Session, error)
}

type WSHandler struct {
	hub      *Hub
	sessions Sessions
	searcher *Searcher
	delay    time.Duration
	logger   *logging.Logger
	metrics  *metrics.LiveMetrics
	upgrader websocket.Upgrader
}

type Option func(*WSHandler)

// WithAllowedOrigins restricts the Origin header on upgrade. With no origins
// every origin is accepted.
func WithAllowedOrigins(origins []string) Option {
	return func(h *WSHandler) {
		if len(origins) == 0 {
			return
		}
		h.upgrader.CheckOrigin = func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || slices.Contains(origins, origin)
		}
	}
}

func WithMetrics(m *metrics.LiveMetrics) Option {
	return func(h *WSHandler) { h.metrics = m }
}

func NewWSHandler(hub *Hub, sessions Sessions, searcher *Searcher, delay time.Duration, logger *logging.Logger, opts ...Option) *WSHandler {
	if logger == nil {
		logger = logging.Default()
	}
	h := &WSHandler{
		hub:      hub,
		sessions: sessions,
		searcher: searcher,
		delay:    delay,
		logger:   logger.With("component", "live"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *WSHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/ws", h.HandleWebSocket)
}

// HandleWebSocket upgrades GET /ws?token=<session handle>. Browsers cannot
// set headers on a websocket request, so the handle travels in the query.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	handle := strings.TrimSpace(c.Query("token"))
	if handle == "" {
		response.Error(c, http.StatusUnauthorized, "AUTH_MISSING", "Token is required. Use ?token=<session handle>")
		return
	}

	sess, err := h.sessions.Resolve(c.Request.Context(), handle)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired session")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	cl := newClient(sess)
	h.hub.Register(cl)
	h.logger.Debug("websocket connected", "session_id", sess.ID, "user_id", sess.User.ID)

	searches := newSearchSet(h, sess, cl)
	defer func() {
		searches.close()
		h.hub.Unregister(cl)
		_ = conn.Close()
		h.logger.Debug("websocket disconnected", "session_id", sess.ID)
	}()

	go h.writePump(conn, cl)
	h.readLoop(conn, cl, searches)
}

// writePump is the only goroutine writing to conn.
func (h *WSHandler) writePump(conn *websocket.Conn, cl *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case msg := <-cl.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(msg); err != nil {
				cl.close()
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				cl.close()
				return
			}
		case <-cl.done:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

func (h *WSHandler) readLoop(conn *websocket.Conn, cl *client, searches *searchSet) {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("websocket read failed", "session_id", cl.sessionID, "error", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			cl.enqueue(NewErrorEvent("INVALID_JSON", "Failed to parse message"))
			continue
		}

		switch msg.Type {
		case TypeSearch:
			if err := h.searcher.Validate(msg.Resource, msg.ArtistID); err != nil {
				cl.enqueue(NewErrorEvent("INVALID_SEARCH", err.Error()))
				continue
			}
			searches.submit(msg.Resource, msg.ArtistID, strings.TrimSpace(msg.Query))
		case TypePing:
			cl.enqueue(NewPongEvent())
		default:
			cl.enqueue(NewErrorEvent("UNKNOWN_TYPE", "Unknown message type: "+msg.Type))
		}
	}
}

// searchSet keeps one debouncer per resource (and artist, for galleries) so
// that typing in one search box never cancels another.
type searchSet struct {
	h    *WSHandler
	sess *session.Session
	cl   *client

	mu         sync.Mutex
	debouncers map[string]*search.Debouncer[any]
}

func newSearchSet(h *WSHandler, sess *session.Session, cl *client) *searchSet {
	return &searchSet{h: h, sess: sess, cl: cl, debouncers: make(map[string]*search.Debouncer[any])}
}

func (s *searchSet) submit(resource string, artistID int64, query string) {
	key := resource
	if resource == ResourceGallery {
		key = fmt.Sprintf("%s:%d", resource, artistID)
	}

	s.mu.Lock()
	d, ok := s.debouncers[key]
	if !ok {
		d = s.newDebouncer(resource, artistID)
		s.debouncers[key] = d
	}
	s.mu.Unlock()

	d.Submit(query)
}

func (s *searchSet) newDebouncer(resource string, artistID int64) *search.Debouncer[any] {
	fetch := func(ctx context.Context, q string) (any, error) {
		return s.h.searcher.Search(ctx, s.sess, resource, artistID, q)
	}
	deliver := func(r search.Result[any]) {
		if r.Err != nil {
			if errors.Is(r.Err, context.Canceled) {
				return
			}
			s.h.metrics.ObserveSearch(resource, "error")
			s.h.logger.Warn("live search failed", "resource", resource, "error", r.Err)
			s.cl.enqueue(NewErrorEvent("SEARCH_FAILED", "Search failed, please try again"))
			return
		}
		s.h.metrics.ObserveSearch(resource, "delivered")
		s.cl.enqueue(NewSearchResultsEvent(resource, r.Query, r.Value))
	}
	return search.NewDebouncer(s.h.delay, fetch, deliver,
		search.WithDropHook[any](func(string) { s.h.metrics.ObserveSearch(resource, "stale") }))
}

func (s *searchSet) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.debouncers {
		d.Close()
	}
}
