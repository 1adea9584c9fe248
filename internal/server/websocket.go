package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/claude/liftlog/internal/eventlog"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Same-origin checks are pointless behind the permissive CORS policy.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const wsWriteTimeout = 10 * time.Second

// handleSyncEventsWS streams diagnostic event snapshots: the full log on
// connect and again after every new event or reset. Clients that stop
// reading miss intermediate snapshots but always receive a current one next.
func (s *Server) handleSyncEventsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	snapshots := make(chan []eventlog.Event, 1)
	unsubscribe := s.events.Subscribe(func(events []eventlog.Event) {
		for {
			select {
			case snapshots <- events:
				return
			default:
				// Drop the stale snapshot; this one supersedes it.
				select {
				case <-snapshots:
				default:
				}
			}
		}
	})
	defer unsubscribe()

	// Reader goroutine: its only job is noticing the peer went away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	if err := conn.WriteJSON(s.events.List()); err != nil {
		return
	}

	for {
		select {
		case events := <-snapshots:
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteJSON(events); err != nil {
				return
			}
		case <-closed:
			return
		case <-r.Context().Done():
			return
		}
	}
}
