package api

import (
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsEvent is the outgoing WebSocket event format. Type is "message" for a
// transcript append or "document" when a document opens.
type wsEvent struct {
	Type     string       `json:"type"`
	Message  *messageView `json:"message,omitempty"`
	Document *docEvent    `json:"document,omitempty"`
}

type docEvent struct {
	Title     string `json:"title"`
	PageCount int    `json:"page_count"`
}

// handleChatSocket streams transcript appends (including the delayed mock
// replies) and document-open events to the browser.
func (s *Server) handleChatSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade", "error", err)
		return
	}
	defer conn.Close()

	events := make(chan wsEvent, 16)
	s.socketsMu.Lock()
	s.sockets[events] = struct{}{}
	s.socketsMu.Unlock()
	defer func() {
		s.socketsMu.Lock()
		delete(s.sockets, events)
		s.socketsMu.Unlock()
	}()

	msgs, unsubscribe := s.panel.Subscribe()
	defer unsubscribe()

	// Reader goroutine: we send only, but reads detect the close.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case m := <-msgs:
			view := s.toView(m)
			if err := conn.WriteJSON(wsEvent{Type: "message", Message: &view}); err != nil {
				s.log.Warn("websocket write", "error", err)
				return
			}
		case ev := <-events:
			if err := conn.WriteJSON(ev); err != nil {
				s.log.Warn("websocket write", "error", err)
				return
			}
		}
	}
}

// notifyDocument fans a document-open event out to connected sockets.
func (s *Server) notifyDocument(title string, pageCount int) {
	ev := wsEvent{Type: "document", Document: &docEvent{Title: title, PageCount: pageCount}}
	s.socketsMu.Lock()
	defer s.socketsMu.Unlock()
	for ch := range s.sockets {
		select {
		case ch <- ev:
		default:
		}
	}
}
