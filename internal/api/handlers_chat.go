package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rgould/citeview/internal/chat"
)

// messageView is a transcript entry with its content pre-resolved into
// marker segments and rendered HTML.
type messageView struct {
	chat.Message
	Segments []chat.Segment `json:"segments"`
	HTML     string         `json:"html,omitempty"`
}

func (s *Server) toView(m chat.Message) messageView {
	v := messageView{
		Message:  m,
		Segments: chat.ResolveMarkers(m.Content, m.Citations),
	}
	html, err := chat.RenderHTML(m.Content)
	if err != nil {
		s.log.Warn("render message html", "error", err)
	} else {
		v.HTML = html
	}
	return v
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	msgs := s.panel.Messages()
	views := make([]messageView, 0, len(msgs))
	for _, m := range msgs {
		views = append(views, s.toView(m))
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": views})
}

type sendRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Content == "" {
		jsonError(w, "content is required", http.StatusBadRequest)
		return
	}

	msg := s.panel.Send(req.Content)
	writeJSON(w, http.StatusCreated, s.toView(msg))
}

// handleActivateCitation resolves a citation and runs the viewer's locate
// on its text. When the text is not found, the response carries a notice
// naming the citation text and its page hint for the blocking alert.
func (s *Server) handleActivateCitation(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "messageID")
	citationID, err := strconv.Atoi(chi.URLParam(r, "citationID"))
	if err != nil {
		jsonError(w, "citation id must be an integer", http.StatusBadRequest)
		return
	}

	msg := s.panel.Message(messageID)
	if msg == nil {
		jsonError(w, "message not found", http.StatusNotFound)
		return
	}
	c := msg.Citation(citationID)
	if c == nil {
		jsonError(w, "citation not found", http.StatusNotFound)
		return
	}

	res := s.viewer.Locate(c.Text)
	if !res.Found {
		writeJSON(w, http.StatusOK, map[string]any{
			"found":  false,
			"notice": chat.Notice{Text: c.Text, Page: c.Page},
		})
		return
	}
	writeJSON(w, http.StatusOK, res)
}
