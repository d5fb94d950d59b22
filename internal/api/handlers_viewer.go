package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

type locateRequest struct {
	Text string `json:"text"`
}

// handleLocate searches the rendered text layers for a literal fragment
// and returns the new highlight set plus the scroll target.
func (s *Server) handleLocate(w http.ResponseWriter, r *http.Request) {
	var req locateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	res := s.viewer.Locate(req.Text)
	writeJSON(w, http.StatusOK, res)
}

type zoomRequest struct {
	Direction string `json:"direction"`
}

func (s *Server) handleZoom(w http.ResponseWriter, r *http.Request) {
	var req zoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	var (
		scale float64
		err   error
	)
	switch strings.ToLower(req.Direction) {
	case "in":
		scale, err = s.viewer.ZoomIn()
	case "out":
		scale, err = s.viewer.ZoomOut()
	default:
		jsonError(w, `direction must be "in" or "out"`, http.StatusBadRequest)
		return
	}
	if err != nil {
		jsonError(w, "re-render failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"scale":      scale,
		"generation": s.viewer.Generation(),
	})
}

func (s *Server) handleDocumentMeta(w http.ResponseWriter, r *http.Request) {
	doc := s.viewer.Document()
	if doc == nil {
		jsonError(w, "no document open", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"title":      doc.Title,
		"page_count": doc.PageCount(),
		"scale":      s.viewer.Scale(),
		"generation": s.viewer.Generation(),
	})
}

func (s *Server) handleDocumentPages(w http.ResponseWriter, r *http.Request) {
	doc := s.viewer.Document()
	if doc == nil {
		jsonError(w, "no document open", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"generation": s.viewer.Generation(),
		"pages":      doc.Pages,
	})
}
