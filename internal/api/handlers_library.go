package api

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"documents": s.lib.List()})
}

type openRequest struct {
	Name string `json:"name"`
}

// handleOpenDocument renders a library document and installs it in the
// viewer. Render failures come straight from the rendering library.
func (s *Server) handleOpenDocument(w http.ResponseWriter, r *http.Request) {
	var req openRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		jsonError(w, "name is required", http.StatusBadRequest)
		return
	}

	path, err := s.lib.Path(req.Name)
	if err != nil {
		jsonError(w, err.Error(), http.StatusNotFound)
		return
	}

	doc, err := s.viewer.Open(path)
	if err != nil {
		jsonError(w, "render failed: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	s.notifyDocument(doc.Title, doc.PageCount())

	writeJSON(w, http.StatusOK, map[string]any{
		"title":      doc.Title,
		"page_count": doc.PageCount(),
		"scale":      s.viewer.Scale(),
		"generation": s.viewer.Generation(),
	})
}
