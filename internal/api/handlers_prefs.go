package api

import (
	"encoding/json"
	"net/http"

	"github.com/rgould/citeview/internal/config"
)

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	s.prefsMu.Lock()
	theme := s.cfg.Theme
	s.prefsMu.Unlock()
	writeJSON(w, http.StatusOK, map[string]string{"theme": string(theme)})
}

type themeRequest struct {
	Theme string `json:"theme"`
}

// handlePutTheme updates the theme and writes it back to the config file
// so the choice survives restarts.
func (s *Server) handlePutTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	theme := config.Theme(req.Theme)
	if theme != config.ThemeLight && theme != config.ThemeDark {
		jsonError(w, `theme must be "light" or "dark"`, http.StatusBadRequest)
		return
	}

	s.prefsMu.Lock()
	s.cfg.Theme = theme
	if s.cfgPath != "" {
		if err := s.cfg.Save(s.cfgPath); err != nil {
			s.log.Warn("persist theme", "error", err)
		}
	}
	s.prefsMu.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{"theme": string(theme)})
}
