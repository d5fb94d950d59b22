package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/rgould/citeview/internal/chat"
	"github.com/rgould/citeview/internal/config"
	"github.com/rgould/citeview/internal/library"
	"github.com/rgould/citeview/internal/viewer"
)

// Server is the HTTP API server for citeview.
type Server struct {
	router  chi.Router
	viewer  *viewer.Viewer
	panel   *chat.Panel
	lib     *library.Library
	log     *slog.Logger
	cfg     *config.Config
	cfgPath string

	socketsMu sync.Mutex
	sockets   map[chan wsEvent]struct{}

	// prefsMu guards cfg.Theme and the config file write-back.
	prefsMu sync.Mutex
}

// NewServer creates and configures the HTTP server. cfgPath is where the
// theme preference is written back on change.
func NewServer(vw *viewer.Viewer, panel *chat.Panel, lib *library.Library, log *slog.Logger, cfg *config.Config, cfgPath string) *Server {
	s := &Server{
		viewer:  vw,
		panel:   panel,
		lib:     lib,
		log:     log,
		cfg:     cfg,
		cfgPath: cfgPath,
		sockets: make(map[chan wsEvent]struct{}),
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAllOrigins {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Public endpoints.
	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/ws/chat", s.handleChatSocket)

	// API endpoints, authenticated when an API key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey))
		}

		r.Get("/api/documents", s.handleListDocuments)
		r.Post("/api/documents/open", s.handleOpenDocument)
		r.Get("/api/document", s.handleDocumentMeta)
		r.Get("/api/document/pages", s.handleDocumentPages)

		r.Post("/api/viewer/locate", s.handleLocate)
		r.Post("/api/viewer/zoom", s.handleZoom)

		r.Get("/api/chat/messages", s.handleListMessages)
		r.Post("/api/chat/messages", s.handleSendMessage)
		r.Post("/api/chat/messages/{messageID}/citations/{citationID}/activate", s.handleActivateCitation)

		r.Get("/api/preferences/theme", s.handleGetTheme)
		r.Put("/api/preferences/theme", s.handlePutTheme)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
