// Package control serves a local HTTP API that drives the gallery from other
// programs. Requests never touch gallery state directly: writes become
// intents delivered to the UI event loop, reads come from the latest
// published snapshot.
package control

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"imagegallery/internal/gallery"
	"imagegallery/internal/intent"
)

// Dispatcher delivers intents to the event loop. *tea.Program satisfies it.
type Dispatcher interface {
	Send(msg tea.Msg)
}

// Server is the HTTP control API.
type Server struct {
	store          *SnapshotStore
	dispatch       Dispatcher
	validator      *gallery.Validator
	allowedOrigins []string

	server   *http.Server
	listener net.Listener
}

// NewServer creates a server listening on addr once started.
func NewServer(addr string, store *SnapshotStore, dispatch Dispatcher, validator *gallery.Validator, allowedOrigins []string) *Server {
	if validator == nil {
		validator = gallery.DefaultValidator()
	}
	s := &Server{
		store:          store,
		dispatch:       dispatch,
		validator:      validator,
		allowedOrigins: allowedOrigins,
	}
	s.server = &http.Server{Addr: addr, Handler: s.Router()}
	return s
}

// Router returns the API handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins(),
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		api.Get("/gallery", s.handleGallery)
		api.Post("/images", s.handleAddImage)
		api.Post("/images/{id}/select", s.handleSelect)
		api.Delete("/selection", s.handleDeleteSelected)
		api.Post("/clear", s.handleClear)
		api.Post("/samples", s.handleSamples)
	})
	return r
}

func (s *Server) origins() []string {
	if len(s.allowedOrigins) == 0 {
		return []string{"*"}
	}
	return s.allowedOrigins
}

// Start binds the listener and serves in a background goroutine.
// Bind errors are returned; serve errors are logged.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("control listen %s: %w", s.server.Addr, err)
	}
	s.listener = ln
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("control: serve: %v", err)
		}
	}()
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Addr returns the bound address, or the configured one before Start.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.server.Addr
}

type addImageRequest struct {
	URL string `json:"url"`
}

type clearRequest struct {
	Confirm bool `json:"confirm"`
}

func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Get())
}

func (s *Server) handleAddImage(w http.ResponseWriter, r *http.Request) {
	var req addImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid payload: %w", err))
		return
	}
	url, err := s.validator.Validate(req.URL)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.dispatch.Send(intent.SubmitURL{URL: url, Source: intent.SourceAPI})
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted", "url": url})
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid image id %q", chi.URLParam(r, "id")))
		return
	}
	if _, ok := s.store.Get().Find(id); !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("image %d not found", id))
		return
	}
	s.dispatch.Send(intent.Select{ID: id, Source: intent.SourceAPI})
	writeJSON(w, http.StatusAccepted, map[string]any{"status": "accepted", "id": id})
}

func (s *Server) handleDeleteSelected(w http.ResponseWriter, r *http.Request) {
	s.dispatch.Send(intent.DeleteSelected{Source: intent.SourceAPI})
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	var req clearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid payload: %w", err))
		return
	}
	if !req.Confirm {
		writeError(w, http.StatusBadRequest, errors.New("clearing the gallery requires \"confirm\": true"))
		return
	}
	s.dispatch.Send(intent.ClearAll{Confirmed: true, Source: intent.SourceAPI})
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func (s *Server) handleSamples(w http.ResponseWriter, r *http.Request) {
	s.dispatch.Send(intent.SeedSamples{Source: intent.SourceAPI})
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{
		"error":  err.Error(),
		"status": status,
	})
}
