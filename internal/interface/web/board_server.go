package web

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"departure-board-service/internal/domain/entity"
	"departure-board-service/internal/interface/sink"
	"departure-board-service/pkg/logger"
	"departure-board-service/pkg/metrics"
	"departure-board-service/templates"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// BoardServer serves the most recently published board over HTTP. It is
// also a sink, so the processor keeps it current.
type BoardServer struct {
	mu     sync.RWMutex
	latest *entity.Board

	renderer  *templates.BoardRenderer
	metrics   *metrics.Metrics
	logger    logger.Logger
	version   string
	startedAt time.Time
}

// NewBoardServer creates a new board server
func NewBoardServer(renderer *templates.BoardRenderer, metrics *metrics.Metrics, logger logger.Logger, version string) *BoardServer {
	return &BoardServer{
		renderer:  renderer,
		metrics:   metrics,
		logger:    logger,
		version:   version,
		startedAt: time.Now(),
	}
}

func (s *BoardServer) Name() string { return "web" }

// Publish replaces the board being served
func (s *BoardServer) Publish(ctx context.Context, board *entity.Board) error {
	s.mu.Lock()
	s.latest = board
	s.mu.Unlock()
	return nil
}

// Latest returns the board being served, or nil before the first run
func (s *BoardServer) Latest() *entity.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// Routes builds the HTTP handler
func (s *BoardServer) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}))
	r.Get("/api/departures", s.handleDepartures)
	r.Get("/", s.handleIndex)

	return r
}

func (s *BoardServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"uptime":  time.Since(s.startedAt).Round(time.Second).String(),
	}
	if board := s.Latest(); board != nil {
		resp["lastRunId"] = board.RunID
		resp["lastUpdated"] = board.UpdatedAt
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *BoardServer) handleDepartures(w http.ResponseWriter, r *http.Request) {
	board := s.Latest()
	if board == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "board not ready"})
		return
	}

	data, err := sink.MarshalBoard(board)
	if err != nil {
		s.logger.Error("Failed to encode board", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *BoardServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	board := s.Latest()
	if board == nil {
		http.Error(w, "board not ready", http.StatusServiceUnavailable)
		return
	}

	page, err := s.renderer.RenderBytes(board)
	if err != nil {
		s.logger.Error("Failed to render board", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
