// Package server exposes the difficulty estimator as a JSON REST API.
//
// Endpoints:
//
//	POST /api/analyze           body: {"text":"..."}
//	POST /api/analyze/detailed  body: {"text":"..."}
//	GET  /api/word?word=<word>[&level=<level>]
//	POST /api/unused            body: {"level":"A1","text":"..."}
//	GET  /api/healthz
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"github.com/straygizmo/gocefrizer/internal/analyze"
	"github.com/straygizmo/gocefrizer/internal/config"
	vlog "github.com/straygizmo/gocefrizer/internal/log"
	"github.com/straygizmo/gocefrizer/internal/resources"
)

// Server wires the analyzer behind HTTP handlers with CORS and rate
// limiting.
type Server struct {
	analyzer *analyze.Analyzer
	cfg      config.ServerConfig
	limiter  *rate.Limiter
	log      *vlog.Logger
}

// New builds a Server. A non-positive rate limit disables throttling.
func New(a *analyze.Analyzer, cfg config.ServerConfig, logger *vlog.Logger) *Server {
	s := &Server{
		analyzer: a,
		cfg:      cfg,
		log:      logger.WithPrefix("server"),
	}
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return s
}

// Handler returns the full middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze/detailed", s.handleDetailed)
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/word", s.handleWord)
	mux.HandleFunc("/api/unused", s.handleUnused)
	mux.HandleFunc("/api/healthz", s.handleHealth)

	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(s.rateLimited(mux))
}

// ListenAndServe blocks serving on the configured address.
func (s *Server) ListenAndServe() error {
	s.log.Printf("listening on %s", s.cfg.Addr)
	return http.ListenAndServe(s.cfg.Addr, s.Handler())
}

func (s *Server) rateLimited(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type textRequest struct {
	Text string `json:"text"`
}

type unusedRequest struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !decodePost(w, r, &req) {
		return
	}
	result, err := s.analyzer.Analyze(req.Text)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleDetailed(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !decodePost(w, r, &req) {
		return
	}
	result, err := s.analyzer.DetailedAnalyze(req.Text)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleWord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	word := r.URL.Query().Get("word")
	if word == "" {
		writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
		return
	}

	result := s.analyzer.WordLevel(word)
	if target := r.URL.Query().Get("level"); target != "" {
		within, err := s.analyzer.CheckWordLevel(word, target)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"CEFR_Level":   result["CEFR_Level"],
			"within_level": within,
		})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleUnused(w http.ResponseWriter, r *http.Request) {
	var req unusedRequest
	if !decodePost(w, r, &req) {
		return
	}
	result, err := s.analyzer.UnusedWords(req.Level, req.Text)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeAnalysisError maps pipeline errors to HTTP status codes.
func (s *Server) writeAnalysisError(w http.ResponseWriter, err error) {
	var lengthErr *analyze.LengthError
	if errors.As(err, &lengthErr) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var loadErr *resources.LoadError
	if errors.As(err, &loadErr) {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.log.Printf("analysis failed: %v", err)
	writeError(w, http.StatusInternalServerError, err.Error())
}

func decodePost(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
