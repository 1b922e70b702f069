package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/fieldparse"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/parsing"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/storage"
)

const (
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 30 * time.Second
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	handler     http.Handler
	logger      *zap.Logger
	client      llm.Client
	drafts      *storage.Drafts
	shares      *storage.Shares
	sessions    *fieldparse.Manager
	parser      *parsing.Service
	rateLimiter *ratelimit.Limiter
	corsOrigin  string
}

// Config holds server configuration
type Config struct {
	Port           int
	CORSOrigin     string
	RateLimit      float64 // Requests per second per client; 0 disables limiting
	RateBurst      int
	FieldTextLimit int
	ParseTextLimit int
	// SessionIdle is how long an untouched field session is kept. Zero means 30 minutes.
	SessionIdle    time.Duration
}

// New creates a new server instance. client may be nil, in which case the
// endpoints that call the model answer 503. A nil store is replaced with an
// in-memory one.
func New(cfg Config, client llm.Client, store storage.Store, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if store == nil {
		store = storage.NewMemoryStore()
	}
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = "*"
	}
	if cfg.SessionIdle <= 0 {
		cfg.SessionIdle = 30 * time.Minute
	}

	s := &Server{
		logger:      logger,
		client:      client,
		drafts:      storage.NewDrafts(store),
		shares:      storage.NewShares(store),
		parser:      parsing.NewService(client, logger, cfg.ParseTextLimit),
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig(cfg.RateLimit, cfg.RateBurst)),
		corsOrigin:  cfg.CORSOrigin,
	}
	s.sessions = fieldparse.NewManager(s.extractor(cfg.FieldTextLimit), cfg.SessionIdle, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Local text operations
	mux.HandleFunc("POST /resume/parse", s.handleParse)
	mux.HandleFunc("POST /resume/serialize", s.handleSerialize)
	mux.HandleFunc("POST /resume/repair", s.handleRepair)
	mux.HandleFunc("POST /resume/markdown", s.handleMarkdown)
	mux.HandleFunc("POST /resume/translate", s.handleTranslate)
	mux.HandleFunc("POST /resume/diagnose", s.handleDiagnose)
	mux.HandleFunc("POST /resume/score", s.handleScore)
	mux.HandleFunc("POST /resume/match", s.handleMatch)
	mux.HandleFunc("POST /resume/edit", s.handleEdit)
	mux.HandleFunc("POST /resume/upload", s.handleUpload)

	// Model-backed operations
	mux.HandleFunc("POST /resume/auto-parse", s.handleAutoParse)
	mux.HandleFunc("POST /chat/blocks", s.handleChatBlocks)
	mux.HandleFunc("POST /chat", s.handleChat)
	mux.HandleFunc("GET /chat/greeting", s.handleGreeting)

	// Field-by-field sessions
	mux.HandleFunc("POST /field-sessions", s.handleCreateSession)
	mux.HandleFunc("GET /field-sessions/{id}", s.handleGetSession)
	mux.HandleFunc("DELETE /field-sessions/{id}", s.handleDeleteSession)
	mux.HandleFunc("POST /field-sessions/{id}/extract", s.handleSessionExtract)
	mux.HandleFunc("POST /field-sessions/{id}/accept", s.handleSessionAccept)
	mux.HandleFunc("POST /field-sessions/{id}/edit", s.handleSessionEdit)
	mux.HandleFunc("POST /field-sessions/{id}/skip", s.handleSessionSkip)
	mux.HandleFunc("POST /field-sessions/{id}/back", s.handleSessionBack)
	mux.HandleFunc("POST /field-sessions/{id}/stream", s.handleSessionStream)

	// Autosave drafts and saved records
	mux.HandleFunc("GET /drafts/{key}", s.handleGetDraft)
	mux.HandleFunc("PUT /drafts/{key}", s.handlePutDraft)
	mux.HandleFunc("DELETE /drafts/{key}", s.handleDeleteDraft)
	mux.HandleFunc("GET /records/{key}", s.handleGetRecord)
	mux.HandleFunc("PUT /records/{key}", s.handlePutRecord)

	// Share codes
	mux.HandleFunc("POST /shares", s.handleCreateShare)
	mux.HandleFunc("GET /shares/{code}", s.handleGetShare)
	mux.HandleFunc("DELETE /shares/{code}", s.handleDeleteShare)

	s.handler = s.withRateLimit(s.withLogging(s.withCORS(mux)))
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Model calls can be slow
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the fully wrapped request handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// extractor backs field sessions with the model, or fails every step when no
// client is configured.
func (s *Server) extractor(limit int) fieldparse.Extractor {
	if s.client == nil {
		return fieldparse.ExtractorFunc(func(context.Context, fieldparse.Field, string) (string, error) {
			return "", ErrModelUnavailable
		})
	}
	return &fieldparse.LLMExtractor{Client: s.client, Limit: limit}
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	err := g.Wait()
	s.Close()
	s.logger.Info("server stopped")
	return err
}

// Close cancels live field sessions and stops background work. The store is
// owned by the caller and stays open.
func (s *Server) Close() {
	s.rateLimiter.Stop()
	s.sessions.Close()
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; X-Forwarded-For is not trusted.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]any{
		"error":   "rate_limit_exceeded",
		"message": "Rate limit exceeded. Please try again later.",
		"limit":   info.Limit,
	}

	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Round(time.Second).Seconds())
		response["retry_after"] = max(seconds, 1)
		w.Header().Set("Retry-After", strconv.Itoa(max(seconds, 1)))
	}

	s.logger.Warn("rate limit exceeded",
		zap.String("client", s.extractClientID(r)),
		zap.String("path", r.URL.Path),
		zap.Int("limit", info.Limit))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status": "ok",
		"model":  s.client != nil,
	})
}

// decodeBody decodes a JSON request body into v
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// handleError maps err to a status and writes it. Server-side failures are logged.
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	s.errorResponse(w, status, err.Error())
}
