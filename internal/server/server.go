// Package server provides the HTTP REST API for scoring and optimizing resume profiles.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-optimizer/internal/cache"
	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/injection"
	"github.com/jonathan/resume-optimizer/internal/metrics"
	"github.com/jonathan/resume-optimizer/internal/optimizer"
	"github.com/jonathan/resume-optimizer/internal/posting"
	"github.com/jonathan/resume-optimizer/internal/random"
	"github.com/jonathan/resume-optimizer/internal/rewriting"
	"github.com/jonathan/resume-optimizer/internal/server/middleware"
	"github.com/jonathan/resume-optimizer/internal/server/ratelimit"
	"github.com/jonathan/resume-optimizer/internal/store"
)

// shutdownTimeout bounds graceful shutdown
const shutdownTimeout = 30 * time.Second

// Options carries the optional collaborators of a Server.
// A nil Cache disables score caching and a nil Store disables run history.
type Options struct {
	Cache  cache.Cache
	Store  store.Store
	Loader *posting.Loader
	Random random.Source
	Logger *zap.Logger
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	handler     http.Handler
	cfg         *config.Config
	optimizer   *optimizer.Optimizer
	rewriter    *rewriting.Rewriter
	injector    *injection.Injector
	loader      *posting.Loader
	cache       cache.Cache
	store       store.Store
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	logger      *zap.Logger
}

// New creates a new server instance
func New(cfg *config.Config, opts Options) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	rng := opts.Random
	if rng == nil {
		if cfg.Optimizer.Seed != 0 {
			rng = random.NewSeeded(cfg.Optimizer.Seed)
		} else {
			rng = random.Default()
		}
	}

	loader := opts.Loader
	if loader == nil {
		loader = posting.NewLoader(cfg.Fetch, logger)
	}

	s := &Server{
		cfg:         cfg,
		optimizer:   optimizer.New(rng),
		rewriter:    rewriting.NewRewriter(rng),
		injector:    injection.NewInjector(rng),
		loader:      loader,
		cache:       opts.Cache,
		store:       opts.Store,
		rateLimiter: ratelimit.NewLimiter(ratelimit.FromConfig(cfg.RateLimit)),
		logger:      logger.Named("server"),
	}

	if cfg.Auth.Enabled {
		jwtConfig, err := cfg.Auth.JWT()
		if err != nil {
			s.rateLimiter.Stop()
			return nil, fmt.Errorf("failed to create JWT config: %w", err)
		}
		s.jwtService = NewJWTService(jwtConfig)
	}

	api := http.NewServeMux()
	api.HandleFunc("POST /v1/score", s.handleScore)
	api.HandleFunc("POST /v1/score/batch", s.handleScoreBatch)
	api.HandleFunc("POST /v1/optimize", s.handleOptimize)
	api.HandleFunc("POST /v1/rewrite-bullet", s.handleRewriteBullet)
	api.HandleFunc("POST /v1/suggest-metrics", s.handleSuggestMetrics)
	api.HandleFunc("POST /v1/inject-keywords", s.handleInjectKeywords)
	api.HandleFunc("POST /v1/standardize", s.handleStandardize)
	api.HandleFunc("POST /v1/ats-check", s.handleATSCheck)
	api.HandleFunc("GET /v1/history/{profileID}", s.handleHistory)

	var apiHandler http.Handler = api
	if s.jwtService != nil {
		apiHandler = middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(api)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.Handle("/v1/", apiHandler)

	s.handler = s.withCORS(s.withLogging(s.withMetrics(s.withRateLimit(mux))))
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      s.handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s, nil
}

// Handler returns the fully wrapped HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// JWTService returns the token service, or nil when auth is disabled
func (s *Server) JWTService() *JWTService {
	return s.jwtService
}

// Start listens for requests until ctx is cancelled or the process is signalled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			s.Close()
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	s.Close()
	if err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// Close releases the rate limiter, cache and store
func (s *Server) Close() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			s.logger.Warn("failed to close cache", zap.Error(err))
		}
	}
	if s.store != nil {
		s.store.Close()
	}
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	origin := s.cfg.Server.CORSOrigin
	if origin == "" {
		origin = "*"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging logs each completed request
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)
		next.ServeHTTP(rec, r)
		s.logger.Info("request completed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote", r.RemoteAddr),
		)
	})
}

// withMetrics records request counts and latency per route
func (s *Server) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)
		next.ServeHTTP(rec, r)
		metrics.ObserveRequest(r.Method, routeLabel(r.URL.Path), rec.status, time.Since(start))
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		s.setRateLimitHeaders(w, info)
		if !allowed {
			metrics.RateLimited.WithLabelValues(routeLabel(r.URL.Path)).Inc()
			s.logger.Warn("rate limit exceeded",
				zap.String("client", clientID),
				zap.String("path", r.URL.Path),
				zap.Int("limit", info.Limit),
				zap.Time("reset", info.ResetTime),
			)
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// knownRoutes are the fixed paths reported as metric labels
var knownRoutes = map[string]bool{
	"/health":             true,
	"/metrics":            true,
	"/v1/score":           true,
	"/v1/score/batch":     true,
	"/v1/optimize":        true,
	"/v1/rewrite-bullet":  true,
	"/v1/suggest-metrics": true,
	"/v1/inject-keywords": true,
	"/v1/standardize":     true,
	"/v1/ats-check":       true,
}

// routeLabel maps a request path to a bounded set of metric labels
func routeLabel(path string) string {
	if knownRoutes[path] {
		return path
	}
	if strings.HasPrefix(path, "/v1/history/") {
		return "/v1/history/{profileID}"
	}
	return "other"
}

// statusRecorder captures the response status for middleware
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.wroteHeader {
		r.status = code
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	return r.ResponseWriter.Write(b)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
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
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}
	if !info.ResetTime.IsZero() {
		response["reset_at"] = info.ResetTime.UTC().Format(time.RFC3339)
	}

	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Seconds() + 0.999)
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", fmt.Sprintf("%d", seconds))
	}

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
