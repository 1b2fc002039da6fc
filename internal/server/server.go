package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/mt2web/mt2web/internal/character"
	"github.com/mt2web/mt2web/internal/database"
	"github.com/mt2web/mt2web/internal/feed"
	"github.com/mt2web/mt2web/internal/handler"
	"github.com/mt2web/mt2web/internal/logger"
	"github.com/mt2web/mt2web/internal/metrics"
	"github.com/mt2web/mt2web/internal/report"
	"github.com/mt2web/mt2web/internal/work"
)

// Config holds the HTTP surface settings
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	MaxBodyBytes   int64
	RateLimit      int
}

// Dependencies are the services the routes dispatch to
type Dependencies struct {
	DB             database.Pool
	Characters     character.Service
	Works          work.Service
	Reports        report.Service
	Mobs           handler.MobCatalog
	CatalogVersion string
	FeedHub        *feed.Hub
	FeedWebSocket  *feed.WebSocket
	Tokens         TokenVerifier
}

type Server struct {
	httpServer *http.Server
	router     http.Handler
}

// NewServer creates a new Server instance
func NewServer(cfg Config, deps Dependencies) *Server {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}

	r := NewRouter(cfg, deps)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           r,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
		router: r,
	}
}

// NewRouter builds the route tree. Exposed separately so tests can drive it
// through httptest without a listener.
func NewRouter(cfg Config, deps Dependencies) chi.Router {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetectorWithLimit(cfg.RateLimit)
	adminAuth := AdminAuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector)
	playerAuth := PlayerAuthMiddleware(deps.Tokens, cfg.APIKey, cfg.TrustedProxies, detector, false)
	feedAuth := PlayerAuthMiddleware(deps.Tokens, cfg.APIKey, cfg.TrustedProxies, detector, true)
	ownsCharacter := RequireCharacterAccess("id")

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(cfg.MaxBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	if deps.DB != nil {
		r.Get("/readyz", handler.HandleReadyz(deps.DB))
	}
	r.Get("/version", handler.HandleVersion(deps.CatalogVersion))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	mobHandler := handler.NewMobHandler(deps.Mobs)
	characterHandler := handler.NewCharacterHandler(deps.Characters)
	workHandler := handler.NewWorkHandler(deps.Works)
	reportHandler := handler.NewReportHandler(deps.Reports)
	feedHandler := handler.NewFeedHandler(deps.FeedHub, deps.FeedWebSocket)

	r.Route("/api/v1", func(r chi.Router) {
		// JSON routes are gzipped; the live feed streams are not
		r.Group(func(r chi.Router) {
			r.Use(compress)

			r.Get("/mobs", mobHandler.HandleList)
			r.Get("/mobs/{id}", mobHandler.HandleGet)

			r.Get("/characters", characterHandler.HandleList)
			r.With(adminAuth).Post("/characters", characterHandler.HandleCreate)
			r.Get("/characters/by-name/{name}", characterHandler.HandleGetByName)
			r.Get("/characters/{id}", characterHandler.HandleGet)

			r.Route("/characters/{id}/", func(r chi.Router) {
				r.Use(playerAuth, ownsCharacter)

				r.Post("/bank/deposit", characterHandler.HandleDeposit)
				r.Post("/bank/withdraw", characterHandler.HandleWithdraw)

				r.Put("/equipment/{slot}", characterHandler.HandleEquip)
				r.Delete("/equipment/{slot}", characterHandler.HandleUnequip)

				r.Get("/works", workHandler.HandleList)
				r.Post("/works", workHandler.HandleCreate)
				r.Delete("/works/{workID}", workHandler.HandleCancel)

				r.Get("/reports", reportHandler.HandleList)
				r.Post("/reports", reportHandler.HandleCreate)
				r.Get("/reports/unread-count", reportHandler.HandleUnreadCount)
				r.Post("/reports/read-all", reportHandler.HandleMarkAllRead)
				r.Post("/reports/{reportID}/read", reportHandler.HandleMarkRead)
				r.Delete("/reports/{reportID}", reportHandler.HandleDelete)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(adminAuth)

				r.Get("/works/{workID}", workHandler.HandleAdminGet)
				r.Patch("/works/{workID}", workHandler.HandleAdminPatch)
				r.Delete("/characters/{id}", characterHandler.HandleDelete)
				r.Get("/cache/stats", characterHandler.HandleCacheStats)
				r.Get("/feed/stats", feedHandler.HandleStats)
			})
		})

		r.With(feedAuth, ownsCharacter).Get("/characters/{id}/feed", feedHandler.HandleSSE)
		r.With(feedAuth, ownsCharacter).Get("/characters/{id}/feed/ws", feedHandler.HandleWebSocket)
	})

	return r
}

func compress(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	// An upgraded connection reports 101 in the completion log
	rw.statusCode = http.StatusSwitchingProtocols
	rw.written = true
	return h.Hijack()
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		for _, p := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Handler exposes the router, mostly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
