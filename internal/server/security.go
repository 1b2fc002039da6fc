package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mt2web/mt2web/internal/auth"
	"github.com/mt2web/mt2web/internal/logger"
)

// TokenVerifier resolves a player bearer token to the character it was issued for
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

// AdminAuthMiddleware requires the operator API key
func AdminAuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !validAPIKey(r, apiKey) {
				rejectAuth(w, r, trustedProxies, detector, "api_key")
				return
			}
			ctx := auth.WithPrincipal(r.Context(), auth.Principal{Admin: true})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PlayerAuthMiddleware accepts either the operator API key or a player bearer
// token. With allowQueryToken the token may also come from the access_token
// query parameter.
func PlayerAuthMiddleware(verifier TokenVerifier, apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector, allowQueryToken bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get(HeaderAPIKey) != "" {
				if !validAPIKey(r, apiKey) {
					rejectAuth(w, r, trustedProxies, detector, "api_key")
					return
				}
				ctx := auth.WithPrincipal(r.Context(), auth.Principal{Admin: true})
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			token := bearerToken(r)
			if token == "" && allowQueryToken {
				token = r.URL.Query().Get(QueryAccessToken)
			}
			if token == "" || verifier == nil {
				rejectAuth(w, r, trustedProxies, detector, "bearer")
				return
			}

			characterID, err := verifier.Verify(token)
			if err != nil {
				logger.FromContext(r.Context()).Debug("Token rejected", "error", err)
				rejectAuth(w, r, trustedProxies, detector, "bearer")
				return
			}

			ctx := auth.WithPrincipal(r.Context(), auth.Principal{CharacterID: characterID})
			ctx = logger.WithCharacterID(ctx, characterID.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireCharacterAccess rejects callers that may not act as the character
// named by the route parameter
func RequireCharacterAccess(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := auth.FromContext(r.Context())
			if !ok {
				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}
			// Malformed ids fall through to the handler's 400
			id, err := uuid.Parse(chi.URLParam(r, param))
			if err == nil && !principal.CanActAs(id) {
				logger.FromContext(r.Context()).Warn(LogMsgAccessDenied,
					"character_id", id,
					"principal", principal.CharacterID)
				http.Error(w, ErrMsgForbidden, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func validAPIKey(r *http.Request, apiKey string) bool {
	providedKey := r.Header.Get(HeaderAPIKey)
	if apiKey == "" || providedKey == "" {
		return false
	}
	// Use constant time comparison to prevent timing attacks
	return subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) == 1
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get(HeaderAuthorization)
	if len(h) <= len(BearerPrefix) || !strings.EqualFold(h[:len(BearerPrefix)], BearerPrefix) {
		return ""
	}
	return strings.TrimSpace(h[len(BearerPrefix):])
}

func rejectAuth(w http.ResponseWriter, r *http.Request, trustedProxies []string, detector *SuspiciousActivityDetector, scheme string) {
	ip := extractIP(r, trustedProxies)
	detector.RecordFailedAuth(ip)

	logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
		"remote_addr", r.RemoteAddr,
		"path", r.URL.Path,
		"scheme", scheme,
		"ip", ip)

	http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SuspiciousActivityDetector tracks and alerts on suspicious patterns
type SuspiciousActivityDetector struct {
	mu               sync.Mutex
	failedAuthByIP   map[string]int
	requestCountByIP map[string]int
	lastResetTime    time.Time
	maxRequests      int
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return NewSuspiciousActivityDetectorWithLimit(MaxRequestsPerWindow)
}

// NewSuspiciousActivityDetectorWithLimit overrides the per-window request budget
func NewSuspiciousActivityDetectorWithLimit(maxRequests int) *SuspiciousActivityDetector {
	if maxRequests <= 0 {
		maxRequests = MaxRequestsPerWindow
	}
	return &SuspiciousActivityDetector{
		failedAuthByIP:   make(map[string]int),
		requestCountByIP: make(map[string]int),
		lastResetTime:    time.Now(),
		maxRequests:      maxRequests,
	}
}

// RecordFailedAuth records a failed authentication attempt
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetCountsIfNeeded()
	s.failedAuthByIP[ip]++

	if s.failedAuthByIP[ip] >= FailedAuthAlertCount {
		slog.Warn(SecurityAlertFailedAuth,
			"ip", ip,
			"count", s.failedAuthByIP[ip])
	}
}

// RecordRequest records a request for rate monitoring and returns false if rate limit exceeded
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetCountsIfNeeded()
	s.requestCountByIP[ip]++

	if s.requestCountByIP[ip] > s.maxRequests {
		if s.requestCountByIP[ip]%HighRateLogEvery == 0 {
			slog.Warn(SecurityAlertHighRate,
				"ip", ip,
				"count_in_window", s.requestCountByIP[ip])
		}
		return false
	}
	return true
}

// resetCountsIfNeeded resets counters if the time window has passed
// Caller must hold the mutex
func (s *SuspiciousActivityDetector) resetCountsIfNeeded() {
	if time.Since(s.lastResetTime) > DetectorWindow {
		s.requestCountByIP = make(map[string]int)
		s.failedAuthByIP = make(map[string]int)
		s.lastResetTime = time.Now()
	}
}

// SecurityLoggingMiddleware enforces the per-IP request budget
func SecurityLoggingMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)

			if !detector.RecordRequest(ip) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// It only trusts X-Forwarded-For if the request comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	isTrusted := false
	for _, proxy := range trustedProxies {
		if proxy == remoteIP {
			isTrusted = true
			break
		}
	}

	if isTrusted {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// The rightmost entry is the hop that reached the trusted proxy
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
