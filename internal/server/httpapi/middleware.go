package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Asad-NCS/lostandfound/internal/server/auth"
)

type ctxKey int

const claimsKey ctxKey = iota

// requireAuth verifies the Bearer token and stores the parsed claims in the
// request context. Handlers read them back with authClaims.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			s.writeErrorMsg(w, http.StatusUnauthorized, "Authentication required.")
			return
		}

		claims, err := auth.ParseToken(token, []byte(s.config.SecretKey))
		if err != nil {
			s.writeErrorMsg(w, http.StatusUnauthorized, "Invalid or expired token.")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authClaims returns the token claims stored by requireAuth. Nil on routes
// outside the protected subrouter.
func authClaims(ctx context.Context) *auth.Claims {
	c, _ := ctx.Value(claimsKey).(*auth.Claims)
	return c
}

func isAdmin(c *auth.Claims) bool {
	return c != nil && strings.EqualFold(c.Role, "admin")
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
		)
	})
}
