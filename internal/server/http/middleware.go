package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/auth"
)

type ctxKey string

const principalKey ctxKey = "principal"

// requestLog tags each request with a short random id, echoes it in the
// X-Request-Id response header and emits one structured log line per request.
func (s *HTTPServer) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := common.MakeRandHexString(8)
		if err == nil {
			w.Header().Set("X-Request-Id", id)
		}
		s.logger.Info(r.Context(), "request", "id", id, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// requireAuth extracts the bearer token, verifies it and stores the resulting
// principal in the request context. A missing header, a malformed one and a
// rejected token all answer the same generic 401 body: the causes are
// deliberately indistinguishable to callers.
func (s *HTTPServer) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		token, err := extractBearerToken(r.Header.Get(common.AuthorizationHeaderName))
		if err != nil {
			s.writeError(r.Context(), w, http.StatusUnauthorized, "authorization error", "token check")
			return
		}

		principal, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			s.logger.Warn(r.Context(), "token rejected", "error", err.Error())
			s.writeError(r.Context(), w, http.StatusUnauthorized, "authorization error", "token check")
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractBearerToken returns the credential from an "Authorization: Bearer
// <token>" header value. The scheme match is case-insensitive.
func extractBearerToken(header string) (string, error) {
	if header == "" {
		return "", common.ErrInvalidToken
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, common.BearerSchema) || token == "" {
		return "", common.ErrInvalidToken
	}

	return token, nil
}

// PrincipalFromContext returns the principal stored by requireAuth.
func PrincipalFromContext(ctx context.Context) (*auth.Principal, bool) {
	p, ok := ctx.Value(principalKey).(*auth.Principal)
	return p, ok
}
