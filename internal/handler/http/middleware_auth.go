package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/muzaparoff/rest-api-exam/internal/logger"
	"github.com/muzaparoff/rest-api-exam/internal/utils"
)

// withOptionalAuth resolves the caller's identity when a bearer token is
// presented, without ever rejecting the request. A valid token stores the
// username in the request context under [utils.UsernameCtxKey] and stamps it
// on the request-scoped logger; an absent, malformed, or invalid token
// leaves the request anonymous.
//
// Identity on this API is informational: mutations are attributed in the
// access log when the caller authenticated, but authentication is enforced
// nowhere except token issuance itself.
func (h *Handler) withOptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Debug().Err(err).Msg("ignoring malformed authorization header")
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("ignoring invalid bearer token")
			next.ServeHTTP(w, r)
			return
		}

		// Store the authenticated username in the context so downstream
		// handlers can attribute the request without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UsernameCtxKey, token.Username)

		l := logger.FromContext(ctx).With().Str("username", token.Username).Logger()
		ctx = l.WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// actorFromContext names the caller for mutation audit logs. Requests
// without a valid bearer token act as "anonymous".
func actorFromContext(ctx context.Context) string {
	if username, ok := utils.GetUsernameFromContext(ctx); ok {
		return username
	}
	return "anonymous"
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the form "<scheme> <token>".
//
// It returns [ErrInvalidAuthorizationHeader] if the header has fewer than two
// space-separated parts and [ErrEmptyToken] if the token part is empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
