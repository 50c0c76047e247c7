package auth

import (
	"net/http"
	"slices"

	"marketplace/internal/entities"
	"marketplace/internal/pkg/response"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Middleware authenticates the bearer token and stores the identity in the
// request context. Requests without a valid token get 401.
func Middleware(log handlerLogger, verifier *Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := bearerToken(r.Header.Get("Authorization"))
			if err != nil {
				response.Error(w, log, err)
				return
			}

			id, err := verifier.Verify(raw)
			if err != nil {
				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				).Warn("rejected bearer token")
				response.Error(w, log, ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// Require admits only the listed roles. It must run after Middleware.
func Require(log handlerLogger, roles ...entities.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFrom(r.Context())
			if !ok {
				response.Error(w, log, ErrMissingToken)
				return
			}
			if !slices.Contains(roles, id.Role) {
				response.Error(w, log, ErrWrongRole)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
