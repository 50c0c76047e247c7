package auth

import "marketplace/internal/pkg/apperr"

var (
	ErrMissingToken = apperr.New(apperr.CodeUnauthenticated, "missing bearer token")
	ErrInvalidToken = apperr.New(apperr.CodeUnauthenticated, "invalid or expired token")
	ErrWrongRole    = apperr.New(apperr.CodeForbidden, "your role cannot access this resource")
)
