package history

import "marketplace/internal/pkg/apperr"

var (
	ErrInvalidEvent = apperr.New(apperr.CodeInvalidInput, "event has no id, order or status")
	ErrNotParty     = apperr.New(apperr.CodeForbidden, "order does not belong to you")
)
