package lifecycle

import "marketplace/internal/pkg/apperr"

var (
	ErrStatusRequired    = apperr.New(apperr.CodeInvalidInput, "status is required")
	ErrOrderFinalized    = apperr.New(apperr.CodeInvalidState, "order is already delivered or cancelled")
	ErrInvalidTransition = apperr.New(apperr.CodeInvalidTransition, "status transition is not allowed from the current status")
	ErrRoleForbidden     = apperr.New(apperr.CodeForbidden, "your role cannot perform this status change")
	ErrNotOwner          = apperr.New(apperr.CodeForbidden, "order does not belong to you")
)
