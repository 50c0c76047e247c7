package balance

import "marketplace/internal/pkg/apperr"

var (
	ErrInvalidCourierID = apperr.New(apperr.CodeInvalidInput, "invalid courier id")
	ErrInvalidAmount    = apperr.New(apperr.CodeInvalidInput, "credit amount must be positive")
)
