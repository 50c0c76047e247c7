package delivery

import "marketplace/internal/pkg/apperr"

var ErrInvalidCourierID = apperr.New(apperr.CodeInvalidInput, "invalid courier id")
