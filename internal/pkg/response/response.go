// Package response writes JSON bodies and maps the apperr taxonomy to HTTP
// status codes.
package response

import (
	"encoding/json"
	"net/http"

	"marketplace/internal/pkg/apperr"
	"marketplace/pkg/logger"
)

type errorLogger interface {
	With(fields ...logger.Field) logger.Logger
}

type ErrorBody struct {
	Code    apperr.Code `json:"code"`
	Message string      `json:"message"`
}

var statusByCode = map[apperr.Code]int{
	apperr.CodeNotFound:          http.StatusNotFound,
	apperr.CodeInvalidInput:      http.StatusBadRequest,
	apperr.CodeInvalidState:      http.StatusBadRequest,
	apperr.CodeInvalidTransition: http.StatusBadRequest,
	apperr.CodeForbidden:         http.StatusForbidden,
	apperr.CodeConflict:          http.StatusConflict,
	apperr.CodeUnauthenticated:   http.StatusUnauthorized,
}

// StatusOf returns the HTTP status for err; anything outside the taxonomy is 500.
func StatusOf(err error) int {
	if status, ok := statusByCode[apperr.CodeOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.With(logger.NewField("error", err)).Error("encode JSON response")
	}
}

// Error writes the taxonomy body for err. Internal errors are logged with
// their detail and answered with a generic message.
func Error(w http.ResponseWriter, log errorLogger, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		log.With(logger.NewField("error", err)).Error("internal error")
	}
	JSON(w, log, status, ErrorBody{
		Code:    apperr.CodeOf(err),
		Message: apperr.MessageOf(err),
	})
}
