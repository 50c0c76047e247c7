package ping_get

import (
	"net/http"

	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/pkg/response"
	"marketplace/pkg/logger"
)

// Handler is the liveness probe. It never touches dependencies.
type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With(logger.NewField("handler", "ping_get"))

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	message := "pong"
	response.JSON(w, h.log, http.StatusOK, dto.PingResponse{Message: &message})
}
