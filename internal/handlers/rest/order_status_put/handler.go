package order_status_put

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/pkg/apperr"
	"marketplace/internal/pkg/middlewares/auth"
	"marketplace/internal/pkg/response"
	"marketplace/pkg/logger"
)

var errMalformedBody = apperr.New(apperr.CodeInvalidInput, "malformed JSON body")

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_status_put"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	who, ok := auth.IdentityFrom(r.Context())
	if !ok {
		response.Error(w, h.log, auth.ErrMissingToken)
		return
	}

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, h.log, errMalformedBody)
		return
	}

	updated, err := h.service.UpdateStatus(r.Context(), mux.Vars(r)["id"], entities.OrderStatus(req.Status), who)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromOrder(updated))
}
