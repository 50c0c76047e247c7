package order_accept_put

import (
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/pkg/middlewares/auth"
	"marketplace/internal/pkg/response"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_accept_put"))

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
	orderID := mux.Vars(r)["id"]

	claimed, err := h.service.Claim(r.Context(), orderID, who.ID)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Info("order claimed",
		logger.NewField("order_id", claimed.ID),
		logger.NewField("courier_id", who.ID),
	)
	response.JSON(w, h.log, http.StatusOK, dto.FromOrder(claimed))
}
