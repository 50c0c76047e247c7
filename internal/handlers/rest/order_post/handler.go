package order_post

import (
	"encoding/json"
	"net/http"

	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/pkg/apperr"
	"marketplace/internal/pkg/middlewares/auth"
	"marketplace/internal/pkg/response"
	"marketplace/internal/service/order"
	"marketplace/pkg/logger"
)

var errMalformedBody = apperr.New(apperr.CodeInvalidInput, "malformed JSON body")

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_post"))

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

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, h.log, errMalformedBody)
		return
	}

	lines := make([]order.OrderLineInput, 0, len(req.OrderItems))
	for _, l := range req.OrderItems {
		lines = append(lines, order.OrderLineInput{MenuItemID: l.MenuItemID, Quantity: l.Quantity})
	}

	created, err := h.service.CreateOrder(r.Context(), order.CreateOrderInput{
		CustomerID:   who.ID,
		RestaurantID: req.RestaurantID,
		Items:        lines,
		Address:      req.CustomerAddress,
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, dto.FromOrder(created))
}
