package orders_get

import (
	"net/http"

	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/pkg/middlewares/auth"
	"marketplace/internal/pkg/response"
	"marketplace/pkg/logger"
)

// Handler serves every order listing; the route decides which Lister backs
// it.
type Handler struct {
	log    handlerLogger
	lister Lister
}

func New(log handlerLogger, name string, lister Lister) *Handler {
	handlerLog := log.With(logger.NewField("handler", name))

	return &Handler{
		log:    handlerLog,
		lister: lister,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	who, ok := auth.IdentityFrom(r.Context())
	if !ok {
		response.Error(w, h.log, auth.ErrMissingToken)
		return
	}

	views, err := h.lister.List(r.Context(), who)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromOrderViews(views))
}
