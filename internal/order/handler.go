// AngelaMos | 2026
// handler.go

package order

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/efarmlink/efarmlink-api/internal/core"
	"github.com/efarmlink/efarmlink-api/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(authenticator)

		r.With(middleware.RequireRole("buyer")).Post("/", h.Create)
		r.Get("/", h.List)
		r.With(middleware.RequireRole("farmer")).Put("/{orderID}/status", h.UpdateStatus)
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := core.DecodeJSON(r, &req); err != nil {
		core.BadRequest(w, core.InputMessage(err))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	o, err := h.service.Place(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		h.writeError(w, err, "product")
		return
	}

	core.Created(w, ToOrderResponse(o))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	isFarmer := middleware.GetUserRole(ctx) == "farmer"

	views, err := h.service.List(ctx, middleware.GetUserID(ctx), isFarmer)
	if err != nil {
		h.writeError(w, err, "order")
		return
	}

	core.OK(w, ToViewResponseList(views, isFarmer))
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := core.ParseID(chi.URLParam(r, "orderID"))
	if !ok {
		core.NotFound(w, "order")
		return
	}

	var req UpdateStatusRequest
	if err := core.DecodeJSON(r, &req); err != nil {
		core.BadRequest(w, core.InputMessage(err))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	o, err := h.service.UpdateStatus(
		r.Context(),
		middleware.GetUserID(r.Context()),
		id,
		Status(req.Status),
	)
	if err != nil {
		h.writeError(w, err, "order")
		return
	}

	core.OK(w, ToOrderResponse(o))
}

func (h *Handler) writeError(w http.ResponseWriter, err error, resource string) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, resource)
	case errors.Is(err, core.ErrInvalidInput):
		core.BadRequest(w, core.InputMessage(err))
	case errors.Is(err, core.ErrUnauthorized):
		core.Unauthorized(w, "access token required")
	default:
		core.InternalServerError(w, err)
	}
}
