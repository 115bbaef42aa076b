// AngelaMos | 2026
// handler.go

package product

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
	farmerOnly := middleware.RequireRole("farmer")

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.With(authenticator, farmerOnly).Get("/farmer", h.ListMine)
		r.Get("/{productID}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticator, farmerOnly)
			r.Post("/", h.Create)
			r.Put("/{productID}", h.Update)
			r.Delete("/{productID}", h.Delete)
		})
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	listings, err := h.service.List(r.Context(), ListParams{
		Category: q.Get("category"),
		Location: q.Get("location"),
		Search:   q.Get("search"),
	})
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToListingResponseList(listings))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := core.ParseID(chi.URLParam(r, "productID"))
	if !ok {
		core.NotFound(w, "product")
		return
	}

	listing, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToListingResponse(listing))
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListByFarmer(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToProductResponseList(products))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := core.DecodeJSON(r, &req); err != nil {
		core.BadRequest(w, core.InputMessage(err))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	p, err := h.service.Create(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.Created(w, ToProductResponse(p))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := core.ParseID(chi.URLParam(r, "productID"))
	if !ok {
		core.NotFound(w, "product")
		return
	}

	var req UpdateProductRequest
	if err := core.DecodeJSON(r, &req); err != nil {
		core.BadRequest(w, core.InputMessage(err))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	p, err := h.service.Update(r.Context(), middleware.GetUserID(r.Context()), id, req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToProductResponse(p))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := core.ParseID(chi.URLParam(r, "productID"))
	if !ok {
		core.NotFound(w, "product")
		return
	}

	if err := h.service.Delete(r.Context(), middleware.GetUserID(r.Context()), id); err != nil {
		h.writeError(w, err)
		return
	}

	core.Message(w, "product deleted successfully")
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "product")
	case errors.Is(err, core.ErrInvalidInput):
		core.BadRequest(w, core.InputMessage(err))
	case errors.Is(err, core.ErrStillReferred):
		core.BadRequest(w, "product has orders, mark it unavailable instead")
	case errors.Is(err, core.ErrUnauthorized):
		core.Unauthorized(w, "access token required")
	default:
		core.InternalServerError(w, err)
	}
}
