// AngelaMos | 2026
// handler.go

package message

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
	r.Route("/messages", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/", h.Send)
		r.Get("/conversations", h.Conversations)
		r.Get("/{userID}", h.Thread)
	})
}

func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := core.DecodeJSON(r, &req); err != nil {
		core.BadRequest(w, core.InputMessage(err))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	m, err := h.service.Send(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		h.writeError(w, err, "recipient, product or order")
		return
	}

	core.Created(w, ToMessageResponse(m))
}

func (h *Handler) Conversations(w http.ResponseWriter, r *http.Request) {
	convs, err := h.service.Conversations(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		h.writeError(w, err, "conversation")
		return
	}

	core.OK(w, ToConversationResponseList(convs))
}

func (h *Handler) Thread(w http.ResponseWriter, r *http.Request) {
	otherID, ok := core.ParseID(chi.URLParam(r, "userID"))
	if !ok {
		core.NotFound(w, "user")
		return
	}

	msgs, err := h.service.Thread(r.Context(), middleware.GetUserID(r.Context()), otherID)
	if err != nil {
		h.writeError(w, err, "conversation")
		return
	}

	core.OK(w, ToThreadResponse(msgs))
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
