package review

import (
	"net/http"

	"bookshelf/internal/httpx"
)

type HTTPHandler struct {
	service  *Service
	renderer httpx.Renderer
}

func NewHTTPHandler(service *Service, renderer httpx.Renderer) *HTTPHandler {
	return &HTTPHandler{service: service, renderer: renderer}
}

// Get handles GET /reviews/{title}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")

	result, err := h.service.Lookup(r.Context(), title)
	if err != nil {
		httpx.TextError(w, r, http.StatusInternalServerError, err)
		return
	}

	httpx.HTML(w, r, h.renderer, "reviews", result)
}
