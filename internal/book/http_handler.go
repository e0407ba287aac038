package book

import (
	"errors"
	"fmt"
	"net/http"

	"bookshelf/internal/httpx"
)

var errNotAcceptable = errors.New("not acceptable")

type HTTPHandler struct {
	service  *Service
	renderer httpx.Renderer
}

func NewHTTPHandler(service *Service, renderer httpx.Renderer) *HTTPHandler {
	return &HTTPHandler{service: service, renderer: renderer}
}

// List handles GET /books?startLetter=&offset=
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	letter := query.Get("startLetter")
	offset := ParseOffset(query.Get("offset"))

	listing, err := h.service.ListByLetter(r.Context(), letter, offset)
	if err != nil {
		httpx.TextError(w, r, http.StatusInternalServerError, err)
		return
	}

	httpx.HTML(w, r, h.renderer, "titles", listing)
}

// Get handles GET /books/{id}. The representation follows the Accept
// header: HTML by default, JSON on request, 406 for anything else.
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	format := httpx.Negotiate(r.Header.Get("Accept"), httpx.MIMEHTML, httpx.MIMEJSON)
	if format == "" {
		httpx.TextError(w, r, http.StatusNotAcceptable, fmt.Errorf("%w: %s", errNotAcceptable, r.Header.Get("Accept")))
		return
	}

	// A missing record is a failed read, not a client error.
	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		httpx.TextError(w, r, http.StatusInternalServerError, err)
		return
	}

	w.Header().Add("Vary", "Accept")
	switch format {
	case httpx.MIMEJSON:
		httpx.JSON(w, http.StatusOK, NewDetailJSON(b))
	default:
		httpx.HTML(w, r, h.renderer, "detail", NewDetailView(b))
	}
}
