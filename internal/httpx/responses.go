package httpx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// Renderer executes a named template into w.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// TextError answers with a plain-text body of the form "Error: <status>: <err>".
func TextError(w http.ResponseWriter, r *http.Request, statusCode int, err error) {
	level := slog.LevelWarn
	if statusCode >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.Log(r.Context(), level, "request failed",
		slog.String("rqID", RequestIDFrom(r)),
		slog.String("path", r.URL.Path),
		slog.Int("status", statusCode),
		slog.String("err", err.Error()),
	)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)
	fmt.Fprintf(w, "Error: %d: %v", statusCode, err)
}

// HTML renders the named template. The template is executed into a buffer
// first so a failing render answers 404 instead of a truncated page.
func HTML(w http.ResponseWriter, r *http.Request, renderer Renderer, name string, data any) {
	var buf bytes.Buffer
	if err := renderer.Render(&buf, name, data); err != nil {
		TextError(w, r, http.StatusNotFound, fmt.Errorf("render %s: %w", name, err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func JSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
