package httpx

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r)
	}))

	t.Run("generates id", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(requestIDHeader))
	})

	t.Run("keeps caller id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(requestIDHeader, "abc-123")
		h.ServeHTTP(w, r)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
	})

	t.Run("replaces oversized id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(requestIDHeader, strings.Repeat("x", 200))
		h.ServeHTTP(w, r)

		assert.Len(t, seen, 36)
	})
}

func TestRecoveryMiddleware(t *testing.T) {
	h := Chain(AccessLogMiddleware(nil), RecoveryMiddleware)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Error: 500: boom", w.Body.String())
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	h := SecurityHeadersMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "img-src 'self' https:")
}

func TestRateLimitMiddleware(t *testing.T) {
	rl := NewRateLimitMiddleware(0.001, 2)
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(addr string) int {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = addr
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1002"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1000"))
}

func TestClientKey(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.1:5555"
	assert.Equal(t, "192.0.2.1", clientKey(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", clientKey(r))
}

func TestAccessLogMiddleware_RecordsRoute(t *testing.T) {
	metrics := NewMetrics()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /books/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := AccessLogMiddleware(metrics)(mux)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books/42", nil))
	require.Equal(t, http.StatusTeapot, w.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requests.WithLabelValues("GET /books/{id}", "418")))

	srv := httptest.NewServer(metrics.Handler())
	defer srv.Close()
	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "bookshelf_http_requests_total")
}

type failingRenderer struct{}

func (failingRenderer) Render(io.Writer, string, any) error {
	return errors.New("template missing")
}

type staticRenderer string

func (s staticRenderer) Render(w io.Writer, name string, data any) error {
	_, err := io.WriteString(w, string(s))
	return err
}

func TestHTML(t *testing.T) {
	t.Run("render failure is 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		HTML(w, httptest.NewRequest(http.MethodGet, "/", nil), failingRenderer{}, "landing", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Error: 404: render landing: template missing", w.Body.String())
	})

	t.Run("ok", func(t *testing.T) {
		w := httptest.NewRecorder()
		HTML(w, httptest.NewRequest(http.MethodGet, "/", nil), staticRenderer("<p>hi</p>"), "landing", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "<p>hi</p>", w.Body.String())
	})
}

func TestTextError(t *testing.T) {
	w := httptest.NewRecorder()
	TextError(w, httptest.NewRequest(http.MethodGet, "/books/1", nil), http.StatusNotAcceptable, errors.New("not acceptable"))

	assert.Equal(t, http.StatusNotAcceptable, w.Code)
	assert.Equal(t, "Error: 406: not acceptable", w.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
}
