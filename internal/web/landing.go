package web

import (
	"net/http"

	"bookshelf/internal/httpx"
)

// Navigation is the landing page context.
type Navigation struct {
	Letters []string
	Digits  []string
}

func NewNavigation() Navigation {
	nav := Navigation{}
	for c := 'A'; c <= 'Z'; c++ {
		nav.Letters = append(nav.Letters, string(c))
	}
	for c := '0'; c <= '9'; c++ {
		nav.Digits = append(nav.Digits, string(c))
	}
	return nav
}

// LandingHandler handles GET /
func LandingHandler(renderer httpx.Renderer) http.HandlerFunc {
	nav := NewNavigation()
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.HTML(w, r, renderer, "landing", nav)
	}
}
