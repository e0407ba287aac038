package review

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=review

// Source fetches the raw reviews payload for a title.
type Source interface {
	RawReviews(ctx context.Context, title string) ([]byte, error)
}

// Cache stores raw payloads by title. A miss returns ok == false and a nil
// error.
type Cache interface {
	Get(ctx context.Context, title string) (payload []byte, ok bool, err error)
	Set(ctx context.Context, title string, payload []byte) error
}
