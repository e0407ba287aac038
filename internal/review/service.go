package review

import (
	"context"
	"log/slog"

	"bookshelf/internal/httpx"
	"bookshelf/internal/platform/nytimes"
)

type Service struct {
	source Source
	cache  Cache
}

// NewService wires the review source. cache may be nil.
func NewService(source Source, cache Cache) *Service {
	return &Service{source: source, cache: cache}
}

// Lookup returns the reviews for title. Cache failures are logged and never
// fail the lookup.
func (s *Service) Lookup(ctx context.Context, title string) (Result, error) {
	op := "review.Service.Lookup"
	rqID := httpx.RequestIDFromContext(ctx)

	if s.cache != nil {
		payload, ok, err := s.cache.Get(ctx, title)
		switch {
		case err != nil:
			slog.Warn("review cache read failed",
				slog.String("op", op),
				slog.String("rqID", rqID),
				slog.String("err", err.Error()),
			)
		case ok:
			res, err := nytimes.DecodeReviews(payload)
			if err == nil {
				slog.Debug("review cache hit", slog.String("op", op), slog.String("rqID", rqID), slog.String("title", title))
				return fromResponse(title, res), nil
			}
			slog.Warn("review cache entry unreadable",
				slog.String("op", op),
				slog.String("rqID", rqID),
				slog.String("err", err.Error()),
			)
		}
	}

	payload, err := s.source.RawReviews(ctx, title)
	if err != nil {
		return Result{}, err
	}
	res, err := nytimes.DecodeReviews(payload)
	if err != nil {
		return Result{}, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, title, payload); err != nil {
			slog.Warn("review cache write failed",
				slog.String("op", op),
				slog.String("rqID", rqID),
				slog.String("err", err.Error()),
			)
		}
	}

	return fromResponse(title, res), nil
}
