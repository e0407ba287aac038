package book

import (
	"context"
)

// Listing is one page of titles starting with a letter.
type Listing struct {
	Letter string
	Titles []Title
	Page
}

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListByLetter returns the page of titles starting with letter at offset.
func (s *Service) ListByLetter(ctx context.Context, letter string, offset int) (Listing, error) {
	if offset < 0 {
		offset = 0
	}
	titles, total, err := s.repo.ListTitles(ctx, letter, PageSize, offset)
	if err != nil {
		return Listing{}, err
	}
	return Listing{
		Letter: letter,
		Titles: titles,
		Page:   Paginate(offset, PageSize, total),
	}, nil
}

// GetByID returns a book by its identifier.
func (s *Service) GetByID(ctx context.Context, id string) (Book, error) {
	return s.repo.GetByID(ctx, id)
}
