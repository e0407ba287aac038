package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	ListTitles(ctx context.Context, startLetter string, limit, offset int) ([]Title, int, error)
	GetByID(ctx context.Context, id string) (Book, error)
}
