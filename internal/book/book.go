package book

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// PageSize is the number of titles shown per listing page.
const PageSize = 10

// Book represents one row of the catalog. Authors and Genres hold the raw
// pipe-delimited column values.
type Book struct {
	ID          string
	Title       string
	Authors     string
	Description string
	Pages       int
	Rating      float64
	RatingCount int
	Genres      string
	ImageURL    string
}

// Title is the projection used by the listing page.
type Title struct {
	ID    string
	Title string
}

// AuthorList splits the pipe-delimited author column.
func (b Book) AuthorList() []string {
	return splitPipe(b.Authors)
}

// GenreList splits the pipe-delimited genre column.
func (b Book) GenreList() []string {
	return splitPipe(b.Genres)
}

func splitPipe(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, "|") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
