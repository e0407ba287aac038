package review

import "bookshelf/internal/platform/nytimes"

// Review is a single published review of a book.
type Review struct {
	URL             string
	PublicationDate string
	Byline          string
	BookTitle       string
	BookAuthor      string
	Summary         string
}

// Result is what the reviews page shows for a title.
type Result struct {
	Title     string
	Count     int
	Reviews   []Review
	Copyright string
}

// HasReviews is false when the API reported a missing or zero count.
func (r Result) HasReviews() bool {
	return r.Count > 0 && len(r.Reviews) > 0
}

// First returns the first review, or nil when there is none.
func (r Result) First() *Review {
	if !r.HasReviews() {
		return nil
	}
	return &r.Reviews[0]
}

func fromResponse(title string, res *nytimes.ReviewsResponse) Result {
	out := Result{
		Title:     title,
		Count:     res.NumResults,
		Copyright: res.Copyright,
		Reviews:   make([]Review, 0, len(res.Results)),
	}
	for _, r := range res.Results {
		out.Reviews = append(out.Reviews, Review{
			URL:             r.URL,
			PublicationDate: r.PublicationDate,
			Byline:          r.Byline,
			BookTitle:       r.BookTitle,
			BookAuthor:      r.BookAuthor,
			Summary:         r.Summary,
		})
	}
	return out
}
