package book

// DetailView is the template context of the detail page.
type DetailView struct {
	Book
	AuthorNames     []string
	GenreNames      []string
	MultipleAuthors bool
}

func NewDetailView(b Book) DetailView {
	authors := b.AuthorList()
	return DetailView{
		Book:            b,
		AuthorNames:     authors,
		GenreNames:      b.GenreList(),
		MultipleAuthors: len(authors) > 1,
	}
}

// DetailJSON is the JSON representation of the detail route.
type DetailJSON struct {
	BookID      string   `json:"bookId"`
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	Summary     string   `json:"summary"`
	Pages       int      `json:"pages"`
	Rating      float64  `json:"rating"`
	RatingCount int      `json:"ratingCount"`
	Genre       []string `json:"genre"`
	ImageURL    string   `json:"imageUrl"`
}

func NewDetailJSON(b Book) DetailJSON {
	return DetailJSON{
		BookID:      b.ID,
		Title:       b.Title,
		Authors:     b.AuthorList(),
		Summary:     b.Description,
		Pages:       b.Pages,
		Rating:      b.Rating,
		RatingCount: b.RatingCount,
		Genre:       b.GenreList(),
		ImageURL:    b.ImageURL,
	}
}
