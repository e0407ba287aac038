package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"strings"

	"bookshelf/internal/config"
	"bookshelf/internal/platform/postgres"

	"github.com/jackc/pgx/v5"
)

var (
	words = []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Science", "Nature", "Technology", "History", "Future",
		"Past", "Present", "Reality", "Imagination", "Wisdom", "Life", "Death",
		"Light", "Darkness", "World", "Universe", "Time", "Space", "Mind", "Soul",
	}
	openers = []string{
		"A", "Beyond", "Counting", "Dear", "Every", "Falling", "Gone", "Half", "Into",
		"Just", "Keeping", "Lost", "Many", "Night", "Old", "Perfect", "Quiet", "Rise",
		"Seven", "The", "Under", "Voices", "Where", "Xenia", "Yellow", "Zero",
		"1984", "2001", "3 Cups", "4 Seasons", "5 Days", "6 Feet", "7 Habits", "8 Bells", "9 Lives", "0 Hour",
	}
	authors = []string{
		"Ann Leckie", "Octavia Butler", "Ted Chiang", "Ursula K. Le Guin", "Kazuo Ishiguro",
		"Toni Morrison", "Neil Gaiman", "Terry Pratchett", "Jhumpa Lahiri", "Chinua Achebe",
	}
	genres = []string{"Fiction", "Science Fiction", "Fantasy", "History", "Mystery", "Romance", "Poetry", "Classics"}
)

func main() {
	count := flag.Int("count", 2000, "Number of books to generate")
	flag.Parse()

	cfg, err := config.Load(nil)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	log.Printf("Generating %d books...", *count)

	rows := make([][]any, 0, *count)
	for i := 0; i < *count; i++ {
		title := fmt.Sprintf("%s %s %d", openers[rand.Intn(len(openers))], words[rand.Intn(len(words))], i+1)
		rows = append(rows, []any{
			fmt.Sprintf("seed-%06d", i+1),
			title,
			pick(authors, 1+rand.Intn(2)),
			fmt.Sprintf("This is a book about %s.", strings.ToLower(words[rand.Intn(len(words))])),
			100 + rand.Intn(800),
			math.Round((2.5+rand.Float64()*2.5)*100) / 100,
			rand.Intn(100000),
			pick(genres, 1+rand.Intn(3)),
			"",
		})
	}

	// COPY is much faster than individual inserts.
	n, err := pool.CopyFrom(ctx,
		pgx.Identifier{"books"},
		[]string{"book_id", "title", "authors", "description", "pages", "rating", "rating_count", "genres", "image_url"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		log.Fatalf("Failed to insert books: %v", err)
	}
	log.Printf("Successfully inserted %d books!", n)

	var total int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM books").Scan(&total); err != nil {
		log.Fatalf("Failed to count books: %v", err)
	}
	log.Printf("Total books in database: %d", total)
}

// pick joins n distinct random entries with the pipe separator used by the
// authors and genres columns.
func pick(from []string, n int) string {
	idx := rand.Perm(len(from))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = from[j]
	}
	return strings.Join(out, "|")
}
