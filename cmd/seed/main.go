package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"

	"bookstore/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	authors = []string{
		"Frank Herbert", "Ursula K. Le Guin", "Isaac Asimov", "Octavia Butler",
		"Stanislaw Lem", "Agatha Christie", "Gabriel Garcia Marquez", "Toni Morrison",
	}
	genrePool = []string{
		"Sci-Fi", "Fantasy", "Mystery", "History", "Romance",
		"Biography", "Philosophy", "Horror", "Adventure",
	}
	words = []string{
		"Empire", "Shadow", "Garden", "River", "Winter", "Machine",
		"Silence", "Harvest", "Voyage", "Mirror", "Storm", "Archive",
	}
)

func main() {
	count := flag.Int("count", 100, "number of books to insert")
	flag.Parse()

	cfg := config.Load()

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	log.Printf("Seeding %d books...", *count)

	const query = `
		INSERT INTO books (title, author, published_year, genres, stock)
		VALUES ($1, $2, $3, $4, $5)`

	for i := 0; i < *count; i++ {
		title := fmt.Sprintf("The %s of %s", words[rand.Intn(len(words))], words[rand.Intn(len(words))])
		author := authors[rand.Intn(len(authors))]
		year := 1900 + rand.Intn(126)

		n := 1 + rand.Intn(3)
		genres := make([]string, 0, n)
		for _, g := range rand.Perm(len(genrePool))[:n] {
			genres = append(genres, genrePool[g])
		}

		stock := rand.Intn(50)

		if _, err := pool.Exec(ctx, query, title, author, year, genres, stock); err != nil {
			log.Fatalf("insert failed at row %d: %v", i, err)
		}
	}

	log.Printf("Done")
}
