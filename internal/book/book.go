package book

import (
	"errors"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// Book represents a book entity.
type Book struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	PublishedYear int      `json:"published_year"`
	Genres        []string `json:"genres"`
	Stock         int      `json:"stock"`
}

// Query defines the search filter and pagination window for listing books.
type Query struct {
	Search string
	Limit  int
	Offset int
}
