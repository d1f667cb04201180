package book

import (
	"context"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListResult is one page of books plus its pagination metadata.
type ListResult struct {
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
	TotalBooks int    `json:"totalBooks"`
	Books      []Book `json:"books"`
}

// Create stores a new book. Validation happens at the HTTP boundary, so
// the payload is assumed complete here.
func (s *Service) Create(ctx context.Context, p Payload) (Book, error) {
	return s.repo.Create(ctx, p)
}

// List returns one page of books matching search. Page and limit fall
// back to their defaults when not positive. TotalPages is the ceiling of
// totalBooks/limit, which makes it 0 for an empty result set.
func (s *Service) List(ctx context.Context, search string, page, limit int) (ListResult, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	books, total, err := s.repo.List(ctx, Query{
		Search: search,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return ListResult{}, err
	}

	return ListResult{
		Page:       page,
		TotalPages: (total + limit - 1) / limit,
		TotalBooks: total,
		Books:      books,
	}, nil
}

// GetByID returns a book by its id, or ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id int64) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Update merges the supplied fields into an existing book. Fields absent
// from the payload keep their stored values.
func (s *Service) Update(ctx context.Context, id int64, p Payload) (Book, error) {
	return s.repo.Update(ctx, id, p)
}

// Delete removes a book and reports whether a row was actually removed.
// A missing id is not an error.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
