package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	Create(ctx context.Context, p Payload) (Book, error)
	List(ctx context.Context, q Query) ([]Book, int, error)
	GetByID(ctx context.Context, id int64) (Book, error)
	Update(ctx context.Context, id int64, p Payload) (Book, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
