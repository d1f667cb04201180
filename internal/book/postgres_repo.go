package book

import (
	"context"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dialectPostgres = "postgres"

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Create(ctx context.Context, p Payload) (Book, error) {
	const query = `
		INSERT INTO books (title, author, published_year, genres, stock)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, author, published_year, genres, stock`

	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query,
		p.Title, p.Author, p.PublishedYear, p.Genres, p.Stock,
	).Scan(&b.ID, &b.Title, &b.Author, &b.PublishedYear, &b.Genres, &b.Stock)
	if err != nil {
		return Book{}, err
	}
	return b, nil
}

// List returns the requested page plus the count of rows matching the
// filter before pagination. The search term matches title, author, or
// any genre element as case-insensitive substrings; rows come back in
// insertion (id) order so paging is stable.
func (r *PostgresRepo) List(ctx context.Context, q Query) ([]Book, int, error) {
	base := goqu.Dialect(dialectPostgres).From("books")
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		base = base.Where(goqu.Or(
			goqu.C("title").ILike(pattern),
			goqu.C("author").ILike(pattern),
			goqu.L("EXISTS (SELECT 1 FROM unnest(genres) AS genre WHERE genre ILIKE ?)", pattern),
		))
	}

	countSQL, countArgs, err := base.Select(goqu.COUNT(goqu.Star())).Prepared(true).ToSQL()
	if err != nil {
		return nil, 0, err
	}

	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL, dataArgs, err := base.
		Select("id", "title", "author", "published_year", "genres", "stock").
		Order(goqu.C("id").Asc()).
		Limit(uint(q.Limit)).
		Offset(uint(q.Offset)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, 0, err
	}

	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	rows, err := r.db.Query(timeoutCtx2, dataSQL, dataArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	books := []Book{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.PublishedYear, &b.Genres, &b.Stock); err != nil {
			return nil, 0, err
		}
		books = append(books, b)
	}
	return books, total, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	const query = `
		SELECT id, title, author, published_year, genres, stock
		FROM books
		WHERE id = $1`

	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&b.ID, &b.Title, &b.Author, &b.PublishedYear, &b.Genres, &b.Stock,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

// Update merges the supplied fields into the stored row in a single
// statement; nil payload fields become NULL and COALESCE keeps the
// prior column value.
func (r *PostgresRepo) Update(ctx context.Context, id int64, p Payload) (Book, error) {
	const query = `
		UPDATE books
		SET title = COALESCE($2, title),
		    author = COALESCE($3, author),
		    published_year = COALESCE($4, published_year),
		    genres = COALESCE($5, genres),
		    stock = COALESCE($6, stock)
		WHERE id = $1
		RETURNING id, title, author, published_year, genres, stock`

	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query,
		id, p.Title, p.Author, p.PublishedYear, p.Genres, p.Stock,
	).Scan(&b.ID, &b.Title, &b.Author, &b.PublishedYear, &b.Genres, &b.Stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) (bool, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	ct, err := r.db.Exec(timeoutCtx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}
