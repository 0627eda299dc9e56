package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/genre"
	"library-backend/pkg/cache"
	"library-backend/pkg/database"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) book.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	// Stock changes on every borrow/return, so book reads get a short TTL.
	bookCacheKeyPrefix = "book:"
	cacheTTL           = 1 * time.Minute
)

// selectBooks is the expanded read shape: book row, its author, and the
// genre ids/names aggregated from the junction table.
const selectBooks = `
    SELECT
        bk.id, bk.title, bk.description, bk.isbn, bk.year_published, bk.available_count,
        au.id, au.first_name, au.last_name, au.patronymic,
        COALESCE(g.ids, '{}'::uuid[]), COALESCE(g.names, '{}'::text[])
    FROM books bk
    JOIN authors au ON au.id = bk.author_id
    LEFT JOIN LATERAL (
        SELECT array_agg(ge.id ORDER BY ge.name) AS ids,
               array_agg(ge.name ORDER BY ge.name) AS names
        FROM book_genres bg
        JOIN genres ge ON ge.id = bg.genre_id
        WHERE bg.book_id = bk.id
    ) g ON true
`

func scanBook(row pgx.Row) (*book.Book, error) {
	var b book.Book
	var genreIDs []uuid.UUID
	var genreNames []string

	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Description,
		&b.ISBN,
		&b.YearPublished,
		&b.AvailableCount,
		&b.Author.ID,
		&b.Author.FirstName,
		&b.Author.LastName,
		&b.Author.Patronymic,
		&genreIDs,
		&genreNames,
	)
	if err != nil {
		return nil, err
	}

	b.AuthorID = b.Author.ID
	b.Genres = make([]genre.Genre, 0, len(genreIDs))
	for i := range genreIDs {
		b.Genres = append(b.Genres, genre.Genre{ID: genreIDs[i], Name: genreNames[i]})
	}

	return &b, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book, genreIDs []uuid.UUID) (*book.Book, error) {
	var id uuid.UUID

	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		insert := `
            INSERT INTO books (title, description, isbn, year_published, available_count, author_id)
            VALUES ($1, $2, $3, $4, $5, $6)
            RETURNING id
        `
		if err := tx.QueryRow(
			ctx,
			insert,
			b.Title,
			b.Description,
			b.ISBN,
			b.YearPublished,
			b.AvailableCount,
			b.AuthorID,
		).Scan(&id); err != nil {
			return fmt.Errorf("failed to insert book: %w", err)
		}

		// Link only the genre ids that resolve; unknown ids are dropped
		// without failing the request.
		link := `
            INSERT INTO book_genres (book_id, genre_id)
            SELECT $1, id FROM genres WHERE id = $2
            ON CONFLICT DO NOTHING
        `
		for _, gid := range genreIDs {
			if _, err := tx.Exec(ctx, link, id, gid); err != nil {
				return fmt.Errorf("failed to link genre: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	cacheKey := bookCacheKeyPrefix + id.String()

	var cached book.Book
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := selectBooks + ` WHERE bk.id = $1`

	b, err := scanBook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	countQuery := `SELECT COUNT(*) FROM borrowings WHERE book_id = $1 AND returned_date IS NULL`
	if err := r.pool.QueryRow(ctx, countQuery, id).Scan(&b.BorrowedBooks); err != nil {
		return nil, fmt.Errorf("failed to count open borrowings: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, b, cacheTTL)

	return b, nil
}

func (r *postgresRepository) List(ctx context.Context, filter book.Filter) ([]book.Book, error) {
	var query strings.Builder
	query.WriteString(selectBooks)
	query.WriteString(" WHERE 1=1")

	args := []interface{}{}
	argPos := 1

	if filter.Search != "" {
		query.WriteString(fmt.Sprintf(" AND bk.title LIKE $%d", argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	if filter.AuthorID != nil {
		query.WriteString(fmt.Sprintf(" AND bk.author_id = $%d", argPos))
		args = append(args, *filter.AuthorID)
		argPos++
	}

	if filter.GenreID != nil {
		query.WriteString(fmt.Sprintf(
			" AND EXISTS(SELECT 1 FROM book_genres bg2 WHERE bg2.book_id = bk.id AND bg2.genre_id = $%d)",
			argPos,
		))
		args = append(args, *filter.GenreID)
		argPos++
	}

	query.WriteString(" ORDER BY bk.title ASC")

	rows, err := r.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []book.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	_ = r.cache.Delete(ctx, bookCacheKeyPrefix+id.String())

	return nil
}

// Replenish applies the stock change at the store level so concurrent
// replenishments never lose updates.
func (r *postgresRepository) Replenish(ctx context.Context, id uuid.UUID, qty int) (int, error) {
	query := `
        UPDATE books
        SET available_count = available_count + $2
        WHERE id = $1
        RETURNING available_count
    `

	var newCount int
	err := r.pool.QueryRow(ctx, query, id, qty).Scan(&newCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, book.ErrBookNotFound
		}
		// A negative qty large enough to empty the shelf trips the
		// available_count check constraint.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return 0, book.ErrStockUnderflow
		}
		return 0, fmt.Errorf("failed to replenish book: %w", err)
	}

	_ = r.cache.Delete(ctx, bookCacheKeyPrefix+id.String())

	return newCount, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check book existence: %w", err)
	}

	return exists, nil
}
