package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/borrowing"
	"library-backend/internal/domains/genre"
	"library-backend/internal/shared"
	"library-backend/pkg/cache"
	"library-backend/pkg/database"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) borrowing.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

// Must match the prefix the book repository caches under: every stock
// mutation here invalidates that entry.
const bookCacheKeyPrefix = "book:"

// selectBorrowings is the expanded read shape: loan row, its reader, the
// book with its author, and the genre ids/names from the junction table.
const selectBorrowings = `
    SELECT
        br.id, br.borrowed_date, br.deadline, br.returned_date,
        rd.id, rd.first_name, rd.last_name, rd.patronymic, rd.phone, rd.join_date,
        bk.id, bk.title, bk.description, bk.isbn, bk.year_published, bk.available_count,
        au.id, au.first_name, au.last_name, au.patronymic,
        COALESCE(g.ids, '{}'::uuid[]), COALESCE(g.names, '{}'::text[])
    FROM borrowings br
    JOIN readers rd ON rd.id = br.reader_id
    JOIN books bk ON bk.id = br.book_id
    JOIN authors au ON au.id = bk.author_id
    LEFT JOIN LATERAL (
        SELECT array_agg(ge.id ORDER BY ge.name) AS ids,
               array_agg(ge.name ORDER BY ge.name) AS names
        FROM book_genres bg
        JOIN genres ge ON ge.id = bg.genre_id
        WHERE bg.book_id = bk.id
    ) g ON true
`

func scanBorrowing(row pgx.Row) (*borrowing.Borrowing, error) {
	var b borrowing.Borrowing
	var borrowed, deadline time.Time
	var returned *time.Time
	var genreIDs []uuid.UUID
	var genreNames []string

	err := row.Scan(
		&b.ID,
		&borrowed,
		&deadline,
		&returned,
		&b.Reader.ID,
		&b.Reader.FirstName,
		&b.Reader.LastName,
		&b.Reader.Patronymic,
		&b.Reader.Phone,
		&b.Reader.JoinDate,
		&b.Book.ID,
		&b.Book.Title,
		&b.Book.Description,
		&b.Book.ISBN,
		&b.Book.YearPublished,
		&b.Book.AvailableCount,
		&b.Book.Author.ID,
		&b.Book.Author.FirstName,
		&b.Book.Author.LastName,
		&b.Book.Author.Patronymic,
		&genreIDs,
		&genreNames,
	)
	if err != nil {
		return nil, err
	}

	b.BorrowedDate = shared.NewDateOnly(borrowed)
	b.Deadline = shared.NewDateOnly(deadline)
	if returned != nil {
		d := shared.NewDateOnly(*returned)
		b.ReturnedDate = &d
	}

	b.ReaderID = b.Reader.ID
	b.BookID = b.Book.ID
	b.Book.AuthorID = b.Book.Author.ID
	b.Book.Genres = make([]genre.Genre, 0, len(genreIDs))
	for i := range genreIDs {
		b.Book.Genres = append(b.Book.Genres, genre.Genre{ID: genreIDs[i], Name: genreNames[i]})
	}

	return &b, nil
}

// Create takes one copy off the shelf and records the loan in the same
// transaction. The conditional update is the stock guard: zero affected
// rows means another loan won the last copy.
func (r *postgresRepository) Create(ctx context.Context, b *borrowing.Borrowing) (*borrowing.Borrowing, error) {
	var id uuid.UUID

	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		decrement := `
            UPDATE books
            SET available_count = available_count - 1
            WHERE id = $1 AND available_count > 0
        `
		cmdTag, err := tx.Exec(ctx, decrement, b.BookID)
		if err != nil {
			return fmt.Errorf("failed to decrement stock: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return borrowing.ErrNoCopiesAvailable
		}

		insert := `
            INSERT INTO borrowings (reader_id, book_id, borrowed_date, deadline)
            VALUES ($1, $2, $3, $4)
            RETURNING id
        `
		if err := tx.QueryRow(
			ctx,
			insert,
			b.ReaderID,
			b.BookID,
			b.BorrowedDate.Time,
			b.Deadline.Time,
		).Scan(&id); err != nil {
			return fmt.Errorf("failed to insert borrowing: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = r.cache.Delete(ctx, bookCacheKeyPrefix+b.BookID.String())

	return r.GetByID(ctx, id)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*borrowing.Borrowing, error) {
	query := selectBorrowings + ` WHERE br.id = $1`

	b, err := scanBorrowing(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, borrowing.ErrBorrowingNotFound
		}
		return nil, fmt.Errorf("failed to get borrowing by id: %w", err)
	}

	return b, nil
}

func (r *postgresRepository) List(ctx context.Context, filter borrowing.Filter) ([]borrowing.Borrowing, error) {
	var query strings.Builder
	query.WriteString(selectBorrowings)
	query.WriteString(" WHERE 1=1")

	args := []interface{}{}
	argPos := 1

	if filter.ReaderID != nil {
		query.WriteString(fmt.Sprintf(" AND br.reader_id = $%d", argPos))
		args = append(args, *filter.ReaderID)
		argPos++
	}

	switch filter.Type {
	case borrowing.TypeOpen:
		query.WriteString(" AND br.returned_date IS NULL")
	case borrowing.TypeClosed:
		query.WriteString(" AND br.returned_date IS NOT NULL")
	case borrowing.TypeOverdue:
		query.WriteString(fmt.Sprintf(" AND br.returned_date IS NULL AND br.deadline < $%d", argPos))
		args = append(args, shared.Today().Time)
		argPos++
	}

	query.WriteString(" ORDER BY br.borrowed_date DESC, br.id")

	rows, err := r.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query borrowings: %w", err)
	}
	defer rows.Close()

	borrowings := make([]borrowing.Borrowing, 0)
	for rows.Next() {
		b, err := scanBorrowing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan borrowing: %w", err)
		}
		borrowings = append(borrowings, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating borrowings: %w", err)
	}

	return borrowings, nil
}

// Return closes the loan and puts the copy back. The row lock keeps two
// concurrent returns of the same loan from restocking twice.
func (r *postgresRepository) Return(ctx context.Context, id uuid.UUID, returnedDate shared.DateOnly) error {
	var bookID uuid.UUID

	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var returned *time.Time
		err := tx.QueryRow(ctx,
			`SELECT book_id, returned_date FROM borrowings WHERE id = $1 FOR UPDATE`, id,
		).Scan(&bookID, &returned)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return borrowing.ErrBorrowingNotFound
			}
			return fmt.Errorf("failed to lock borrowing: %w", err)
		}
		if returned != nil {
			return borrowing.ErrAlreadyReturned
		}

		if _, err := tx.Exec(ctx,
			`UPDATE borrowings SET returned_date = $2 WHERE id = $1`, id, returnedDate.Time,
		); err != nil {
			return fmt.Errorf("failed to close borrowing: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`UPDATE books SET available_count = available_count + 1 WHERE id = $1`, bookID,
		); err != nil {
			return fmt.Errorf("failed to restore stock: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	_ = r.cache.Delete(ctx, bookCacheKeyPrefix+bookID.String())

	return nil
}

// Update rewrites only the provided date fields. Stock is deliberately
// untouched: this is a record correction, not a return.
func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req *borrowing.EditBorrowingRequest) error {
	var set []string
	args := []interface{}{id}
	argPos := 2

	if req.Deadline != nil {
		set = append(set, fmt.Sprintf("deadline = $%d", argPos))
		args = append(args, req.Deadline.Time)
		argPos++
	}
	if req.ReturnedDate != nil {
		set = append(set, fmt.Sprintf("returned_date = $%d", argPos))
		args = append(args, req.ReturnedDate.Time)
		argPos++
	}

	if len(set) == 0 {
		// Nothing to change; still report a missing loan.
		var exists bool
		err := r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM borrowings WHERE id = $1)`, id,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check borrowing existence: %w", err)
		}
		if !exists {
			return borrowing.ErrBorrowingNotFound
		}
		return nil
	}

	query := fmt.Sprintf("UPDATE borrowings SET %s WHERE id = $1", strings.Join(set, ", "))

	cmdTag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update borrowing: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return borrowing.ErrBorrowingNotFound
	}

	return nil
}

// Delete removes the loan; an open loan also hands its copy back so the
// stock count stays consistent with the remaining records.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var bookID uuid.UUID

	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var returned *time.Time
		err := tx.QueryRow(ctx,
			`SELECT book_id, returned_date FROM borrowings WHERE id = $1 FOR UPDATE`, id,
		).Scan(&bookID, &returned)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return borrowing.ErrBorrowingNotFound
			}
			return fmt.Errorf("failed to lock borrowing: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM borrowings WHERE id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete borrowing: %w", err)
		}

		if returned == nil {
			if _, err := tx.Exec(ctx,
				`UPDATE books SET available_count = available_count + 1 WHERE id = $1`, bookID,
			); err != nil {
				return fmt.Errorf("failed to restore stock: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	_ = r.cache.Delete(ctx, bookCacheKeyPrefix+bookID.String())

	return nil
}
