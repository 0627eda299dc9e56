package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/reader"
)

type readerRepository struct {
	db      *pgxpool.Pool
	dialect goqu.DialectWrapper
}

// NewPostgresRepository creates a PostgreSQL reader repository.
func NewPostgresRepository(db *pgxpool.Pool) reader.Repository {
	return &readerRepository{
		db:      db,
		dialect: goqu.Dialect("postgres"),
	}
}

func (r *readerRepository) Create(ctx context.Context, rd *reader.Reader) (*reader.Reader, error) {
	query := `
		INSERT INTO readers (first_name, last_name, patronymic, phone, join_date)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, join_date`

	err := r.db.QueryRow(ctx, query,
		rd.FirstName, rd.LastName, rd.Patronymic, rd.Phone,
	).Scan(&rd.ID, &rd.JoinDate)
	if err != nil {
		// The service pre-checks the phone, but two concurrent creates can
		// both pass it; the unique constraint is the authority.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, reader.ErrPhoneExists
		}
		return nil, fmt.Errorf("insert reader: %w", err)
	}

	return rd, nil
}

func (r *readerRepository) GetByID(ctx context.Context, id uuid.UUID) (*reader.Reader, error) {
	query := `
		SELECT id, first_name, last_name, patronymic, phone, join_date
		FROM readers
		WHERE id = $1`

	var rd reader.Reader
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rd.ID, &rd.FirstName, &rd.LastName, &rd.Patronymic, &rd.Phone, &rd.JoinDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, reader.ErrReaderNotFound
		}
		return nil, fmt.Errorf("get reader by id: %w", err)
	}

	return &rd, nil
}

func (r *readerRepository) List(ctx context.Context, search string) ([]reader.Reader, error) {
	ds := r.dialect.
		From("readers").
		Select("id", "first_name", "last_name", "patronymic", "phone", "join_date").
		Order(goqu.C("last_name").Asc(), goqu.C("first_name").Asc()).
		Prepared(true)

	if search != "" {
		pattern := "%" + search + "%"
		ds = ds.Where(goqu.Or(
			goqu.C("first_name").Like(pattern),
			goqu.C("last_name").Like(pattern),
		))
	}

	sql, args, err := ds.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build reader list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list readers: %w", err)
	}
	defer rows.Close()

	readers := make([]reader.Reader, 0)
	for rows.Next() {
		var rd reader.Reader
		if err := rows.Scan(
			&rd.ID, &rd.FirstName, &rd.LastName, &rd.Patronymic, &rd.Phone, &rd.JoinDate,
		); err != nil {
			return nil, fmt.Errorf("scan reader: %w", err)
		}
		readers = append(readers, rd)
	}

	return readers, rows.Err()
}

func (r *readerRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM readers WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check reader exists: %w", err)
	}
	return exists, nil
}

func (r *readerRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM readers WHERE phone = $1)`, phone,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check reader phone exists: %w", err)
	}
	return exists, nil
}
