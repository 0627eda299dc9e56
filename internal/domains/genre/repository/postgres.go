package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/genre"
	"library-backend/pkg/cache"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) genre.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	genreCacheKeyPrefix = "genre:"
	cacheTTL            = 15 * time.Minute
)

var dialect = goqu.Dialect("postgres")

func (r *postgresRepository) Create(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	query := `
        INSERT INTO genres (name)
        VALUES ($1)
        RETURNING id, name
    `

	var created genre.Genre
	err := r.pool.QueryRow(ctx, query, g.Name).Scan(&created.ID, &created.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	cacheKey := genreCacheKeyPrefix + id.String()

	var g genre.Genre
	if found, err := r.cache.Get(ctx, cacheKey, &g); err == nil && found {
		return &g, nil
	}

	query := `SELECT id, name FROM genres WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(&g.ID, &g.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, genre.ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to get genre by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, g, cacheTTL)

	return &g, nil
}

func (r *postgresRepository) List(ctx context.Context, filter genre.Filter) ([]genre.Genre, error) {
	ds := dialect.From("genres").
		Select("id", "name").
		Order(goqu.C("name").Asc()).
		Prepared(true)

	if filter.Search != "" {
		ds = ds.Where(goqu.C("name").Like("%" + filter.Search + "%"))
	}

	sql, args, err := ds.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build genres query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query genres: %w", err)
	}
	defer rows.Close()

	var genres []genre.Genre
	for rows.Next() {
		var g genre.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating genres: %w", err)
	}

	return genres, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete genre: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return genre.ErrGenreNotFound
	}

	_ = r.cache.Delete(ctx, genreCacheKeyPrefix+id.String())

	return nil
}

func (r *postgresRepository) ExistsSimilarName(ctx context.Context, name string) (bool, error) {
	// Symmetric substring probe, case-sensitive: an existing name that
	// contains the candidate, or is contained by it, counts as a duplicate.
	query := `
        SELECT EXISTS(
            SELECT 1 FROM genres
            WHERE name LIKE '%' || $1 || '%'
               OR $1 LIKE '%' || name || '%'
        )
    `

	var exists bool
	if err := r.pool.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check genre name: %w", err)
	}

	return exists, nil
}
