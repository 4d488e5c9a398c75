package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS locations (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	region      TEXT,
	country     TEXT NOT NULL,
	latitude    DOUBLE PRECISION NOT NULL,
	longitude   DOUBLE PRECISION NOT NULL,
	is_favorite BOOLEAN NOT NULL DEFAULT FALSE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (latitude, longitude)
);
CREATE INDEX IF NOT EXISTS idx_locations_name ON locations (name);
CREATE INDEX IF NOT EXISTS idx_locations_favorite ON locations (is_favorite);
`

// PostgresRepository stores saved locations in Postgres via pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository connects to databaseURL and pings it.
func NewPostgresRepository(ctx context.Context, databaseURL string) (*PostgresRepository, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresRepository{pool: pool}, nil
}

// InitSchema creates the locations table; the CLI init-db command.
func (r *PostgresRepository) InitSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, schema)
	return err
}

const locationColumns = `id, name, COALESCE(region, ''), country, latitude, longitude, is_favorite, created_at, updated_at`

func scanLocation(row pgx.Row) (SavedLocation, error) {
	var loc SavedLocation
	err := row.Scan(&loc.ID, &loc.Name, &loc.Region, &loc.Country,
		&loc.Latitude, &loc.Longitude, &loc.IsFavorite, &loc.CreatedAt, &loc.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return SavedLocation{}, ErrNotFound
	}
	return loc, err
}

func (r *PostgresRepository) FindOrCreate(ctx context.Context, loc SavedLocation) (SavedLocation, error) {
	// The coordinate pair is unique; on conflict only updated_at moves.
	row := r.pool.QueryRow(ctx, `
		INSERT INTO locations (name, region, country, latitude, longitude)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5)
		ON CONFLICT (latitude, longitude)
		DO UPDATE SET updated_at = now()
		RETURNING `+locationColumns,
		loc.Name, loc.Region, loc.Country, loc.Latitude, loc.Longitude)
	return scanLocation(row)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (SavedLocation, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+locationColumns+` FROM locations WHERE id = $1`, id)
	return scanLocation(row)
}

func (r *PostgresRepository) FindByCoordinates(ctx context.Context, lat, lon float64) (SavedLocation, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+locationColumns+` FROM locations WHERE latitude = $1 AND longitude = $2`, lat, lon)
	return scanLocation(row)
}

func (r *PostgresRepository) List(ctx context.Context, limit int) ([]SavedLocation, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+locationColumns+` FROM locations ORDER BY updated_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLocations(rows)
}

func (r *PostgresRepository) Favorites(ctx context.Context) ([]SavedLocation, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+locationColumns+` FROM locations WHERE is_favorite ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLocations(rows)
}

func (r *PostgresRepository) ToggleFavorite(ctx context.Context, id int64) (bool, error) {
	var fav bool
	err := r.pool.QueryRow(ctx, `
		UPDATE locations
		SET is_favorite = NOT is_favorite, updated_at = now()
		WHERE id = $1
		RETURNING is_favorite`, id).Scan(&fav)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, ErrNotFound
	}
	return fav, err
}

func (r *PostgresRepository) UpdateDetails(ctx context.Context, id int64, name, country, region string) (SavedLocation, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE locations
		SET name = $2, country = $3, region = NULLIF($4, ''), updated_at = now()
		WHERE id = $1
		RETURNING `+locationColumns, id, name, country, region)
	return scanLocation(row)
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM locations`).Scan(&n)
	return n, err
}

func (r *PostgresRepository) Close() {
	r.pool.Close()
}

func collectLocations(rows pgx.Rows) ([]SavedLocation, error) {
	var locs []SavedLocation
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locs = append(locs, loc)
	}
	return locs, rows.Err()
}
