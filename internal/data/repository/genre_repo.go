package repository

import (
	"context"
	"errors"
	"fmt"

	"video-catalog/internal/data/entity"
	"video-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type GenreRepository interface {
	Create(ctx context.Context, genre *entity.Genre) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error)
	FindAll(ctx context.Context) ([]*entity.Genre, error)
	Update(ctx context.Context, genre *entity.Genre) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Soft delete aware lookups
	FindAllTrashed(ctx context.Context) ([]*entity.Genre, error)
	FindByIDWithTrashed(ctx context.Context, id uuid.UUID) (*entity.Genre, error)
	Restore(ctx context.Context, id uuid.UUID) error
}

const genreColumns = `id, name, is_active, created_at, updated_at, deleted_at`

type genreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGenreRepository(db database.PgxIface, log *zap.Logger) GenreRepository {
	return &genreRepository{
		db:  db,
		log: log.With(zap.String("repository", "genre")),
	}
}

func scanGenre(row pgx.Row) (*entity.Genre, error) {
	var genre entity.Genre
	err := row.Scan(
		&genre.ID,
		&genre.Name,
		&genre.IsActive,
		&genre.CreatedAt,
		&genre.UpdatedAt,
		&genre.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) Create(ctx context.Context, genre *entity.Genre) error {
	query := `
		INSERT INTO genres (id, name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		genre.ID,
		genre.Name,
		genre.IsActive,
	).Scan(&genre.CreatedAt, &genre.UpdatedAt)

	if err != nil {
		r.log.Error("Failed to create genre",
			zap.Error(err),
			zap.String("name", genre.Name),
		)
		return fmt.Errorf("create genre %s: %w", genre.Name, err)
	}

	return nil
}

func (r *genreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error) {
	query := `SELECT ` + genreColumns + ` FROM genres WHERE id = $1 AND deleted_at IS NULL`
	return r.findOne(ctx, query, id)
}

func (r *genreRepository) FindByIDWithTrashed(ctx context.Context, id uuid.UUID) (*entity.Genre, error) {
	query := `SELECT ` + genreColumns + ` FROM genres WHERE id = $1`
	return r.findOne(ctx, query, id)
}

func (r *genreRepository) findOne(ctx context.Context, query string, id uuid.UUID) (*entity.Genre, error) {
	genre, err := scanGenre(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find genre by ID",
			zap.Error(err),
			zap.String("genre_id", id.String()),
		)
		return nil, fmt.Errorf("find genre by ID %s: %w", id.String(), err)
	}

	return genre, nil
}

func (r *genreRepository) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	query := `
		SELECT ` + genreColumns + `
		FROM genres
		WHERE deleted_at IS NULL
		ORDER BY created_at, id
	`
	return r.findMany(ctx, query, "find all genres")
}

func (r *genreRepository) FindAllTrashed(ctx context.Context) ([]*entity.Genre, error) {
	query := `
		SELECT ` + genreColumns + `
		FROM genres
		WHERE deleted_at IS NOT NULL
		ORDER BY deleted_at, id
	`
	return r.findMany(ctx, query, "find trashed genres")
}

func (r *genreRepository) findMany(ctx context.Context, query, operation string) ([]*entity.Genre, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to query genres",
			zap.Error(err),
			zap.String("operation", operation),
		)
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	defer rows.Close()

	genres := []*entity.Genre{}
	for rows.Next() {
		genre, err := scanGenre(rows)
		if err != nil {
			r.log.Error("Failed to scan genre row", zap.Error(err))
			return nil, fmt.Errorf("scan genre row: %w", err)
		}
		genres = append(genres, genre)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate genre rows: %w", err)
	}

	return genres, nil
}

func (r *genreRepository) Update(ctx context.Context, genre *entity.Genre) error {
	query := `
		UPDATE genres
		SET name = $2, is_active = $3, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		genre.ID,
		genre.Name,
		genre.IsActive,
	).Scan(&genre.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("update genre %s: %w", genre.ID.String(), ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to update genre",
			zap.Error(err),
			zap.String("genre_id", genre.ID.String()),
		)
		return fmt.Errorf("update genre %s: %w", genre.ID.String(), err)
	}

	return nil
}

func (r *genreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE genres SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete genre",
			zap.Error(err),
			zap.String("genre_id", id.String()),
		)
		return fmt.Errorf("delete genre %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete genre %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Genre deleted", zap.String("genre_id", id.String()))
	return nil
}

func (r *genreRepository) Restore(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE genres SET deleted_at = NULL, updated_at = NOW() WHERE id = $1 AND deleted_at IS NOT NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to restore genre",
			zap.Error(err),
			zap.String("genre_id", id.String()),
		)
		return fmt.Errorf("restore genre %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("restore genre %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Genre restored", zap.String("genre_id", id.String()))
	return nil
}
