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

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindAll(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Soft delete aware lookups
	FindAllTrashed(ctx context.Context) ([]*entity.Category, error)
	FindByIDWithTrashed(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	Restore(ctx context.Context, id uuid.UUID) error
}

const categoryColumns = `id, name, description, is_active, created_at, updated_at, deleted_at`

type categoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCategoryRepository(db database.PgxIface, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "category")),
	}
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var category entity.Category
	err := row.Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.IsActive,
		&category.CreatedAt,
		&category.UpdatedAt,
		&category.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Create inserts category and fills its timestamps from the stored row.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		category.ID,
		category.Name,
		category.Description,
		category.IsActive,
	).Scan(&category.CreatedAt, &category.UpdatedAt)

	if err != nil {
		r.log.Error("Failed to create category",
			zap.Error(err),
			zap.String("name", category.Name),
		)
		return fmt.Errorf("create category %s: %w", category.Name, err)
	}

	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1 AND deleted_at IS NULL`
	return r.findOne(ctx, query, id)
}

func (r *categoryRepository) FindByIDWithTrashed(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	return r.findOne(ctx, query, id)
}

func (r *categoryRepository) findOne(ctx context.Context, query string, id uuid.UUID) (*entity.Category, error) {
	category, err := scanCategory(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category by ID",
			zap.Error(err),
			zap.String("category_id", id.String()),
		)
		return nil, fmt.Errorf("find category by ID %s: %w", id.String(), err)
	}

	return category, nil
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE deleted_at IS NULL
		ORDER BY created_at, id
	`
	return r.findMany(ctx, query, "find all categories")
}

func (r *categoryRepository) FindAllTrashed(ctx context.Context) ([]*entity.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE deleted_at IS NOT NULL
		ORDER BY deleted_at, id
	`
	return r.findMany(ctx, query, "find trashed categories")
}

func (r *categoryRepository) findMany(ctx context.Context, query, operation string) ([]*entity.Category, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to query categories",
			zap.Error(err),
			zap.String("operation", operation),
		)
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	defer rows.Close()

	categories := []*entity.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			r.log.Error("Failed to scan category row", zap.Error(err))
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	query := `
		UPDATE categories
		SET name = $2, description = $3, is_active = $4, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		category.ID,
		category.Name,
		category.Description,
		category.IsActive,
	).Scan(&category.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("update category %s: %w", category.ID.String(), ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to update category",
			zap.Error(err),
			zap.String("category_id", category.ID.String()),
		)
		return fmt.Errorf("update category %s: %w", category.ID.String(), err)
	}

	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE categories SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete category",
			zap.Error(err),
			zap.String("category_id", id.String()),
		)
		return fmt.Errorf("delete category %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete category %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Category deleted", zap.String("category_id", id.String()))
	return nil
}

func (r *categoryRepository) Restore(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE categories SET deleted_at = NULL, updated_at = NOW() WHERE id = $1 AND deleted_at IS NOT NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to restore category",
			zap.Error(err),
			zap.String("category_id", id.String()),
		)
		return fmt.Errorf("restore category %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("restore category %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Category restored", zap.String("category_id", id.String()))
	return nil
}
