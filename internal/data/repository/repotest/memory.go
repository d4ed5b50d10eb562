// Package repotest provides in-memory repositories with the same soft delete
// semantics as the pgx implementations.
package repotest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"video-catalog/internal/data/entity"
	"video-catalog/internal/data/repository"

	"github.com/google/uuid"
)

// NewRepository returns a repository set backed by memory.
func NewRepository() *repository.Repository {
	return &repository.Repository{
		Category: NewCategoryRepository(),
		Genre:    NewGenreRepository(),
	}
}

// storedNow mirrors what a TIMESTAMPTZ column hands back: microsecond
// precision and no monotonic reading.
func storedNow() time.Time {
	return time.Now().Truncate(time.Microsecond)
}

type table[T any] struct {
	mu    sync.Mutex
	order []uuid.UUID
	rows  map[uuid.UUID]*T
	base  func(*T) *entity.Base
}

func newTable[T any](base func(*T) *entity.Base) *table[T] {
	return &table[T]{rows: make(map[uuid.UUID]*T), base: base}
}

func (t *table[T]) insert(row *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.base(row).ID
	if _, exists := t.rows[id]; exists {
		return fmt.Errorf("duplicate key %s", id)
	}
	now := storedNow()
	t.base(row).CreatedAt = now
	t.base(row).UpdatedAt = now
	clone := *row
	t.rows[id] = &clone
	t.order = append(t.order, id)
	return nil
}

func (t *table[T]) find(id uuid.UUID, trashed bool) *T {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok || (!trashed && t.base(row).Trashed()) {
		return nil
	}
	clone := *row
	return &clone
}

func (t *table[T]) list(trashed bool) []*T {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := []*T{}
	for _, id := range t.order {
		row := t.rows[id]
		if t.base(row).Trashed() != trashed {
			continue
		}
		clone := *row
		out = append(out, &clone)
	}
	return out
}

func (t *table[T]) update(row *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.base(row).ID
	current, ok := t.rows[id]
	if !ok || t.base(current).Trashed() {
		return fmt.Errorf("update %s: %w", id, repository.ErrNotFound)
	}
	t.base(row).UpdatedAt = storedNow()
	clone := *row
	t.base(&clone).CreatedAt = t.base(current).CreatedAt
	t.base(&clone).DeletedAt = nil
	t.rows[id] = &clone
	return nil
}

func (t *table[T]) setDeleted(id uuid.UUID, deleted bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok || t.base(row).Trashed() == deleted {
		return fmt.Errorf("%s: %w", id, repository.ErrNotFound)
	}
	now := storedNow()
	if deleted {
		t.base(row).DeletedAt = &now
		return nil
	}
	t.base(row).DeletedAt = nil
	t.base(row).UpdatedAt = now
	return nil
}

// CategoryRepository is an in-memory repository.CategoryRepository.
type CategoryRepository struct {
	rows *table[entity.Category]
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{
		rows: newTable(func(c *entity.Category) *entity.Base { return &c.Base }),
	}
}

func (r *CategoryRepository) Create(_ context.Context, category *entity.Category) error {
	return r.rows.insert(category)
}

func (r *CategoryRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	return r.rows.find(id, false), nil
}

func (r *CategoryRepository) FindAll(_ context.Context) ([]*entity.Category, error) {
	return r.rows.list(false), nil
}

func (r *CategoryRepository) Update(_ context.Context, category *entity.Category) error {
	return r.rows.update(category)
}

func (r *CategoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.rows.setDeleted(id, true)
}

func (r *CategoryRepository) FindAllTrashed(_ context.Context) ([]*entity.Category, error) {
	return r.rows.list(true), nil
}

func (r *CategoryRepository) FindByIDWithTrashed(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	return r.rows.find(id, true), nil
}

func (r *CategoryRepository) Restore(_ context.Context, id uuid.UUID) error {
	return r.rows.setDeleted(id, false)
}

// GenreRepository is an in-memory repository.GenreRepository.
type GenreRepository struct {
	rows *table[entity.Genre]
}

func NewGenreRepository() *GenreRepository {
	return &GenreRepository{
		rows: newTable(func(g *entity.Genre) *entity.Base { return &g.Base }),
	}
}

func (r *GenreRepository) Create(_ context.Context, genre *entity.Genre) error {
	return r.rows.insert(genre)
}

func (r *GenreRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Genre, error) {
	return r.rows.find(id, false), nil
}

func (r *GenreRepository) FindAll(_ context.Context) ([]*entity.Genre, error) {
	return r.rows.list(false), nil
}

func (r *GenreRepository) Update(_ context.Context, genre *entity.Genre) error {
	return r.rows.update(genre)
}

func (r *GenreRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.rows.setDeleted(id, true)
}

func (r *GenreRepository) FindAllTrashed(_ context.Context) ([]*entity.Genre, error) {
	return r.rows.list(true), nil
}

func (r *GenreRepository) FindByIDWithTrashed(_ context.Context, id uuid.UUID) (*entity.Genre, error) {
	return r.rows.find(id, true), nil
}

func (r *GenreRepository) Restore(_ context.Context, id uuid.UUID) error {
	return r.rows.setDeleted(id, false)
}

var (
	_ repository.CategoryRepository = (*CategoryRepository)(nil)
	_ repository.GenreRepository    = (*GenreRepository)(nil)
)
