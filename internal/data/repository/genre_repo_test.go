package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"video-catalog/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var genreCols = []string{"id", "name", "is_active", "created_at", "updated_at", "deleted_at"}

func newGenreRepo(t *testing.T) (GenreRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	return NewGenreRepository(mock, zap.NewNop()), mock
}

func TestGenreCreate(t *testing.T) {
	repo, mock := newGenreRepo(t)
	genre := &entity.Genre{
		Base:     entity.Base{ID: uuid.New()},
		Name:     "drama",
		IsActive: true,
	}
	stored := time.Date(2026, 10, 17, 4, 11, 14, 222145000, time.UTC)

	mock.ExpectQuery(`INSERT INTO genres \(id, name, is_active, created_at, updated_at\)\s+VALUES \(\$1, \$2, \$3, NOW\(\), NOW\(\)\)\s+RETURNING created_at, updated_at`).
		WithArgs(genre.ID, "drama", true).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(stored, stored))

	require.NoError(t, repo.Create(context.Background(), genre))
	assert.Equal(t, stored, genre.CreatedAt)
	assert.Equal(t, stored, genre.UpdatedAt)
}

func TestGenreFindByID(t *testing.T) {
	repo, mock := newGenreRepo(t)
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`FROM genres WHERE id = \$1 AND deleted_at IS NULL`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(genreCols).
			AddRow(id, "drama", false, now, now, (*time.Time)(nil)))

	genre, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, genre)
	assert.Equal(t, "drama", genre.Name)
	assert.False(t, genre.IsActive)
}

func TestGenreFindByIDNotFound(t *testing.T) {
	repo, mock := newGenreRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`FROM genres WHERE id = \$1 AND deleted_at IS NULL`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	genre, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, genre)
}

func TestGenreFindByIDQueryFailure(t *testing.T) {
	repo, mock := newGenreRepo(t)
	id := uuid.New()
	boom := errors.New("timeout")

	mock.ExpectQuery(`FROM genres WHERE id = \$1$`).
		WithArgs(id).
		WillReturnError(boom)

	genre, err := repo.FindByIDWithTrashed(context.Background(), id)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, genre)
}

func TestGenreFindAll(t *testing.T) {
	repo, mock := newGenreRepo(t)
	now := time.Now()

	mock.ExpectQuery(`FROM genres\s+WHERE deleted_at IS NULL\s+ORDER BY created_at, id`).
		WillReturnRows(pgxmock.NewRows(genreCols).
			AddRow(uuid.New(), "drama", true, now, now, (*time.Time)(nil)))

	genres, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, genres, 1)
}

func TestGenreFindAllQueryFailure(t *testing.T) {
	repo, mock := newGenreRepo(t)
	boom := errors.New("connection refused")

	mock.ExpectQuery(`FROM genres\s+WHERE deleted_at IS NOT NULL`).
		WillReturnError(boom)

	genres, err := repo.FindAllTrashed(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, genres)
}

func TestGenreUpdate(t *testing.T) {
	repo, mock := newGenreRepo(t)
	genre := &entity.Genre{Base: entity.Base{ID: uuid.New()}, Name: "comedy", IsActive: true}
	stored := time.Date(2026, 10, 17, 4, 11, 14, 222145000, time.UTC)

	mock.ExpectQuery(`UPDATE genres\s+SET name = \$2, is_active = \$3, updated_at = NOW\(\)\s+WHERE id = \$1 AND deleted_at IS NULL\s+RETURNING updated_at`).
		WithArgs(genre.ID, "comedy", true).
		WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(stored))
	mock.ExpectQuery(`UPDATE genres`).
		WithArgs(genre.ID, "comedy", true).
		WillReturnError(pgx.ErrNoRows)

	require.NoError(t, repo.Update(context.Background(), genre))
	assert.Equal(t, stored, genre.UpdatedAt)
	assert.ErrorIs(t, repo.Update(context.Background(), genre), ErrNotFound)
}

func TestGenreDeleteAndRestore(t *testing.T) {
	repo, mock := newGenreRepo(t)
	id := uuid.New()

	mock.ExpectExec(`UPDATE genres SET deleted_at = NOW\(\) WHERE id = \$1 AND deleted_at IS NULL`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE genres SET deleted_at = NULL`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.Delete(context.Background(), id))
	require.NoError(t, repo.Restore(context.Background(), id))
}
