package repository

import (
	"regexp"
	"testing"

	"trivia-api/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryGetAll(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCategoryRepository(db)

	rows := sqlmock.NewRows([]string{"id", "type"}).
		AddRow(2, "Art").
		AddRow(1, "Science")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, type FROM categories ORDER BY type`)).
		WillReturnRows(rows)

	result, err := repo.GetAll()

	require.NoError(t, err)
	assert.Equal(t, []domain.Category{{ID: 2, Type: "Art"}, {ID: 1, Type: "Science"}}, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewCategoryRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, type FROM categories WHERE id = $1`)).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "type"}).AddRow(1, "Science"))

		result, err := repo.GetByID(1)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, domain.Category{ID: 1, Type: "Science"}, *result)
	})

	t.Run("absent returns nil without error", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewCategoryRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, type FROM categories WHERE id = $1`)).
			WithArgs(42).
			WillReturnRows(sqlmock.NewRows([]string{"id", "type"}))

		result, err := repo.GetByID(42)

		require.NoError(t, err)
		assert.Nil(t, result)
	})
}
