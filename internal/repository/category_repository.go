package repository

import (
	"database/sql"
	"fmt"

	"trivia-api/internal/domain"

	"github.com/jmoiron/sqlx"
)

// categoryModel mirrors the categories table row.
type categoryModel struct {
	ID   int    `db:"id"`
	Type string `db:"type"`
}

// CategoryDatabaseAdapter implements domain.CategoryRepository using sqlx.DB
type CategoryDatabaseAdapter struct {
	db *sqlx.DB
}

// NewCategoryRepository creates a new instance of CategoryDatabaseAdapter
func NewCategoryRepository(db *sqlx.DB) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db}
}

// GetAll implements domain.CategoryRepository
func (a *CategoryDatabaseAdapter) GetAll() ([]domain.Category, error) {
	var models []categoryModel
	query := `SELECT id, type FROM categories ORDER BY type`

	if err := a.db.Select(&models, query); err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	categories := make([]domain.Category, len(models))
	for i, model := range models {
		categories[i] = domain.Category{ID: model.ID, Type: model.Type}
	}
	return categories, nil
}

// GetByID implements domain.CategoryRepository
func (a *CategoryDatabaseAdapter) GetByID(id int) (*domain.Category, error) {
	var model categoryModel
	query := `SELECT id, type FROM categories WHERE id = $1`

	if err := a.db.Get(&model, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category by id %d: %w", id, err)
	}
	return &domain.Category{ID: model.ID, Type: model.Type}, nil
}
