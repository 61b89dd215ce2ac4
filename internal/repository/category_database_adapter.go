package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"
	"trivia-api/internal/util"
)

const categoryColumns = `id "id", type "type", created_at "created_at", updated_at "updated_at"`

// CategoryDatabaseAdapter implements domain.CategoryRepository using sqlx.
type CategoryDatabaseAdapter struct {
	db DBTX
}

// NewCategoryDatabaseAdapter creates a new instance of CategoryDatabaseAdapter
func NewCategoryDatabaseAdapter(db DBTX) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db}
}

// GetAllCategories implements domain.CategoryRepository
func (r *CategoryDatabaseAdapter) GetAllCategories(ctx context.Context) ([]*domain.Category, error) {
	var rows []models.Category
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY id`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	categories := make([]*domain.Category, len(rows))
	for i := range rows {
		categories[i] = toDomainCategory(&rows[i])
	}
	return categories, nil
}

// GetCategoryByID implements domain.CategoryRepository
func (r *CategoryDatabaseAdapter) GetCategoryByID(ctx context.Context, id string) (*domain.Category, error) {
	exec := GetExecutor(ctx, r.db)
	var row models.Category
	query := exec.Rebind(`SELECT ` + categoryColumns + ` FROM categories WHERE id = ?`)
	if err := exec.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category by ID %s: %w", id, err)
	}
	return toDomainCategory(&row), nil
}

// SaveCategory implements domain.CategoryRepository
func (r *CategoryDatabaseAdapter) SaveCategory(ctx context.Context, category *domain.Category) error {
	if category == nil {
		return fmt.Errorf("cannot save nil category")
	}
	now := time.Now()
	row := models.Category{
		ID:        category.ID,
		Type:      category.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if row.ID == "" {
		row.ID = util.NewULID()
	}

	query := `INSERT INTO categories (id, type, created_at, updated_at)
		VALUES (:id, :type, :created_at, :updated_at)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, row); err != nil {
		if isUniqueViolation(err) {
			return domain.NewError(domain.CodeConflict, "category type already exists", err)
		}
		return fmt.Errorf("failed to save category: %w", err)
	}

	category.ID = row.ID
	category.CreatedAt = row.CreatedAt
	category.UpdatedAt = row.UpdatedAt
	return nil
}

func toDomainCategory(c *models.Category) *domain.Category {
	return &domain.Category{
		ID:        c.ID,
		Type:      c.Type,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
