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

const drinkColumns = `id "id", title "title", recipe "recipe", created_at "created_at", updated_at "updated_at"`

// DrinkDatabaseAdapter implements domain.DrinkRepository using sqlx.
type DrinkDatabaseAdapter struct {
	db DBTX
}

// NewDrinkDatabaseAdapter creates a new instance of DrinkDatabaseAdapter
func NewDrinkDatabaseAdapter(db DBTX) domain.DrinkRepository {
	return &DrinkDatabaseAdapter{db: db}
}

// GetAllDrinks implements domain.DrinkRepository
func (a *DrinkDatabaseAdapter) GetAllDrinks(ctx context.Context) ([]*domain.Drink, error) {
	var rows []models.Drink
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, `SELECT `+drinkColumns+` FROM drinks ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to get drinks: %w", err)
	}
	drinks := make([]*domain.Drink, len(rows))
	for i := range rows {
		drinks[i] = toDomainDrink(&rows[i])
	}
	return drinks, nil
}

func (a *DrinkDatabaseAdapter) getOne(ctx context.Context, where string, arg interface{}) (*domain.Drink, error) {
	exec := GetExecutor(ctx, a.db)
	var row models.Drink
	query := exec.Rebind(`SELECT ` + drinkColumns + ` FROM drinks WHERE ` + where)
	if err := exec.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainDrink(&row), nil
}

// GetDrinkByID implements domain.DrinkRepository
func (a *DrinkDatabaseAdapter) GetDrinkByID(ctx context.Context, id string) (*domain.Drink, error) {
	drink, err := a.getOne(ctx, "id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get drink by ID %s: %w", id, err)
	}
	return drink, nil
}

// GetDrinkByTitle implements domain.DrinkRepository
func (a *DrinkDatabaseAdapter) GetDrinkByTitle(ctx context.Context, title string) (*domain.Drink, error) {
	drink, err := a.getOne(ctx, "title = ?", title)
	if err != nil {
		return nil, fmt.Errorf("failed to get drink by title %q: %w", title, err)
	}
	return drink, nil
}

// SaveDrink implements domain.DrinkRepository
func (a *DrinkDatabaseAdapter) SaveDrink(ctx context.Context, drink *domain.Drink) error {
	if drink == nil {
		return fmt.Errorf("cannot save nil drink")
	}
	row := toModelDrink(drink)
	if row.ID == "" {
		row.ID = util.NewULID()
	}
	now := time.Now()
	row.CreatedAt = now
	row.UpdatedAt = now

	query := `INSERT INTO drinks (id, title, recipe, created_at, updated_at)
		VALUES (:id, :title, :recipe, :created_at, :updated_at)`
	if _, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, row); err != nil {
		if isUniqueViolation(err) {
			return domain.NewError(domain.CodeConflict, "drink title already exists", err)
		}
		return fmt.Errorf("failed to save drink: %w", err)
	}

	drink.ID = row.ID
	drink.CreatedAt = row.CreatedAt
	drink.UpdatedAt = row.UpdatedAt
	return nil
}

// UpdateDrink implements domain.DrinkRepository
func (a *DrinkDatabaseAdapter) UpdateDrink(ctx context.Context, drink *domain.Drink) error {
	if drink == nil || drink.ID == "" {
		return fmt.Errorf("cannot update drink without ID")
	}
	row := toModelDrink(drink)
	row.UpdatedAt = time.Now()

	query := `UPDATE drinks SET title = :title, recipe = :recipe, updated_at = :updated_at WHERE id = :id`
	result, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, row)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewError(domain.CodeConflict, "drink title already exists", err)
		}
		return fmt.Errorf("failed to update drink %s: %w", drink.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewDrinkNotFoundError(drink.ID)
	}
	drink.UpdatedAt = row.UpdatedAt
	return nil
}

// DeleteDrink implements domain.DrinkRepository
func (a *DrinkDatabaseAdapter) DeleteDrink(ctx context.Context, id string) error {
	exec := GetExecutor(ctx, a.db)
	result, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM drinks WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete drink %s: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewDrinkNotFoundError(id)
	}
	return nil
}

func toDomainDrink(d *models.Drink) *domain.Drink {
	recipe := make([]domain.Ingredient, len(d.Recipe))
	for i, ing := range d.Recipe {
		recipe[i] = domain.Ingredient{Name: ing.Name, Color: ing.Color, Parts: ing.Parts}
	}
	return &domain.Drink{
		ID:        d.ID,
		Title:     d.Title,
		Recipe:    recipe,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toModelDrink(d *domain.Drink) *models.Drink {
	recipe := make(models.Recipe, len(d.Recipe))
	for i, ing := range d.Recipe {
		recipe[i] = models.Ingredient{Name: ing.Name, Color: ing.Color, Parts: ing.Parts}
	}
	return &models.Drink{
		ID:        d.ID,
		Title:     d.Title,
		Recipe:    recipe,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
