package domain

import (
	"strings"
	"time"
)

// Ingredient is one layer of a drink recipe.
type Ingredient struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

// Drink is a coffee shop menu item.
type Drink struct {
	ID        string
	Title     string
	Recipe    []Ingredient
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewDrink creates a new Drink instance
func NewDrink(title string, recipe []Ingredient) *Drink {
	now := time.Now()
	return &Drink{
		Title:     strings.TrimSpace(title),
		Recipe:    recipe,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the drink
func (d *Drink) Validate() error {
	var errs ValidationErrors
	if d.Title == "" {
		errs = append(errs, NewMissingFieldError("title"))
	}
	if len(d.Recipe) == 0 {
		errs = append(errs, NewMissingFieldError("recipe"))
	}
	for _, ing := range d.Recipe {
		if strings.TrimSpace(ing.Name) == "" {
			errs = append(errs, NewMissingFieldError("recipe.name"))
		}
		if strings.TrimSpace(ing.Color) == "" {
			errs = append(errs, NewMissingFieldError("recipe.color"))
		}
		if ing.Parts < 1 || ing.Parts > 100 {
			errs = append(errs, NewOutOfRangeError("recipe.parts", ing.Parts, 1, 100))
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
