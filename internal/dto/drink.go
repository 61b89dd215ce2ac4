package dto

import (
	"bytes"
	"encoding/json"
)

// IngredientShort is the public view of a recipe layer
type IngredientShort struct {
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

// Ingredient is the full recipe layer
type Ingredient struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

// DrinkShort is the public drink representation
type DrinkShort struct {
	ID     string            `json:"id"`
	Title  string            `json:"title"`
	Recipe []IngredientShort `json:"recipe"`
}

// DrinkLong is the detailed drink representation
type DrinkLong struct {
	ID     string       `json:"id"`
	Title  string       `json:"title"`
	Recipe []Ingredient `json:"recipe"`
}

// DrinksShortResponse lists drinks in short form
// @Description Public drink menu
type DrinksShortResponse struct {
	Success bool         `json:"success"`
	Drinks  []DrinkShort `json:"drinks"`
}

// DrinksLongResponse lists drinks in long form
// @Description Detailed drink menu
type DrinksLongResponse struct {
	Success bool        `json:"success"`
	Drinks  []DrinkLong `json:"drinks"`
}

// RecipeInput accepts either a single ingredient object or a list of them.
type RecipeInput []Ingredient

func (r *RecipeInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*r = nil
		return nil
	case len(data) > 0 && data[0] == '{':
		var one Ingredient
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}
		*r = RecipeInput{one}
		return nil
	default:
		var many []Ingredient
		if err := json.Unmarshal(data, &many); err != nil {
			return err
		}
		if many == nil {
			many = []Ingredient{}
		}
		*r = many
		return nil
	}
}

// CreateDrinkRequest represents a request to add a drink
// @Description Request body for creating a drink
type CreateDrinkRequest struct {
	Title  string      `json:"title"`
	Recipe RecipeInput `json:"recipe" swaggertype:"array,object"`
}

// UpdateDrinkRequest patches a drink. Absent fields are left unchanged.
// @Description Request body for updating a drink
type UpdateDrinkRequest struct {
	Title  *string     `json:"title"`
	Recipe RecipeInput `json:"recipe" swaggertype:"array,object"`
}

// DeleteDrinkResponse returns the deleted drink ID
type DeleteDrinkResponse struct {
	Success bool   `json:"success"`
	Delete  string `json:"delete"`
}
