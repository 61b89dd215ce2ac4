package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Ingredient is one recipe entry as stored in the recipe column.
type Ingredient struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

// Recipe is stored as a JSON array in a text column.
type Recipe []Ingredient

// Value implements the driver.Valuer interface
func (r Recipe) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (r *Recipe) Scan(value interface{}) error {
	if value == nil {
		*r = Recipe{}
		return nil
	}

	var bytesToParse []byte

	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("Recipe Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*r = Recipe{}
		return nil
	}

	return json.Unmarshal(bytesToParse, r)
}

// Drink is a row of the drinks table.
type Drink struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Recipe    Recipe    `db:"recipe"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
