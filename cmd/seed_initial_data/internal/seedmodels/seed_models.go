package seedmodels

import (
	"encoding/json"
	"fmt"
	"os"

	"trivia-api/internal/domain"
)

// SeedQuestion defines the structure for a question in the JSON seed file.
type SeedQuestion struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
}

// SeedCategory defines the structure for a category in the JSON seed file.
type SeedCategory struct {
	Type      string         `json:"type"`
	Questions []SeedQuestion `json:"questions"`
}

type SeedIngredient struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

type SeedDrink struct {
	Title  string           `json:"title"`
	Recipe []SeedIngredient `json:"recipe"`
}

// SeedData is the top-level document of the seed file.
type SeedData struct {
	Categories []SeedCategory `json:"categories"`
	Drinks     []SeedDrink    `json:"drinks"`
}

// Load reads and validates the seed file at path.
func Load(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes a seed document and checks every entry against the domain rules.
func Parse(raw []byte) (*SeedData, error) {
	var data SeedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed data: %w", err)
	}

	for _, c := range data.Categories {
		if err := domain.NewCategory(c.Type).Validate(); err != nil {
			return nil, fmt.Errorf("category %q: %w", c.Type, err)
		}
		for _, q := range c.Questions {
			// Placeholder category id; the real one is assigned while seeding.
			if err := domain.NewQuestion("seed", q.Question, q.Answer, q.Difficulty).Validate(); err != nil {
				return nil, fmt.Errorf("question %q: %w", q.Question, err)
			}
		}
	}
	for _, d := range data.Drinks {
		if err := d.ToDomain().Validate(); err != nil {
			return nil, fmt.Errorf("drink %q: %w", d.Title, err)
		}
	}
	return &data, nil
}

// ToDomain converts the seed entry into a new domain.Drink.
func (d SeedDrink) ToDomain() *domain.Drink {
	recipe := make([]domain.Ingredient, 0, len(d.Recipe))
	for _, ing := range d.Recipe {
		recipe = append(recipe, domain.Ingredient{Name: ing.Name, Color: ing.Color, Parts: ing.Parts})
	}
	return domain.NewDrink(d.Title, recipe)
}
