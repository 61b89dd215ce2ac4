package models

import "time"

// Category is a row of the categories table.
type Category struct {
	ID        string    `db:"id"`
	Type      string    `db:"type"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Question is a row of the questions table. CategoryID is a foreign key to categories.id.
type Question struct {
	ID         string    `db:"id"`
	CategoryID string    `db:"category_id"`
	Question   string    `db:"question"`
	Answer     string    `db:"answer"`
	Difficulty int       `db:"difficulty"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}
