package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Genres is stored as a JSON array in a text column.
type Genres []string

// Value implements the driver.Valuer interface
func (g Genres) Value() (driver.Value, error) {
	if g == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(g)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (g *Genres) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*g = Genres{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("Genres Scan: unsupported type " + fmt.Sprintf("%T", value))
	}
	if len(raw) == 0 || string(raw) == "null" {
		*g = Genres{}
		return nil
	}
	return json.Unmarshal(raw, g)
}

// Flag is a boolean stored as 0 or 1, which both PostgreSQL SMALLINT and
// Oracle NUMBER(1) columns accept.
type Flag bool

// Value implements the driver.Valuer interface
func (f Flag) Value() (driver.Value, error) {
	if f {
		return int64(1), nil
	}
	return int64(0), nil
}

// Scan implements the sql.Scanner interface
func (f *Flag) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*f = false
	case bool:
		*f = Flag(v)
	case int64:
		*f = v != 0
	case float64:
		*f = v != 0
	case []byte:
		return f.parse(string(v))
	case string:
		return f.parse(v)
	default:
		return errors.New("Flag Scan: unsupported type " + fmt.Sprintf("%T", value))
	}
	return nil
}

func (f *Flag) parse(s string) error {
	if b, err := strconv.ParseBool(s); err == nil {
		*f = Flag(b)
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("Flag Scan: %q is not a boolean", s)
	}
	*f = n != 0
	return nil
}

// Venue is a row of the venues table. Optional text columns are nullable
// because Oracle stores empty strings as NULL.
type Venue struct {
	ID                 string         `db:"id"`
	Name               string         `db:"name"`
	City               string         `db:"city"`
	State              string         `db:"state"`
	Address            sql.NullString `db:"address"`
	Phone              sql.NullString `db:"phone"`
	ImageLink          sql.NullString `db:"image_link"`
	FacebookLink       sql.NullString `db:"facebook_link"`
	Website            sql.NullString `db:"website"`
	Genres             Genres         `db:"genres"`
	SeekingTalent      Flag           `db:"seeking_talent"`
	SeekingDescription sql.NullString `db:"seeking_description"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

// Artist is a row of the artists table.
type Artist struct {
	ID                 string         `db:"id"`
	Name               string         `db:"name"`
	City               string         `db:"city"`
	State              string         `db:"state"`
	Phone              sql.NullString `db:"phone"`
	ImageLink          sql.NullString `db:"image_link"`
	FacebookLink       sql.NullString `db:"facebook_link"`
	Website            sql.NullString `db:"website"`
	Genres             Genres         `db:"genres"`
	SeekingVenue       Flag           `db:"seeking_venue"`
	SeekingDescription sql.NullString `db:"seeking_description"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

// Show is a row of the shows table.
type Show struct {
	ID        string    `db:"id"`
	ArtistID  string    `db:"artist_id"`
	VenueID   string    `db:"venue_id"`
	StartTime time.Time `db:"start_time"`
	CreatedAt time.Time `db:"created_at"`
}

// ShowListing is one row of the shows, venues and artists join.
type ShowListing struct {
	ShowID          string         `db:"show_id"`
	VenueID         string         `db:"venue_id"`
	VenueName       string         `db:"venue_name"`
	VenueImageLink  sql.NullString `db:"venue_image_link"`
	ArtistID        string         `db:"artist_id"`
	ArtistName      string         `db:"artist_name"`
	ArtistImageLink sql.NullString `db:"artist_image_link"`
	StartTime       time.Time      `db:"start_time"`
}

// UpcomingCount is one row of an upcoming-shows GROUP BY.
type UpcomingCount struct {
	ID       string `db:"id"`
	Upcoming int    `db:"upcoming"`
}

// NullString maps "" to NULL.
func NullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
