package repository

import (
	"context"
	"fmt"
	"time"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"
	"trivia-api/internal/util"
)

const showListingQuery = `SELECT s.id "show_id", s.venue_id "venue_id", v.name "venue_name", v.image_link "venue_image_link",
	s.artist_id "artist_id", a.name "artist_name", a.image_link "artist_image_link", s.start_time "start_time"
	FROM shows s
	JOIN venues v ON v.id = s.venue_id
	JOIN artists a ON a.id = s.artist_id`

// ShowDatabaseAdapter implements domain.ShowRepository using sqlx.
type ShowDatabaseAdapter struct {
	db DBTX
}

// NewShowDatabaseAdapter creates a new instance of ShowDatabaseAdapter
func NewShowDatabaseAdapter(db DBTX) domain.ShowRepository {
	return &ShowDatabaseAdapter{db: db}
}

func (a *ShowDatabaseAdapter) listings(ctx context.Context, where string, args ...interface{}) ([]domain.ShowListing, error) {
	exec := GetExecutor(ctx, a.db)
	query := showListingQuery
	if where != "" {
		query += ` WHERE ` + where
	}
	query += ` ORDER BY s.start_time, s.id`

	var rows []models.ShowListing
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, err
	}
	shows := make([]domain.ShowListing, len(rows))
	for i, r := range rows {
		shows[i] = domain.ShowListing{
			ShowID:          r.ShowID,
			VenueID:         r.VenueID,
			VenueName:       r.VenueName,
			VenueImageLink:  r.VenueImageLink.String,
			ArtistID:        r.ArtistID,
			ArtistName:      r.ArtistName,
			ArtistImageLink: r.ArtistImageLink.String,
			StartTime:       r.StartTime,
		}
	}
	return shows, nil
}

// ListShows implements domain.ShowRepository
func (a *ShowDatabaseAdapter) ListShows(ctx context.Context) ([]domain.ShowListing, error) {
	shows, err := a.listings(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}
	return shows, nil
}

// ListShowsByVenue implements domain.ShowRepository
func (a *ShowDatabaseAdapter) ListShowsByVenue(ctx context.Context, venueID string) ([]domain.ShowListing, error) {
	shows, err := a.listings(ctx, "s.venue_id = ?", venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows of venue %s: %w", venueID, err)
	}
	return shows, nil
}

// ListShowsByArtist implements domain.ShowRepository
func (a *ShowDatabaseAdapter) ListShowsByArtist(ctx context.Context, artistID string) ([]domain.ShowListing, error) {
	shows, err := a.listings(ctx, "s.artist_id = ?", artistID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows of artist %s: %w", artistID, err)
	}
	return shows, nil
}

func (a *ShowDatabaseAdapter) countUpcoming(ctx context.Context, column string, now time.Time) (map[string]int, error) {
	exec := GetExecutor(ctx, a.db)
	query := exec.Rebind(`SELECT ` + column + ` "id", COUNT(*) "upcoming" FROM shows WHERE start_time > ? GROUP BY ` + column)
	var rows []models.UpcomingCount
	if err := exec.SelectContext(ctx, &rows, query, now); err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.ID] = r.Upcoming
	}
	return counts, nil
}

// CountUpcomingByVenue implements domain.ShowRepository
func (a *ShowDatabaseAdapter) CountUpcomingByVenue(ctx context.Context, now time.Time) (map[string]int, error) {
	counts, err := a.countUpcoming(ctx, "venue_id", now)
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming shows by venue: %w", err)
	}
	return counts, nil
}

// CountUpcomingByArtist implements domain.ShowRepository
func (a *ShowDatabaseAdapter) CountUpcomingByArtist(ctx context.Context, now time.Time) (map[string]int, error) {
	counts, err := a.countUpcoming(ctx, "artist_id", now)
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming shows by artist: %w", err)
	}
	return counts, nil
}

// SaveShow implements domain.ShowRepository
func (a *ShowDatabaseAdapter) SaveShow(ctx context.Context, show *domain.Show) error {
	if show == nil {
		return fmt.Errorf("cannot save nil show")
	}
	row := models.Show{
		ID:        show.ID,
		ArtistID:  show.ArtistID,
		VenueID:   show.VenueID,
		StartTime: show.StartTime,
		CreatedAt: time.Now(),
	}
	if row.ID == "" {
		row.ID = util.NewULID()
	}

	query := `INSERT INTO shows (id, artist_id, venue_id, start_time, created_at)
		VALUES (:id, :artist_id, :venue_id, :start_time, :created_at)`
	if _, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to save show: %w", err)
	}

	show.ID = row.ID
	show.CreatedAt = row.CreatedAt
	return nil
}
