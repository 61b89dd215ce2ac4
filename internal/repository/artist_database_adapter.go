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

const artistColumns = `id "id", name "name", city "city", state "state", phone "phone",
	image_link "image_link", facebook_link "facebook_link", website "website", genres "genres",
	seeking_venue "seeking_venue", seeking_description "seeking_description",
	created_at "created_at", updated_at "updated_at"`

// ArtistDatabaseAdapter implements domain.ArtistRepository using sqlx.
type ArtistDatabaseAdapter struct {
	db DBTX
}

// NewArtistDatabaseAdapter creates a new instance of ArtistDatabaseAdapter
func NewArtistDatabaseAdapter(db DBTX) domain.ArtistRepository {
	return &ArtistDatabaseAdapter{db: db}
}

func (a *ArtistDatabaseAdapter) selectArtists(ctx context.Context, query string, args ...interface{}) ([]*domain.Artist, error) {
	exec := GetExecutor(ctx, a.db)
	var rows []models.Artist
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, err
	}
	artists := make([]*domain.Artist, len(rows))
	for i := range rows {
		artists[i] = toDomainArtist(&rows[i])
	}
	return artists, nil
}

// GetAllArtists implements domain.ArtistRepository
func (a *ArtistDatabaseAdapter) GetAllArtists(ctx context.Context) ([]*domain.Artist, error) {
	artists, err := a.selectArtists(ctx, `SELECT `+artistColumns+` FROM artists ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get artists: %w", err)
	}
	return artists, nil
}

// GetArtistByID implements domain.ArtistRepository
func (a *ArtistDatabaseAdapter) GetArtistByID(ctx context.Context, id string) (*domain.Artist, error) {
	exec := GetExecutor(ctx, a.db)
	var row models.Artist
	query := exec.Rebind(`SELECT ` + artistColumns + ` FROM artists WHERE id = ?`)
	if err := exec.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get artist by ID %s: %w", id, err)
	}
	return toDomainArtist(&row), nil
}

// SearchArtists implements domain.ArtistRepository
func (a *ArtistDatabaseAdapter) SearchArtists(ctx context.Context, term string) ([]*domain.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE LOWER(name) LIKE ? ESCAPE '\' ORDER BY name, id`
	artists, err := a.selectArtists(ctx, query, likePattern(term))
	if err != nil {
		return nil, fmt.Errorf("failed to search artists: %w", err)
	}
	return artists, nil
}

// SaveArtist implements domain.ArtistRepository
func (a *ArtistDatabaseAdapter) SaveArtist(ctx context.Context, artist *domain.Artist) error {
	if artist == nil {
		return fmt.Errorf("cannot save nil artist")
	}
	row := toModelArtist(artist)
	if row.ID == "" {
		row.ID = util.NewULID()
	}
	now := time.Now()
	row.CreatedAt = now
	row.UpdatedAt = now

	query := `INSERT INTO artists (id, name, city, state, phone, image_link, facebook_link, website,
			genres, seeking_venue, seeking_description, created_at, updated_at)
		VALUES (:id, :name, :city, :state, :phone, :image_link, :facebook_link, :website,
			:genres, :seeking_venue, :seeking_description, :created_at, :updated_at)`
	if _, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to save artist: %w", err)
	}

	artist.ID = row.ID
	artist.CreatedAt = row.CreatedAt
	artist.UpdatedAt = row.UpdatedAt
	return nil
}

// UpdateArtist implements domain.ArtistRepository
func (a *ArtistDatabaseAdapter) UpdateArtist(ctx context.Context, artist *domain.Artist) error {
	if artist == nil || artist.ID == "" {
		return fmt.Errorf("cannot update artist without ID")
	}
	row := toModelArtist(artist)
	row.UpdatedAt = time.Now()

	query := `UPDATE artists SET name = :name, city = :city, state = :state, phone = :phone,
		image_link = :image_link, facebook_link = :facebook_link, website = :website, genres = :genres,
		seeking_venue = :seeking_venue, seeking_description = :seeking_description, updated_at = :updated_at
		WHERE id = :id`
	result, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, row)
	if err != nil {
		return fmt.Errorf("failed to update artist %s: %w", artist.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewArtistNotFoundError(artist.ID)
	}
	artist.UpdatedAt = row.UpdatedAt
	return nil
}

// DeleteArtist implements domain.ArtistRepository
func (a *ArtistDatabaseAdapter) DeleteArtist(ctx context.Context, id string) error {
	exec := GetExecutor(ctx, a.db)
	result, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM artists WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete artist %s: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewArtistNotFoundError(id)
	}
	return nil
}

func toDomainArtist(a *models.Artist) *domain.Artist {
	return &domain.Artist{
		ID:                 a.ID,
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone.String,
		ImageLink:          a.ImageLink.String,
		FacebookLink:       a.FacebookLink.String,
		Website:            a.Website.String,
		Genres:             []string(a.Genres),
		SeekingVenue:       bool(a.SeekingVenue),
		SeekingDescription: a.SeekingDescription.String,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

func toModelArtist(a *domain.Artist) *models.Artist {
	return &models.Artist{
		ID:                 a.ID,
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              models.NullString(a.Phone),
		ImageLink:          models.NullString(a.ImageLink),
		FacebookLink:       models.NullString(a.FacebookLink),
		Website:            models.NullString(a.Website),
		Genres:             models.Genres(a.Genres),
		SeekingVenue:       models.Flag(a.SeekingVenue),
		SeekingDescription: models.NullString(a.SeekingDescription),
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}
