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

const venueColumns = `id "id", name "name", city "city", state "state", address "address", phone "phone",
	image_link "image_link", facebook_link "facebook_link", website "website", genres "genres",
	seeking_talent "seeking_talent", seeking_description "seeking_description",
	created_at "created_at", updated_at "updated_at"`

// VenueDatabaseAdapter implements domain.VenueRepository using sqlx.
type VenueDatabaseAdapter struct {
	db DBTX
}

// NewVenueDatabaseAdapter creates a new instance of VenueDatabaseAdapter
func NewVenueDatabaseAdapter(db DBTX) domain.VenueRepository {
	return &VenueDatabaseAdapter{db: db}
}

func (a *VenueDatabaseAdapter) selectVenues(ctx context.Context, query string, args ...interface{}) ([]*domain.Venue, error) {
	exec := GetExecutor(ctx, a.db)
	var rows []models.Venue
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, err
	}
	venues := make([]*domain.Venue, len(rows))
	for i := range rows {
		venues[i] = toDomainVenue(&rows[i])
	}
	return venues, nil
}

// GetAllVenues implements domain.VenueRepository
func (a *VenueDatabaseAdapter) GetAllVenues(ctx context.Context) ([]*domain.Venue, error) {
	venues, err := a.selectVenues(ctx, `SELECT `+venueColumns+` FROM venues ORDER BY state, city, name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get venues: %w", err)
	}
	return venues, nil
}

// GetVenueByID implements domain.VenueRepository
func (a *VenueDatabaseAdapter) GetVenueByID(ctx context.Context, id string) (*domain.Venue, error) {
	exec := GetExecutor(ctx, a.db)
	var row models.Venue
	query := exec.Rebind(`SELECT ` + venueColumns + ` FROM venues WHERE id = ?`)
	if err := exec.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get venue by ID %s: %w", id, err)
	}
	return toDomainVenue(&row), nil
}

// SearchVenues implements domain.VenueRepository
func (a *VenueDatabaseAdapter) SearchVenues(ctx context.Context, term string) ([]*domain.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE LOWER(name) LIKE ? ESCAPE '\' ORDER BY name, id`
	venues, err := a.selectVenues(ctx, query, likePattern(term))
	if err != nil {
		return nil, fmt.Errorf("failed to search venues: %w", err)
	}
	return venues, nil
}

// SaveVenue implements domain.VenueRepository
func (a *VenueDatabaseAdapter) SaveVenue(ctx context.Context, venue *domain.Venue) error {
	if venue == nil {
		return fmt.Errorf("cannot save nil venue")
	}
	row := toModelVenue(venue)
	if row.ID == "" {
		row.ID = util.NewULID()
	}
	now := time.Now()
	row.CreatedAt = now
	row.UpdatedAt = now

	query := `INSERT INTO venues (id, name, city, state, address, phone, image_link, facebook_link, website,
			genres, seeking_talent, seeking_description, created_at, updated_at)
		VALUES (:id, :name, :city, :state, :address, :phone, :image_link, :facebook_link, :website,
			:genres, :seeking_talent, :seeking_description, :created_at, :updated_at)`
	if _, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to save venue: %w", err)
	}

	venue.ID = row.ID
	venue.CreatedAt = row.CreatedAt
	venue.UpdatedAt = row.UpdatedAt
	return nil
}

// UpdateVenue implements domain.VenueRepository
func (a *VenueDatabaseAdapter) UpdateVenue(ctx context.Context, venue *domain.Venue) error {
	if venue == nil || venue.ID == "" {
		return fmt.Errorf("cannot update venue without ID")
	}
	row := toModelVenue(venue)
	row.UpdatedAt = time.Now()

	query := `UPDATE venues SET name = :name, city = :city, state = :state, address = :address, phone = :phone,
		image_link = :image_link, facebook_link = :facebook_link, website = :website, genres = :genres,
		seeking_talent = :seeking_talent, seeking_description = :seeking_description, updated_at = :updated_at
		WHERE id = :id`
	result, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, row)
	if err != nil {
		return fmt.Errorf("failed to update venue %s: %w", venue.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewVenueNotFoundError(venue.ID)
	}
	venue.UpdatedAt = row.UpdatedAt
	return nil
}

// DeleteVenue implements domain.VenueRepository
func (a *VenueDatabaseAdapter) DeleteVenue(ctx context.Context, id string) error {
	exec := GetExecutor(ctx, a.db)
	result, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM venues WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete venue %s: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewVenueNotFoundError(id)
	}
	return nil
}

func toDomainVenue(v *models.Venue) *domain.Venue {
	return &domain.Venue{
		ID:                 v.ID,
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address.String,
		Phone:              v.Phone.String,
		ImageLink:          v.ImageLink.String,
		FacebookLink:       v.FacebookLink.String,
		Website:            v.Website.String,
		Genres:             []string(v.Genres),
		SeekingTalent:      bool(v.SeekingTalent),
		SeekingDescription: v.SeekingDescription.String,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func toModelVenue(v *domain.Venue) *models.Venue {
	return &models.Venue{
		ID:                 v.ID,
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            models.NullString(v.Address),
		Phone:              models.NullString(v.Phone),
		ImageLink:          models.NullString(v.ImageLink),
		FacebookLink:       models.NullString(v.FacebookLink),
		Website:            models.NullString(v.Website),
		Genres:             models.Genres(v.Genres),
		SeekingTalent:      models.Flag(v.SeekingTalent),
		SeekingDescription: models.NullString(v.SeekingDescription),
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}
