package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// VenueService defines the interface for venue operations
type VenueService interface {
	// ListVenues groups every venue by city and state
	ListVenues(ctx context.Context) (*dto.VenueAreasResponse, error)
	SearchVenues(ctx context.Context, term string) (*dto.SearchResponse, error)
	GetVenue(ctx context.Context, id string) (*dto.VenueResponse, error)
	CreateVenue(ctx context.Context, req *dto.VenueRequest) (*dto.VenueResponse, error)
	// UpdateVenue replaces every editable field of the venue
	UpdateVenue(ctx context.Context, id string, req *dto.VenueRequest) (*dto.VenueResponse, error)
	DeleteVenue(ctx context.Context, id string) (*dto.DeleteResponse, error)
}

type venueService struct {
	venues domain.VenueRepository
	shows  domain.ShowRepository
	now    func() time.Time
}

// NewVenueService creates a new VenueService
func NewVenueService(venues domain.VenueRepository, shows domain.ShowRepository) VenueService {
	return &venueService{venues: venues, shows: shows, now: time.Now}
}

func (s *venueService) ListVenues(ctx context.Context) (*dto.VenueAreasResponse, error) {
	var (
		venues []*domain.Venue
		counts map[string]int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		venues, err = s.venues.GetAllVenues(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		counts, err = s.shows.CountUpcomingByVenue(gctx, s.now())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("Failed to get venues", err)
	}

	areas := []dto.VenueArea{}
	index := make(map[[2]string]int)
	for _, v := range venues {
		key := [2]string{v.State, v.City}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, dto.VenueArea{City: v.City, State: v.State, Venues: []dto.ListingSummary{}})
		}
		areas[i].Venues = append(areas[i].Venues, dto.ListingSummary{ID: v.ID, Name: v.Name, NumUpcomingShows: counts[v.ID]})
	}
	return &dto.VenueAreasResponse{Success: true, Areas: areas}, nil
}

func (s *venueService) SearchVenues(ctx context.Context, term string) (*dto.SearchResponse, error) {
	var (
		venues []*domain.Venue
		counts map[string]int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		venues, err = s.venues.SearchVenues(gctx, strings.TrimSpace(term))
		return err
	})
	g.Go(func() error {
		var err error
		counts, err = s.shows.CountUpcomingByVenue(gctx, s.now())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("Failed to search venues", err)
	}

	data := make([]dto.ListingSummary, 0, len(venues))
	for _, v := range venues {
		data = append(data, dto.ListingSummary{ID: v.ID, Name: v.Name, NumUpcomingShows: counts[v.ID]})
	}
	return &dto.SearchResponse{Success: true, Count: len(data), Data: data}, nil
}

func (s *venueService) GetVenue(ctx context.Context, id string) (*dto.VenueResponse, error) {
	var (
		venue *domain.Venue
		shows []domain.ShowListing
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		venue, err = s.venues.GetVenueByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		shows, err = s.shows.ListShowsByVenue(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("Failed to get venue", err)
	}
	if venue == nil {
		return nil, domain.NewVenueNotFoundError(id)
	}

	past, upcoming := domain.SplitShows(shows, s.now())
	return &dto.VenueResponse{Success: true, Venue: toVenueDetail(venue, past, upcoming)}, nil
}

func (s *venueService) CreateVenue(ctx context.Context, req *dto.VenueRequest) (*dto.VenueResponse, error) {
	venue := venueFromRequest(req)
	if err := venue.Validate(); err != nil {
		return nil, err
	}
	if err := s.venues.SaveVenue(ctx, venue); err != nil {
		return nil, domain.NewUnprocessableError("Failed to save venue", err)
	}

	logger.Get().Info("Venue created", zap.String("venue_id", venue.ID), zap.String("name", venue.Name))
	return &dto.VenueResponse{Success: true, Venue: toVenueDetail(venue, nil, nil)}, nil
}

func (s *venueService) UpdateVenue(ctx context.Context, id string, req *dto.VenueRequest) (*dto.VenueResponse, error) {
	venue := venueFromRequest(req)
	venue.ID = id
	if err := venue.Validate(); err != nil {
		return nil, err
	}
	if err := s.venues.UpdateVenue(ctx, venue); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewVenueNotFoundError(id)
		}
		return nil, domain.NewUnprocessableError("Failed to update venue", err)
	}

	logger.Get().Info("Venue updated", zap.String("venue_id", id))
	return s.GetVenue(ctx, id)
}

func (s *venueService) DeleteVenue(ctx context.Context, id string) (*dto.DeleteResponse, error) {
	if err := s.venues.DeleteVenue(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewVenueNotFoundError(id)
		}
		return nil, domain.NewUnprocessableError("Failed to delete venue", err)
	}

	logger.Get().Info("Venue deleted", zap.String("venue_id", id))
	return &dto.DeleteResponse{Success: true, Deleted: id}, nil
}

func venueFromRequest(req *dto.VenueRequest) *domain.Venue {
	now := time.Now()
	return &domain.Venue{
		Name:               strings.TrimSpace(req.Name),
		City:               strings.TrimSpace(req.City),
		State:              strings.ToUpper(strings.TrimSpace(req.State)),
		Address:            strings.TrimSpace(req.Address),
		Phone:              strings.TrimSpace(req.Phone),
		ImageLink:          strings.TrimSpace(req.ImageLink),
		FacebookLink:       strings.TrimSpace(req.FacebookLink),
		Website:            strings.TrimSpace(req.Website),
		Genres:             domain.NormalizeGenres(req.Genres),
		SeekingTalent:      req.SeekingTalent,
		SeekingDescription: strings.TrimSpace(req.SeekingDescription),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func toVenueDetail(v *domain.Venue, past, upcoming []domain.ShowListing) dto.VenueDetail {
	genres := v.Genres
	if genres == nil {
		genres = []string{}
	}
	return dto.VenueDetail{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             genres,
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.Website,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
		PastShows:          toArtistShows(past),
		UpcomingShows:      toArtistShows(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

func toArtistShows(shows []domain.ShowListing) []dto.ArtistShow {
	out := make([]dto.ArtistShow, 0, len(shows))
	for _, s := range shows {
		out = append(out, dto.ArtistShow{
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       s.StartTime,
		})
	}
	return out
}
