package service

import (
	"context"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ShowService defines the interface for show operations
type ShowService interface {
	ListShows(ctx context.Context) (*dto.ShowsResponse, error)
	// CreateShow books an existing artist at an existing venue
	CreateShow(ctx context.Context, req *dto.CreateShowRequest) (*dto.CreateShowResponse, error)
}

type showService struct {
	shows   domain.ShowRepository
	venues  domain.VenueRepository
	artists domain.ArtistRepository
}

// NewShowService creates a new ShowService
func NewShowService(shows domain.ShowRepository, venues domain.VenueRepository, artists domain.ArtistRepository) ShowService {
	return &showService{shows: shows, venues: venues, artists: artists}
}

func (s *showService) ListShows(ctx context.Context) (*dto.ShowsResponse, error) {
	listings, err := s.shows.ListShows(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get shows", err)
	}
	shows := make([]dto.ShowResponse, 0, len(listings))
	for _, l := range listings {
		shows = append(shows, toShowResponse(l))
	}
	return &dto.ShowsResponse{Success: true, Shows: shows}, nil
}

func (s *showService) CreateShow(ctx context.Context, req *dto.CreateShowRequest) (*dto.CreateShowResponse, error) {
	show := &domain.Show{
		ArtistID:  req.ArtistID.String(),
		VenueID:   req.VenueID.String(),
		StartTime: req.StartTime.UTC(),
	}
	if err := show.Validate(); err != nil {
		return nil, err
	}

	var (
		artist *domain.Artist
		venue  *domain.Venue
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		artist, err = s.artists.GetArtistByID(gctx, show.ArtistID)
		return err
	})
	g.Go(func() error {
		var err error
		venue, err = s.venues.GetVenueByID(gctx, show.VenueID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("Failed to look up show parties", err)
	}
	if artist == nil {
		return nil, domain.NewUnprocessableError("Artist does not exist", nil).WithContext("artist_id", show.ArtistID)
	}
	if venue == nil {
		return nil, domain.NewUnprocessableError("Venue does not exist", nil).WithContext("venue_id", show.VenueID)
	}

	if err := s.shows.SaveShow(ctx, show); err != nil {
		return nil, domain.NewUnprocessableError("Failed to save show", err)
	}

	logger.Get().Info("Show created",
		zap.String("show_id", show.ID),
		zap.String("artist_id", show.ArtistID),
		zap.String("venue_id", show.VenueID),
		zap.Time("start_time", show.StartTime))
	return &dto.CreateShowResponse{Success: true, Show: toShowResponse(domain.ShowListing{
		ShowID:          show.ID,
		VenueID:         venue.ID,
		VenueName:       venue.Name,
		VenueImageLink:  venue.ImageLink,
		ArtistID:        artist.ID,
		ArtistName:      artist.Name,
		ArtistImageLink: artist.ImageLink,
		StartTime:       show.StartTime,
	})}, nil
}

func toShowResponse(l domain.ShowListing) dto.ShowResponse {
	return dto.ShowResponse{
		ID:              l.ShowID,
		VenueID:         l.VenueID,
		VenueName:       l.VenueName,
		ArtistID:        l.ArtistID,
		ArtistName:      l.ArtistName,
		ArtistImageLink: l.ArtistImageLink,
		StartTime:       l.StartTime,
	}
}
