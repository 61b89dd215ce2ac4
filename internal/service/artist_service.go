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

// ArtistService defines the interface for artist operations
type ArtistService interface {
	ListArtists(ctx context.Context) (*dto.ArtistsResponse, error)
	SearchArtists(ctx context.Context, term string) (*dto.SearchResponse, error)
	GetArtist(ctx context.Context, id string) (*dto.ArtistResponse, error)
	CreateArtist(ctx context.Context, req *dto.ArtistRequest) (*dto.ArtistResponse, error)
	// UpdateArtist replaces every editable field of the artist
	UpdateArtist(ctx context.Context, id string, req *dto.ArtistRequest) (*dto.ArtistResponse, error)
	DeleteArtist(ctx context.Context, id string) (*dto.DeleteResponse, error)
}

type artistService struct {
	artists domain.ArtistRepository
	shows   domain.ShowRepository
	now     func() time.Time
}

// NewArtistService creates a new ArtistService
func NewArtistService(artists domain.ArtistRepository, shows domain.ShowRepository) ArtistService {
	return &artistService{artists: artists, shows: shows, now: time.Now}
}

func (s *artistService) ListArtists(ctx context.Context) (*dto.ArtistsResponse, error) {
	artists, err := s.artists.GetAllArtists(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get artists", err)
	}
	out := make([]dto.ArtistSummary, 0, len(artists))
	for _, a := range artists {
		out = append(out, dto.ArtistSummary{ID: a.ID, Name: a.Name})
	}
	return &dto.ArtistsResponse{Success: true, Artists: out}, nil
}

func (s *artistService) SearchArtists(ctx context.Context, term string) (*dto.SearchResponse, error) {
	var (
		artists []*domain.Artist
		counts  map[string]int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		artists, err = s.artists.SearchArtists(gctx, strings.TrimSpace(term))
		return err
	})
	g.Go(func() error {
		var err error
		counts, err = s.shows.CountUpcomingByArtist(gctx, s.now())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("Failed to search artists", err)
	}

	data := make([]dto.ListingSummary, 0, len(artists))
	for _, a := range artists {
		data = append(data, dto.ListingSummary{ID: a.ID, Name: a.Name, NumUpcomingShows: counts[a.ID]})
	}
	return &dto.SearchResponse{Success: true, Count: len(data), Data: data}, nil
}

func (s *artistService) GetArtist(ctx context.Context, id string) (*dto.ArtistResponse, error) {
	var (
		artist *domain.Artist
		shows  []domain.ShowListing
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		artist, err = s.artists.GetArtistByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		shows, err = s.shows.ListShowsByArtist(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("Failed to get artist", err)
	}
	if artist == nil {
		return nil, domain.NewArtistNotFoundError(id)
	}

	past, upcoming := domain.SplitShows(shows, s.now())
	return &dto.ArtistResponse{Success: true, Artist: toArtistDetail(artist, past, upcoming)}, nil
}

func (s *artistService) CreateArtist(ctx context.Context, req *dto.ArtistRequest) (*dto.ArtistResponse, error) {
	artist := artistFromRequest(req)
	if err := artist.Validate(); err != nil {
		return nil, err
	}
	if err := s.artists.SaveArtist(ctx, artist); err != nil {
		return nil, domain.NewUnprocessableError("Failed to save artist", err)
	}

	logger.Get().Info("Artist created", zap.String("artist_id", artist.ID), zap.String("name", artist.Name))
	return &dto.ArtistResponse{Success: true, Artist: toArtistDetail(artist, nil, nil)}, nil
}

func (s *artistService) UpdateArtist(ctx context.Context, id string, req *dto.ArtistRequest) (*dto.ArtistResponse, error) {
	artist := artistFromRequest(req)
	artist.ID = id
	if err := artist.Validate(); err != nil {
		return nil, err
	}
	if err := s.artists.UpdateArtist(ctx, artist); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewArtistNotFoundError(id)
		}
		return nil, domain.NewUnprocessableError("Failed to update artist", err)
	}

	logger.Get().Info("Artist updated", zap.String("artist_id", id))
	return s.GetArtist(ctx, id)
}

func (s *artistService) DeleteArtist(ctx context.Context, id string) (*dto.DeleteResponse, error) {
	if err := s.artists.DeleteArtist(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewArtistNotFoundError(id)
		}
		return nil, domain.NewUnprocessableError("Failed to delete artist", err)
	}

	logger.Get().Info("Artist deleted", zap.String("artist_id", id))
	return &dto.DeleteResponse{Success: true, Deleted: id}, nil
}

func artistFromRequest(req *dto.ArtistRequest) *domain.Artist {
	now := time.Now()
	return &domain.Artist{
		Name:               strings.TrimSpace(req.Name),
		City:               strings.TrimSpace(req.City),
		State:              strings.ToUpper(strings.TrimSpace(req.State)),
		Phone:              strings.TrimSpace(req.Phone),
		ImageLink:          strings.TrimSpace(req.ImageLink),
		FacebookLink:       strings.TrimSpace(req.FacebookLink),
		Website:            strings.TrimSpace(req.Website),
		Genres:             domain.NormalizeGenres(req.Genres),
		SeekingVenue:       req.SeekingVenue,
		SeekingDescription: strings.TrimSpace(req.SeekingDescription),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func toArtistDetail(a *domain.Artist, past, upcoming []domain.ShowListing) dto.ArtistDetail {
	genres := a.Genres
	if genres == nil {
		genres = []string{}
	}
	return dto.ArtistDetail{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             genres,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.Website,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
		PastShows:          toVenueShows(past),
		UpcomingShows:      toVenueShows(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

func toVenueShows(shows []domain.ShowListing) []dto.VenueShow {
	out := make([]dto.VenueShow, 0, len(shows))
	for _, s := range shows {
		out = append(out, dto.VenueShow{
			VenueID:        s.VenueID,
			VenueName:      s.VenueName,
			VenueImageLink: s.VenueImageLink,
			StartTime:      s.StartTime,
		})
	}
	return out
}
