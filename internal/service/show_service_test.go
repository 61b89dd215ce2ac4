package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShowService_ListShows(t *testing.T) {
	shows := new(MockShowRepository)
	svc := NewShowService(shows, new(MockVenueRepository), new(MockArtistRepository))
	start := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)

	shows.On("ListShows", mock.Anything).Return([]domain.ShowListing{{
		ShowID: "s1", VenueID: "v1", VenueName: "The Musical Hop",
		ArtistID: "a1", ArtistName: "Guns N Petals", ArtistImageLink: "https://img.example/gnp.jpg", StartTime: start,
	}}, nil)

	resp, err := svc.ListShows(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []dto.ShowResponse{{
		ID: "s1", VenueID: "v1", VenueName: "The Musical Hop",
		ArtistID: "a1", ArtistName: "Guns N Petals", ArtistImageLink: "https://img.example/gnp.jpg", StartTime: start,
	}}, resp.Shows)
}

func TestShowService_ListShows_Empty(t *testing.T) {
	shows := new(MockShowRepository)
	svc := NewShowService(shows, new(MockVenueRepository), new(MockArtistRepository))
	shows.On("ListShows", mock.Anything).Return([]domain.ShowListing{}, nil)

	resp, err := svc.ListShows(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, resp.Shows)
	assert.Empty(t, resp.Shows)
}

func TestShowService_CreateShow(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.FixedZone("PDT", -7*3600))
	req := &dto.CreateShowRequest{ArtistID: "a1", VenueID: "v1", StartTime: start}

	t.Run("success", func(t *testing.T) {
		shows := new(MockShowRepository)
		venues := new(MockVenueRepository)
		artists := new(MockArtistRepository)
		svc := NewShowService(shows, venues, artists)

		artists.On("GetArtistByID", mock.Anything, "a1").Return(&domain.Artist{ID: "a1", Name: "Guns N Petals"}, nil)
		venues.On("GetVenueByID", mock.Anything, "v1").Return(&domain.Venue{ID: "v1", Name: "The Musical Hop"}, nil)
		shows.On("SaveShow", ctx, mock.MatchedBy(func(s *domain.Show) bool {
			return s.StartTime.Equal(start) && s.StartTime.Location() == time.UTC
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Show).ID = "s9"
		}).Return(nil)

		resp, err := svc.CreateShow(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "s9", resp.Show.ID)
		assert.Equal(t, "Guns N Petals", resp.Show.ArtistName)
		assert.Equal(t, "The Musical Hop", resp.Show.VenueName)
	})

	t.Run("unknown artist", func(t *testing.T) {
		shows := new(MockShowRepository)
		venues := new(MockVenueRepository)
		artists := new(MockArtistRepository)
		svc := NewShowService(shows, venues, artists)

		artists.On("GetArtistByID", mock.Anything, "a1").Return(nil, nil)
		venues.On("GetVenueByID", mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil)

		_, err := svc.CreateShow(ctx, req)

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeUnprocessable, domainErr.Code)
		assert.Equal(t, "a1", domainErr.Context["artist_id"])
		shows.AssertNotCalled(t, "SaveShow", mock.Anything, mock.Anything)
	})

	t.Run("unknown venue", func(t *testing.T) {
		shows := new(MockShowRepository)
		venues := new(MockVenueRepository)
		artists := new(MockArtistRepository)
		svc := NewShowService(shows, venues, artists)

		artists.On("GetArtistByID", mock.Anything, "a1").Return(&domain.Artist{ID: "a1"}, nil)
		venues.On("GetVenueByID", mock.Anything, "v1").Return(nil, nil)

		_, err := svc.CreateShow(ctx, req)

		assert.ErrorIs(t, err, domain.ErrUnprocessable)
	})

	t.Run("lookup failure", func(t *testing.T) {
		shows := new(MockShowRepository)
		venues := new(MockVenueRepository)
		artists := new(MockArtistRepository)
		svc := NewShowService(shows, venues, artists)

		artists.On("GetArtistByID", mock.Anything, "a1").Return(nil, errors.New("db down"))
		venues.On("GetVenueByID", mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil).Maybe()

		_, err := svc.CreateShow(ctx, req)

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeInternal, domainErr.Code)
	})

	t.Run("missing start time", func(t *testing.T) {
		svc := NewShowService(new(MockShowRepository), new(MockVenueRepository), new(MockArtistRepository))

		_, err := svc.CreateShow(ctx, &dto.CreateShowRequest{ArtistID: "a1", VenueID: "v1"})

		var validationErrs domain.ValidationErrors
		assert.ErrorAs(t, err, &validationErrs)
	})
}
