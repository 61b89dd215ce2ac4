package domain

import (
	"strings"
	"time"
)

// Venue is a place that hosts shows.
type Venue struct {
	ID                 string
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Website            string
	Genres             []string
	SeekingTalent      bool
	SeekingDescription string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Artist performs at venues.
type Artist struct {
	ID                 string
	Name               string
	City               string
	State              string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Website            string
	Genres             []string
	SeekingVenue       bool
	SeekingDescription string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Show books an artist at a venue. ArtistID and VenueID reference Artist.ID and Venue.ID.
type Show struct {
	ID        string
	ArtistID  string
	VenueID   string
	StartTime time.Time
	CreatedAt time.Time
}

// ShowListing is a show joined with the names and images of its artist and venue.
type ShowListing struct {
	ShowID          string
	VenueID         string
	VenueName       string
	VenueImageLink  string
	ArtistID        string
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// Validate validates the venue
func (v *Venue) Validate() error {
	errs := validateListing(v.Name, v.City, v.State, v.Genres)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Validate validates the artist
func (a *Artist) Validate() error {
	errs := validateListing(a.Name, a.City, a.State, a.Genres)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Validate validates the show
func (s *Show) Validate() error {
	var errs ValidationErrors
	if s.ArtistID == "" {
		errs = append(errs, NewMissingFieldError("artist_id"))
	}
	if s.VenueID == "" {
		errs = append(errs, NewMissingFieldError("venue_id"))
	}
	if s.StartTime.IsZero() {
		errs = append(errs, NewMissingFieldError("start_time"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateListing(name, city, state string, genres []string) ValidationErrors {
	var errs ValidationErrors
	if name == "" {
		errs = append(errs, NewMissingFieldError("name"))
	}
	if city == "" {
		errs = append(errs, NewMissingFieldError("city"))
	}
	if state == "" {
		errs = append(errs, NewMissingFieldError("state"))
	}
	for _, g := range genres {
		if g == "" {
			errs = append(errs, NewInvalidFormatError("genres", g))
			break
		}
	}
	return errs
}

// NormalizeGenres trims each genre and drops blanks and repeats, keeping first-seen order.
func NormalizeGenres(genres []string) []string {
	out := make([]string, 0, len(genres))
	seen := make(map[string]struct{}, len(genres))
	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		key := strings.ToLower(g)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, g)
	}
	return out
}

// SplitShows partitions shows around now. A show starting exactly at now is past.
// Input order is kept in both halves.
func SplitShows(shows []ShowListing, now time.Time) (past, upcoming []ShowListing) {
	past = []ShowListing{}
	upcoming = []ShowListing{}
	for _, s := range shows {
		if s.StartTime.After(now) {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}
	return past, upcoming
}
