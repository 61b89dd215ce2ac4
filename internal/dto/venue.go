package dto

import "time"

// ListingSummary is a venue or artist with its upcoming show count
type ListingSummary struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueArea groups the venues of one city
type VenueArea struct {
	City   string           `json:"city"`
	State  string           `json:"state"`
	Venues []ListingSummary `json:"venues"`
}

// VenueAreasResponse lists every venue grouped by city and state
// @Description Venues by area
type VenueAreasResponse struct {
	Success bool        `json:"success"`
	Areas   []VenueArea `json:"areas"`
}

// SearchRequest searches venues or artists by name
// @Description Request body for a name search
type SearchRequest struct {
	SearchTerm string `json:"search_term"`
}

// SearchResponse holds the matches of a name search
type SearchResponse struct {
	Success bool             `json:"success"`
	Count   int              `json:"count"`
	Data    []ListingSummary `json:"data"`
}

// VenueRequest creates a venue or replaces all of its fields
// @Description Request body for creating or editing a venue
type VenueRequest struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	Website            string   `json:"website"`
	Genres             []string `json:"genres"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

// ArtistRequest creates an artist or replaces all of its fields
// @Description Request body for creating or editing an artist
type ArtistRequest struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	Website            string   `json:"website"`
	Genres             []string `json:"genres"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}

// ArtistShow is a show on a venue page
type ArtistShow struct {
	ArtistID        string    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// VenueShow is a show on an artist page
type VenueShow struct {
	VenueID        string    `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

// VenueDetail is a venue with its shows split into past and upcoming
type VenueDetail struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Genres             []string     `json:"genres"`
	Address            string       `json:"address"`
	City               string       `json:"city"`
	State              string       `json:"state"`
	Phone              string       `json:"phone"`
	Website            string       `json:"website"`
	FacebookLink       string       `json:"facebook_link"`
	SeekingTalent      bool         `json:"seeking_talent"`
	SeekingDescription string       `json:"seeking_description"`
	ImageLink          string       `json:"image_link"`
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// VenueResponse wraps one venue
type VenueResponse struct {
	Success bool        `json:"success"`
	Venue   VenueDetail `json:"venue"`
}

// ArtistDetail is an artist with its shows split into past and upcoming
type ArtistDetail struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Genres             []string    `json:"genres"`
	City               string      `json:"city"`
	State              string      `json:"state"`
	Phone              string      `json:"phone"`
	Website            string      `json:"website"`
	FacebookLink       string      `json:"facebook_link"`
	SeekingVenue       bool        `json:"seeking_venue"`
	SeekingDescription string      `json:"seeking_description"`
	ImageLink          string      `json:"image_link"`
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// ArtistResponse wraps one artist
type ArtistResponse struct {
	Success bool         `json:"success"`
	Artist  ArtistDetail `json:"artist"`
}

// ArtistSummary is an artist in the artist list
type ArtistSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ArtistsResponse lists every artist
// @Description Artist list
type ArtistsResponse struct {
	Success bool            `json:"success"`
	Artists []ArtistSummary `json:"artists"`
}

// ShowResponse is a show with its venue and artist names
type ShowResponse struct {
	ID              string    `json:"id"`
	VenueID         string    `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        string    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// ShowsResponse lists every show
// @Description Show list ordered by start time
type ShowsResponse struct {
	Success bool           `json:"success"`
	Shows   []ShowResponse `json:"shows"`
}

// CreateShowRequest books an artist at a venue. start_time is RFC 3339.
// @Description Request body for creating a show
type CreateShowRequest struct {
	ArtistID  FlexibleID `json:"artist_id" swaggertype:"string"`
	VenueID   FlexibleID `json:"venue_id" swaggertype:"string"`
	StartTime time.Time  `json:"start_time"`
}

// CreateShowResponse wraps the created show
type CreateShowResponse struct {
	Success bool         `json:"success"`
	Show    ShowResponse `json:"show"`
}

// DeleteResponse returns the ID of a deleted venue or artist
type DeleteResponse struct {
	Success bool   `json:"success"`
	Deleted string `json:"deleted"`
}
