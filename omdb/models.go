package omdb

import "time"

// MediaType filters results by kind of title. The zero value means no filter.
type MediaType string

const (
	TypeMovie   MediaType = "movie"
	TypeSeries  MediaType = "series"
	TypeEpisode MediaType = "episode"
)

// Valid reports whether t is one of the known media types.
func (t MediaType) Valid() bool {
	switch t {
	case TypeMovie, TypeSeries, TypeEpisode:
		return true
	}
	return false
}

// PlotLength selects the plot summary length. The zero value uses the provider default.
type PlotLength string

const (
	PlotShort PlotLength = "short"
	PlotFull  PlotLength = "full"
)

// Valid reports whether p is one of the known plot lengths.
func (p PlotLength) Valid() bool {
	return p == PlotShort || p == PlotFull
}

// SearchOptions are the optional filters for Search.
type SearchOptions struct {
	Type MediaType
	Year *int
	Page *int // 1-100
}

// TitleOptions are the optional filters for GetByTitle.
type TitleOptions struct {
	Type MediaType
	Year *int
	Plot PlotLength
}

// IDOptions are the optional settings for GetByID.
type IDOptions struct {
	Plot PlotLength
}

// Int returns a pointer to v, for populating optional integer options.
func Int(v int) *int {
	return &v
}

// Identifiable is implemented by values that carry an IMDb ID. GetByID and
// GetPoster accept either a bare ID string or an Identifiable.
type Identifiable interface {
	GetID() string
}

// IDRef is an Identifiable holding a bare IMDb ID.
type IDRef struct {
	ID string
}

// GetID returns the IMDb ID.
func (r IDRef) GetID() string { return r.ID }

// SearchResultItem is a single normalized search hit.
type SearchResultItem struct {
	Title  string    `json:"title" yaml:"title"`
	Year   *int      `json:"year" yaml:"year"`
	ID     string    `json:"ID" yaml:"ID"`
	Type   MediaType `json:"type" yaml:"type"`
	Poster *string   `json:"poster" yaml:"poster"`
}

// GetID returns the IMDb ID of the hit.
func (i SearchResultItem) GetID() string { return i.ID }

// Rating is a single normalized rating. IMDb ratings are scaled onto 0-100.
type Rating struct {
	Source string   `json:"source" yaml:"source"`
	Value  *float64 `json:"value" yaml:"value"`
}

// MovieRecord is the normalized full record returned by GetByTitle and GetByID.
// Pointer fields are nil when the provider sent "N/A" or a value that does not parse.
type MovieRecord struct {
	Title      string     `json:"title" yaml:"title"`
	Year       *int       `json:"year" yaml:"year"`
	Rated      string     `json:"rated" yaml:"rated"`
	Released   *time.Time `json:"released" yaml:"released"`
	Runtime    *int       `json:"runtime" yaml:"runtime"`
	Genres     []string   `json:"genres" yaml:"genres"`
	Director   string     `json:"director" yaml:"director"`
	Writers    []string   `json:"writers" yaml:"writers"`
	Actors     []string   `json:"actors" yaml:"actors"`
	Plot       string     `json:"plot" yaml:"plot"`
	Language   string     `json:"language" yaml:"language"`
	Country    string     `json:"country" yaml:"country"`
	Awards     *string    `json:"awards" yaml:"awards"`
	Ratings    []Rating   `json:"ratings" yaml:"ratings"`
	Metascore  *int       `json:"metaScore" yaml:"metaScore"`
	IMDbRating *int       `json:"imdbRating" yaml:"imdbRating"`
	IMDbVotes  *int       `json:"imdbVotes" yaml:"imdbVotes"`
	ID         string     `json:"ID" yaml:"ID"`
	Type       MediaType  `json:"type" yaml:"type"`
	DVD        *time.Time `json:"dvd" yaml:"dvd"`
	BoxOffice  *int       `json:"boxOffice" yaml:"boxOffice"`
	Production []string   `json:"production" yaml:"production"`
	Website    *string    `json:"website" yaml:"website"`
	ImageURL   string     `json:"imageUrl" yaml:"imageUrl"`
}

// GetID returns the IMDb ID of the record.
func (r MovieRecord) GetID() string { return r.ID }

// Poster is a raw poster payload. ContentType is sniffed from the bytes and
// does not tell a real poster apart from the provider's error image.
type Poster struct {
	Data        []byte
	ContentType string
}

// envelope is the status part shared by every JSON response.
type envelope struct {
	Response string `json:"Response"`
	Error    string `json:"Error,omitempty"`
}

// searchResponse is the raw OMDb search response.
type searchResponse struct {
	envelope
	Search       []searchHit `json:"Search"`
	TotalResults string      `json:"totalResults"`
}

type searchHit struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// recordResponse is the raw OMDb full record response.
type recordResponse struct {
	envelope
	Title      string      `json:"Title"`
	Year       string      `json:"Year"`
	Rated      string      `json:"Rated"`
	Released   string      `json:"Released"`
	Runtime    string      `json:"Runtime"`
	Genre      string      `json:"Genre"`
	Director   string      `json:"Director"`
	Writer     string      `json:"Writer"`
	Actors     string      `json:"Actors"`
	Plot       string      `json:"Plot"`
	Language   string      `json:"Language"`
	Country    string      `json:"Country"`
	Awards     string      `json:"Awards"`
	Poster     string      `json:"Poster"`
	Ratings    []rawRating `json:"Ratings"`
	Metascore  string      `json:"Metascore"`
	ImdbRating string      `json:"imdbRating"`
	ImdbVotes  string      `json:"imdbVotes"`
	ImdbID     string      `json:"imdbID"`
	Type       string      `json:"Type"`
	DVD        string      `json:"DVD"`
	BoxOffice  string      `json:"BoxOffice"`
	Production string      `json:"Production"`
	Website    string      `json:"Website"`
}

type rawRating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}
