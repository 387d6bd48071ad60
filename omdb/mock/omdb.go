package mock

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/slipstream/omdb/omdb"
)

// Client is a mock implementation of the OMDb client backed by canned records.
type Client struct{}

// NewClient creates a new mock OMDb client.
func NewClient() *Client {
	return &Client{}
}

func (c *Client) Name() string {
	return "omdb-mock"
}

func (c *Client) Test(ctx context.Context) error {
	return nil
}

// Search matches the query case-insensitively against canned titles.
func (c *Client) Search(ctx context.Context, query string, opts *omdb.SearchOptions) ([]omdb.SearchResultItem, error) {
	var o omdb.SearchOptions
	if opts != nil {
		o = *opts
	}
	if err := omdb.ValidateSearch(query, o); err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	var results []omdb.SearchResultItem
	for _, id := range mockOrder {
		record := mockRecords[id]
		if !strings.Contains(strings.ToLower(record.Title), needle) {
			continue
		}
		if o.Type != "" && record.Type != o.Type {
			continue
		}
		if o.Year != nil && (record.Year == nil || *record.Year != *o.Year) {
			continue
		}
		poster := record.ImageURL
		results = append(results, omdb.SearchResultItem{
			Title:  record.Title,
			Year:   cloneInt(record.Year),
			ID:     record.ID,
			Type:   record.Type,
			Poster: &poster,
		})
	}
	if len(results) == 0 {
		return nil, notFound("search")
	}
	return results, nil
}

// GetByTitle matches the title case-insensitively, honoring the type and
// year filters.
func (c *Client) GetByTitle(ctx context.Context, title string, opts *omdb.TitleOptions) (*omdb.MovieRecord, error) {
	var o omdb.TitleOptions
	if opts != nil {
		o = *opts
	}
	if err := omdb.ValidateTitle(title, o); err != nil {
		return nil, err
	}

	for _, id := range mockOrder {
		record := mockRecords[id]
		if !strings.EqualFold(record.Title, strings.TrimSpace(title)) {
			continue
		}
		if o.Type != "" && record.Type != o.Type {
			continue
		}
		if o.Year != nil && (record.Year == nil || *record.Year != *o.Year) {
			continue
		}
		return cloneRecord(record), nil
	}
	return nil, notFound("getByTitle")
}

func (c *Client) GetByID(ctx context.Context, ref any, opts *omdb.IDOptions) (*omdb.MovieRecord, error) {
	id, err := omdb.ResolveID(ref)
	if err != nil {
		return nil, err
	}
	if opts != nil {
		if err := omdb.ValidateIDOptions(*opts); err != nil {
			return nil, err
		}
	}
	record, ok := mockRecords[id]
	if !ok {
		return nil, &omdb.Error{Kind: omdb.KindProvider, Op: "getById", Message: "Incorrect IMDb ID."}
	}
	return cloneRecord(record), nil
}

// GetPoster returns the same 1x1 PNG for every ID, like the provider's
// placeholder image.
func (c *Client) GetPoster(ctx context.Context, ref any) (*omdb.Poster, error) {
	if _, err := omdb.ResolveID(ref); err != nil {
		return nil, err
	}
	data := make([]byte, len(placeholderPNG))
	copy(data, placeholderPNG)
	return &omdb.Poster{Data: data, ContentType: "image/png"}, nil
}

// cloneRecord deep-copies a canned record so callers never share memory
// with mockRecords.
func cloneRecord(r omdb.MovieRecord) *omdb.MovieRecord {
	r.Year = cloneInt(r.Year)
	r.Released = cloneTime(r.Released)
	r.Runtime = cloneInt(r.Runtime)
	r.Genres = slices.Clone(r.Genres)
	r.Writers = slices.Clone(r.Writers)
	r.Actors = slices.Clone(r.Actors)
	r.Awards = cloneString(r.Awards)
	r.Metascore = cloneInt(r.Metascore)
	r.IMDbRating = cloneInt(r.IMDbRating)
	r.IMDbVotes = cloneInt(r.IMDbVotes)
	r.DVD = cloneTime(r.DVD)
	r.BoxOffice = cloneInt(r.BoxOffice)
	r.Production = slices.Clone(r.Production)
	r.Website = cloneString(r.Website)
	if r.Ratings != nil {
		ratings := make([]omdb.Rating, len(r.Ratings))
		for i, rating := range r.Ratings {
			ratings[i] = omdb.Rating{Source: rating.Source, Value: cloneFloat(rating.Value)}
		}
		r.Ratings = ratings
	}
	return &r
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneTime(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func notFound(op string) error {
	return &omdb.Error{Kind: omdb.KindProvider, Op: op, Message: "Movie not found!"}
}

func strPtr(s string) *string { return &s }

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func score(v float64) *float64 { return &v }

var placeholderPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

var mockOrder = []string{"tt1285016", "tt0118691", "tt0111161", "tt0133093", "tt0903747"}

var mockRecords = map[string]omdb.MovieRecord{
	"tt1285016": {
		Title:      "The Social Network",
		Year:       omdb.Int(2010),
		Rated:      "PG-13",
		Released:   date(2010, time.October, 1),
		Runtime:    omdb.Int(120),
		Genres:     []string{"Biography", "Drama"},
		Director:   "David Fincher",
		Writers:    []string{"Aaron Sorkin", "Ben Mezrich"},
		Actors:     []string{"Jesse Eisenberg", "Andrew Garfield", "Justin Timberlake"},
		Plot:       "As Harvard student Mark Zuckerberg creates the social networking site that would become known as Facebook, he is sued by the twins who claimed he stole their idea.",
		Language:   "English, French",
		Country:    "United States",
		Awards:     strPtr("Won 3 Oscars. 173 wins & 188 nominations total"),
		Ratings:    []omdb.Rating{{Source: "Internet Movie Database", Value: score(78)}, {Source: "Rotten Tomatoes", Value: score(96)}, {Source: "Metacritic", Value: score(95)}},
		Metascore:  omdb.Int(95),
		IMDbRating: omdb.Int(7),
		IMDbVotes:  omdb.Int(770000),
		ID:         "tt1285016",
		Type:       omdb.TypeMovie,
		DVD:        date(2011, time.January, 11),
		BoxOffice:  omdb.Int(96962694),
		Production: []string{"Columbia Pictures", "Relativity Media"},
		ImageURL:   "http://img.omdbapi.com/?i=tt1285016&apikey=mock",
	},
	"tt0118691": {
		Title:      "Good Burger",
		Year:       omdb.Int(1997),
		Rated:      "PG",
		Released:   date(1997, time.July, 25),
		Runtime:    omdb.Int(95),
		Genres:     []string{"Comedy", "Family", "Fantasy"},
		Director:   "Brian Robbins",
		Writers:    []string{"Dan Schneider", "Kevin Kopelow", "Heath Seifert"},
		Actors:     []string{"Kenan Thompson", "Kel Mitchell", "Abe Vigoda"},
		Plot:       "Two dimwitted high school students try to save their fast food restaurant.",
		Language:   "English",
		Country:    "United States",
		Ratings:    []omdb.Rating{{Source: "Internet Movie Database", Value: score(57)}, {Source: "Rotten Tomatoes", Value: score(33)}},
		Metascore:  omdb.Int(41),
		IMDbRating: omdb.Int(5),
		IMDbVotes:  omdb.Int(50000),
		ID:         "tt0118691",
		Type:       omdb.TypeMovie,
		BoxOffice:  omdb.Int(23712993),
		Production: []string{"Nickelodeon Movies"},
		ImageURL:   "http://img.omdbapi.com/?i=tt0118691&apikey=mock",
	},
	"tt0111161": {
		Title:      "The Shawshank Redemption",
		Year:       omdb.Int(1994),
		Rated:      "R",
		Released:   date(1994, time.October, 14),
		Runtime:    omdb.Int(142),
		Genres:     []string{"Drama"},
		Director:   "Frank Darabont",
		Writers:    []string{"Stephen King", "Frank Darabont"},
		Actors:     []string{"Tim Robbins", "Morgan Freeman", "Bob Gunton"},
		Plot:       "Over the course of several years, two convicts form a friendship, seeking consolation and, eventually, redemption through basic compassion.",
		Language:   "English",
		Country:    "United States",
		Awards:     strPtr("Nominated for 7 Oscars. 21 wins & 43 nominations total"),
		Ratings:    []omdb.Rating{{Source: "Internet Movie Database", Value: score(93)}, {Source: "Rotten Tomatoes", Value: score(91)}, {Source: "Metacritic", Value: score(82)}},
		Metascore:  omdb.Int(82),
		IMDbRating: omdb.Int(9),
		IMDbVotes:  omdb.Int(2800000),
		ID:         "tt0111161",
		Type:       omdb.TypeMovie,
		DVD:        date(1999, time.December, 21),
		BoxOffice:  omdb.Int(28767189),
		Production: []string{"Castle Rock Entertainment"},
		ImageURL:   "http://img.omdbapi.com/?i=tt0111161&apikey=mock",
	},
	"tt0133093": {
		Title:      "The Matrix",
		Year:       omdb.Int(1999),
		Rated:      "R",
		Released:   date(1999, time.March, 31),
		Runtime:    omdb.Int(136),
		Genres:     []string{"Action", "Sci-Fi"},
		Director:   "Lana Wachowski, Lilly Wachowski",
		Writers:    []string{"Lilly Wachowski", "Lana Wachowski"},
		Actors:     []string{"Keanu Reeves", "Laurence Fishburne", "Carrie-Anne Moss"},
		Plot:       "When a beautiful stranger leads computer hacker Neo to a forbidding underworld, he discovers the shocking truth.",
		Language:   "English",
		Country:    "United States, Australia",
		Awards:     strPtr("Won 4 Oscars. 42 wins & 52 nominations total"),
		Ratings:    []omdb.Rating{{Source: "Internet Movie Database", Value: score(87)}, {Source: "Rotten Tomatoes", Value: score(83)}, {Source: "Metacritic", Value: score(73)}},
		Metascore:  omdb.Int(73),
		IMDbRating: omdb.Int(8),
		IMDbVotes:  omdb.Int(2000000),
		ID:         "tt0133093",
		Type:       omdb.TypeMovie,
		DVD:        date(1999, time.September, 21),
		BoxOffice:  omdb.Int(172076928),
		ImageURL:   "http://img.omdbapi.com/?i=tt0133093&apikey=mock",
	},
	"tt0903747": {
		Title:      "Breaking Bad",
		Year:       omdb.Int(2008),
		Rated:      "TV-MA",
		Released:   date(2008, time.January, 20),
		Runtime:    omdb.Int(49),
		Genres:     []string{"Crime", "Drama", "Thriller"},
		Writers:    []string{"Vince Gilligan"},
		Actors:     []string{"Bryan Cranston", "Aaron Paul", "Anna Gunn"},
		Plot:       "A chemistry teacher diagnosed with inoperable lung cancer turns to manufacturing and selling methamphetamine.",
		Language:   "English, Spanish",
		Country:    "United States",
		Awards:     strPtr("Won 16 Primetime Emmys. 166 wins & 264 nominations total"),
		Ratings:    []omdb.Rating{{Source: "Internet Movie Database", Value: score(95)}},
		IMDbRating: omdb.Int(9),
		IMDbVotes:  omdb.Int(2000000),
		ID:         "tt0903747",
		Type:       omdb.TypeSeries,
		ImageURL:   "http://img.omdbapi.com/?i=tt0903747&apikey=mock",
	},
}
