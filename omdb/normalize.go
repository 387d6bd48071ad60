package omdb

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// notAvailable is the provider's marker for an absent field.
const notAvailable = "N/A"

// imdbSource is rated on a 0-10 scale; everything else is already 0-100.
const imdbSource = "Internet Movie Database"

// releaseLayout is the date format OMDb uses for Released and DVD.
const releaseLayout = "02 Jan 2006"

var (
	listSeparator = regexp.MustCompile(`,\s?`)
	leadingIntRe  = regexp.MustCompile(`^[+-]?\d+`)
	leadingNumRe  = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)`)
)

// present trims s and reports it as absent when empty or "N/A".
func present(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == notAvailable {
		return "", false
	}
	return s, true
}

// optionalString maps the "N/A" sentinel to nil.
func optionalString(s string) *string {
	if _, ok := present(s); !ok {
		return nil
	}
	return &s
}

// leadingInt parses the integer prefix of s ("142 min" -> 142, "2005–2010" -> 2005).
func leadingInt(s string) *int {
	v, ok := present(s)
	if !ok {
		return nil
	}
	m := leadingIntRe.FindString(v)
	if m == "" {
		return nil
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &n
}

// leadingFloat parses the decimal prefix of s ("8.5/10" -> 8.5, "91%" -> 91).
func leadingFloat(s string) *float64 {
	v, ok := present(s)
	if !ok {
		return nil
	}
	m := leadingNumRe.FindString(v)
	if m == "" {
		return nil
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil
	}
	return &f
}

// groupedInt parses counts and amounts written with "$" and thousands separators.
func groupedInt(s string) *int {
	s = strings.Replace(s, "$", "", 1)
	s = strings.ReplaceAll(s, ",", "")
	return leadingInt(s)
}

// splitList splits a comma separated provider list, preserving order.
func splitList(s string) []string {
	v, ok := present(s)
	if !ok {
		return nil
	}
	return listSeparator.Split(v, -1)
}

func parseDate(s string) *time.Time {
	v, ok := present(s)
	if !ok {
		return nil
	}
	t, err := time.Parse(releaseLayout, v)
	if err != nil {
		return nil
	}
	return &t
}

// normalizeRatings returns nil only when the provider omitted Ratings; an
// empty array stays empty.
func normalizeRatings(raw []rawRating) []Rating {
	if raw == nil {
		return nil
	}
	ratings := make([]Rating, 0, len(raw))
	for _, r := range raw {
		value := leadingFloat(r.Value)
		if value != nil && r.Source == imdbSource {
			// Round away float noise such as 7.3*10 = 72.99999999999999.
			scaled := math.Round(*value*10*1e6) / 1e6
			value = &scaled
		}
		ratings = append(ratings, Rating{Source: r.Source, Value: value})
	}
	return ratings
}

func normalizeSearchHit(hit searchHit) SearchResultItem {
	return SearchResultItem{
		Title:  hit.Title,
		Year:   leadingInt(hit.Year),
		ID:     hit.ImdbID,
		Type:   MediaType(hit.Type),
		Poster: optionalString(hit.Poster),
	}
}

// normalizeRecord maps a full provider record; imageURL is supplied by the
// caller because the record's own Poster field is not usable.
func normalizeRecord(resp *recordResponse, imageURL string) *MovieRecord {
	return &MovieRecord{
		Title:      resp.Title,
		Year:       leadingInt(resp.Year),
		Rated:      resp.Rated,
		Released:   parseDate(resp.Released),
		Runtime:    leadingInt(resp.Runtime),
		Genres:     splitList(resp.Genre),
		Director:   resp.Director,
		Writers:    splitList(resp.Writer),
		Actors:     splitList(resp.Actors),
		Plot:       resp.Plot,
		Language:   resp.Language,
		Country:    resp.Country,
		Awards:     optionalString(resp.Awards),
		Ratings:    normalizeRatings(resp.Ratings),
		Metascore:  leadingInt(resp.Metascore),
		IMDbRating: leadingInt(resp.ImdbRating),
		IMDbVotes:  groupedInt(resp.ImdbVotes),
		ID:         resp.ImdbID,
		Type:       MediaType(resp.Type),
		DVD:        parseDate(resp.DVD),
		BoxOffice:  groupedInt(resp.BoxOffice),
		Production: splitList(resp.Production),
		Website:    optionalString(resp.Website),
		ImageURL:   imageURL,
	}
}
