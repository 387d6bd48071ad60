package omdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchParams_OmitsAbsentOptions(t *testing.T) {
	p := searchParams("key", "Alien", SearchOptions{})
	assert.Equal(t, params{{"apikey", "key"}, {"s", "Alien"}}, p)

	p = searchParams("key", "Alien", SearchOptions{Year: Int(1979)})
	assert.Equal(t, params{{"apikey", "key"}, {"s", "Alien"}, {"y", "1979"}}, p)
}

func TestTitleParams(t *testing.T) {
	p := titleParams("key", "Good Burger", TitleOptions{})
	assert.Equal(t, params{{"t", "Good Burger"}, {"apikey", "key"}}, p)

	p = titleParams("key", "Good Burger", TitleOptions{Type: TypeMovie, Year: Int(1997), Plot: PlotFull})
	assert.Equal(t, "t=Good+Burger&apikey=key&type=movie&y=1997&plot=full", p.Encode())
}

func TestIDParams(t *testing.T) {
	assert.Equal(t, "i=tt1285016&apikey=key", idParams("key", "tt1285016", IDOptions{}).Encode())
	assert.Equal(t, "i=tt1285016&apikey=key&plot=full", idParams("key", "tt1285016", IDOptions{Plot: PlotFull}).Encode())
	assert.Equal(t, "i=tt1285016&apikey=key", posterParams("key", "tt1285016").Encode())
}

func TestParams_Encode_Escapes(t *testing.T) {
	p := params{}.add("s", "Tom & Jerry?").add("apikey", "a/b")
	assert.Equal(t, "s=Tom+%26+Jerry%3F&apikey=a%2Fb", p.Encode())
	assert.Equal(t, "Tom & Jerry?", p.Get("s"))
	assert.Equal(t, "", p.Get("page"))
}

func TestResolveID(t *testing.T) {
	tests := []struct {
		name    string
		ref     any
		want    string
		wantErr bool
	}{
		{"string", "tt0111161", "tt0111161", false},
		{"IDRef", IDRef{ID: "tt0111161"}, "tt0111161", false},
		{"IDRef pointer", &IDRef{ID: "tt0111161"}, "tt0111161", false},
		{"search item", SearchResultItem{ID: "tt0111161"}, "tt0111161", false},
		{"record pointer", &MovieRecord{ID: "tt0111161"}, "tt0111161", false},
		{"struct with ID field", struct {
			ID    string
			Title string
		}{ID: "tt0111161", Title: "The Shawshank Redemption"}, "tt0111161", false},
		{"pointer to struct with ID field", &struct{ ID string }{ID: "tt0111161"}, "tt0111161", false},
		{"nil", nil, "", true},
		{"empty string", "", "", true},
		{"empty object", IDRef{}, "", true},
		{"nil record pointer", (*MovieRecord)(nil), "", true},
		{"int", 7, "", true},
		{"non-string ID field", struct{ ID int }{ID: 7}, "", true},
		{"unexported id field", struct{ id string }{id: "tt0111161"}, "", true},
		{"map", map[string]string{"ID": "tt0111161"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveID(opGetByID, tt.ref)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrValidation)
				assert.Contains(t, err.Error(), "missing ID")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMediaType_Valid(t *testing.T) {
	for _, mt := range []MediaType{TypeMovie, TypeSeries, TypeEpisode} {
		assert.True(t, mt.Valid(), mt)
	}
	assert.False(t, MediaType("").Valid())
	assert.False(t, MediaType("Movie").Valid())
	assert.True(t, PlotShort.Valid())
	assert.True(t, PlotFull.Valid())
	assert.False(t, PlotLength("long").Valid())
}
