package mock

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slipstream/omdb/omdb"
)

func TestClient_Search(t *testing.T) {
	client := NewClient()
	ctx := context.Background()

	results, err := client.Search(ctx, "the", nil)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "tt1285016", results[0].ID)

	results, err = client.Search(ctx, "the", &omdb.SearchOptions{Year: omdb.Int(1999)})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "The Matrix", results[0].Title)

	_, err = client.Search(ctx, "breaking", &omdb.SearchOptions{Type: omdb.TypeMovie})
	assert.True(t, omdb.IsNotFound(err))

	_, err = client.Search(ctx, "", nil)
	assert.ErrorIs(t, err, omdb.ErrValidation)
}

func TestClient_GetByID(t *testing.T) {
	client := NewClient()
	ctx := context.Background()

	byString, err := client.GetByID(ctx, "tt0111161", nil)
	require.NoError(t, err)
	byObject, err := client.GetByID(ctx, omdb.IDRef{ID: "tt0111161"}, nil)
	require.NoError(t, err)
	assert.Equal(t, byString, byObject)

	_, err = client.GetByID(ctx, "tt9999999", nil)
	assert.True(t, omdb.IsNotFound(err))

	_, err = client.GetByID(ctx, 12, nil)
	assert.ErrorIs(t, err, omdb.ErrValidation)
}

func TestClient_GetByTitle(t *testing.T) {
	record, err := NewClient().GetByTitle(context.Background(), "good burger", nil)
	require.NoError(t, err)
	assert.Equal(t, "tt0118691", record.ID)
	assert.Nil(t, record.Awards)
}

func TestClient_GetPoster(t *testing.T) {
	client := NewClient()
	poster, err := client.GetPoster(context.Background(), "tt1285016")
	require.NoError(t, err)
	assert.Equal(t, "image/png", poster.ContentType)

	poster.Data[0] = 0
	again, err := client.GetPoster(context.Background(), "tt1285016")
	require.NoError(t, err)
	assert.Equal(t, byte(0x89), again.Data[0])
}

func TestClient_Validation(t *testing.T) {
	client := NewClient()
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{"search page too high", func() error {
			_, err := client.Search(ctx, "the", &omdb.SearchOptions{Page: omdb.Int(500)})
			return err
		}},
		{"search page zero", func() error {
			_, err := client.Search(ctx, "the", &omdb.SearchOptions{Page: omdb.Int(0)})
			return err
		}},
		{"search invalid type", func() error {
			_, err := client.Search(ctx, "the", &omdb.SearchOptions{Type: "film"})
			return err
		}},
		{"title empty", func() error {
			_, err := client.GetByTitle(ctx, "", nil)
			return err
		}},
		{"title invalid plot", func() error {
			_, err := client.GetByTitle(ctx, "good burger", &omdb.TitleOptions{Plot: "medium"})
			return err
		}},
		{"title invalid type", func() error {
			_, err := client.GetByTitle(ctx, "good burger", &omdb.TitleOptions{Type: "film"})
			return err
		}},
		{"id invalid plot", func() error {
			_, err := client.GetByID(ctx, "tt0111161", &omdb.IDOptions{Plot: "medium"})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.call(), omdb.ErrValidation)
		})
	}
}

func TestClient_GetByTitle_Filters(t *testing.T) {
	client := NewClient()
	ctx := context.Background()

	_, err := client.GetByTitle(ctx, "breaking bad", &omdb.TitleOptions{Type: omdb.TypeMovie})
	assert.True(t, omdb.IsNotFound(err))

	_, err = client.GetByTitle(ctx, "the matrix", &omdb.TitleOptions{Year: omdb.Int(2003)})
	assert.True(t, omdb.IsNotFound(err))

	record, err := client.GetByTitle(ctx, "the matrix", &omdb.TitleOptions{Year: omdb.Int(1999), Plot: omdb.PlotFull})
	require.NoError(t, err)
	assert.Equal(t, "tt0133093", record.ID)
}

func TestClient_RecordsAreIsolated(t *testing.T) {
	client := NewClient()
	ctx := context.Background()

	first, err := client.GetByID(ctx, "tt0111161", nil)
	require.NoError(t, err)
	original, err := client.GetByID(ctx, "tt0111161", nil)
	require.NoError(t, err)

	first.Genres[0] = "changed"
	first.Actors = append(first.Actors[:0], "changed")
	*first.Year = 1
	*first.Ratings[0].Value = -1
	if first.Released != nil {
		*first.Released = first.Released.AddDate(10, 0, 0)
	}

	again, err := client.GetByID(ctx, "tt0111161", nil)
	require.NoError(t, err)
	assert.Equal(t, original, again)

	byTitle, err := client.GetByTitle(ctx, "the shawshank redemption", nil)
	require.NoError(t, err)
	byTitle.Genres[0] = "changed"

	again, err = client.GetByID(ctx, "tt0111161", nil)
	require.NoError(t, err)
	assert.Equal(t, original.Genres, again.Genres)
}

func TestClient_ConcurrentLookups(t *testing.T) {
	client := NewClient()
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			record, err := client.GetByID(ctx, "tt1285016", nil)
			if !assert.NoError(t, err) {
				return
			}
			record.Genres[0] = "changed"
		}()
	}
	wg.Wait()

	record, err := client.GetByID(ctx, "tt1285016", nil)
	require.NoError(t, err)
	assert.NotContains(t, record.Genres, "changed")
}
