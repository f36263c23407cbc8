//go:build unit

package queries_test

import (
	"context"
	"testing"

	"bakery-preorder/internal/pkg/errs"
	"bakery-preorder/internal/usecase/queries"
	"bakery-preorder/internal/usecase/readmodel"
	queriesmock "bakery-preorder/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFeedQueriesList(t *testing.T) {
	t.Run("unconfigured fetcher yields the setup placeholder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fetcher := queriesmock.NewMockMediaFetcher(ctrl)
		fetcher.EXPECT().Configured().Return(false)
		// Fetch must not be called.

		view, err := queries.NewFeedQueries(fetcher).List(context.Background())
		require.NoError(t, err)
		assert.False(t, view.Configured)
		assert.Empty(t, view.Items)
		assert.Contains(t, view.Notice, "INSTAGRAM_ACCESS_TOKEN")
	})

	t.Run("configured fetcher returns the media list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fetcher := queriesmock.NewMockMediaFetcher(ctrl)

		items := []readmodel.MediaView{
			{ID: "1", MediaType: "IMAGE", MediaURL: "https://cdn.example.com/1.jpg", Permalink: "https://instagram.com/p/1"},
		}
		fetcher.EXPECT().Configured().Return(true)
		fetcher.EXPECT().Fetch(gomock.Any()).Return(items, nil)

		view, err := queries.NewFeedQueries(fetcher).List(context.Background())
		require.NoError(t, err)
		assert.True(t, view.Configured)
		assert.Equal(t, items, view.Items)
		assert.Empty(t, view.Notice)
	})

	t.Run("fetch failure is marked unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fetcher := queriesmock.NewMockMediaFetcher(ctrl)
		fetcher.EXPECT().Configured().Return(true)
		fetcher.EXPECT().Fetch(gomock.Any()).Return(nil, errs.New("api error"))

		_, err := queries.NewFeedQueries(fetcher).List(context.Background())
		assert.ErrorIs(t, err, queries.ErrFeedUnavailable)
	})
}
