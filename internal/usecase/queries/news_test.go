//go:build unit

package queries_test

import (
	"context"
	"testing"

	"bakery-preorder/internal/domain/news"
	"bakery-preorder/internal/pkg/errs"
	"bakery-preorder/internal/usecase/queries"
	queriesmock "bakery-preorder/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewsQueriesList(t *testing.T) {
	t.Run("file-backed list when no override is set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := queriesmock.NewMockNewsSource(ctrl)
		overrides := queriesmock.NewMockNewsOverrides(ctrl)

		stored := []news.Entry{{Date: "2026.08.01", Content: "夏季休業のお知らせ"}}
		overrides.EXPECT().Get(news.KindUpdate).Return(nil, false)
		source.EXPECT().Load(gomock.Any(), news.KindUpdate).Return(stored, nil)

		q := queries.NewNewsQueries(source, overrides)
		entries, err := q.List(context.Background(), news.KindUpdate)
		require.NoError(t, err)
		assert.Equal(t, stored, entries)
	})

	t.Run("override shadows the file-backed list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := queriesmock.NewMockNewsSource(ctrl)
		overrides := queriesmock.NewMockNewsOverrides(ctrl)

		preview := []news.Entry{{Date: "2026.09.01", Content: "プレビュー"}}
		overrides.EXPECT().Get(news.KindUpdate).Return(preview, true)
		// Source must not be consulted.

		q := queries.NewNewsQueries(source, overrides)
		entries, err := q.List(context.Background(), news.KindUpdate)
		require.NoError(t, err)
		assert.Equal(t, preview, entries)
	})

	t.Run("failing source degrades to an empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := queriesmock.NewMockNewsSource(ctrl)
		overrides := queriesmock.NewMockNewsOverrides(ctrl)

		overrides.EXPECT().Get(news.KindEvent).Return(nil, false)
		source.EXPECT().Load(gomock.Any(), news.KindEvent).Return(nil, errs.New("read failed"))

		q := queries.NewNewsQueries(source, overrides)
		entries, err := q.List(context.Background(), news.KindEvent)
		require.NoError(t, err)
		assert.Empty(t, entries)
		assert.NotNil(t, entries)
	})

	t.Run("unknown kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewNewsQueries(queriesmock.NewMockNewsSource(ctrl), queriesmock.NewMockNewsOverrides(ctrl))

		_, err := q.List(context.Background(), news.Kind("gossip"))
		assert.ErrorIs(t, err, queries.ErrUnknownNewsKind)
	})
}

func TestNewsQueriesPreview(t *testing.T) {
	t.Run("set preview stores the override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := queriesmock.NewMockNewsSource(ctrl)
		overrides := queriesmock.NewMockNewsOverrides(ctrl)

		entries := []news.Entry{{Content: "イベント告知"}}
		overrides.EXPECT().Set(news.KindEvent, entries)

		q := queries.NewNewsQueries(source, overrides)
		assert.NoError(t, q.SetPreview(news.KindEvent, entries))
	})

	t.Run("clear preview removes the override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := queriesmock.NewMockNewsSource(ctrl)
		overrides := queriesmock.NewMockNewsOverrides(ctrl)

		overrides.EXPECT().Clear(news.KindUpdate)

		q := queries.NewNewsQueries(source, overrides)
		assert.NoError(t, q.ClearPreview(news.KindUpdate))
	})

	t.Run("unknown kind is rejected before touching the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewNewsQueries(queriesmock.NewMockNewsSource(ctrl), queriesmock.NewMockNewsOverrides(ctrl))

		assert.ErrorIs(t, q.SetPreview(news.Kind("gossip"), nil), queries.ErrUnknownNewsKind)
		assert.ErrorIs(t, q.ClearPreview(news.Kind("gossip")), queries.ErrUnknownNewsKind)
	})
}
