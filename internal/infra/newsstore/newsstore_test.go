//go:build unit

package newsstore_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"bakery-preorder/internal/domain/news"
	"bakery-preorder/internal/infra/newsstore"
	"bakery-preorder/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	updatesPath := filepath.Join(dir, "news.json")
	eventsPath := filepath.Join(dir, "event_news.json")

	require.NoError(t, os.WriteFile(updatesPath, []byte(`[
		{"date": "2026.08.01", "content": "夏季休業のお知らせ"},
		{"date": "2026.07.15", "content": "新商品のご案内"}
	]`), 0o600))
	require.NoError(t, os.WriteFile(eventsPath, []byte(`[
		{"content": "マルシェに出店します"}
	]`), 0o600))

	source := newsstore.NewFileSource(config.NewsConfig{
		UpdatesPath: updatesPath,
		EventsPath:  eventsPath,
	})

	t.Run("updates", func(t *testing.T) {
		entries, err := source.Load(context.Background(), news.KindUpdate)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "2026.08.01", entries[0].Date)
		assert.Equal(t, "夏季休業のお知らせ", entries[0].Content)
	})

	t.Run("events have no dates", func(t *testing.T) {
		entries, err := source.Load(context.Background(), news.KindEvent)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Empty(t, entries[0].Date)
		assert.Equal(t, "マルシェに出店します", entries[0].Content)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := source.Load(context.Background(), news.Kind("gossip"))
		assert.ErrorIs(t, err, newsstore.ErrUnknownKind)
	})

	t.Run("missing file", func(t *testing.T) {
		broken := newsstore.NewFileSource(config.NewsConfig{
			UpdatesPath: filepath.Join(dir, "nope.json"),
			EventsPath:  eventsPath,
		})
		_, err := broken.Load(context.Background(), news.KindUpdate)
		assert.Error(t, err)
	})
}

func TestMemoryStore(t *testing.T) {
	t.Run("set then get", func(t *testing.T) {
		store := newsstore.NewMemoryStore()
		store.Set(news.KindUpdate, []news.Entry{{Date: "2026.08.31", Content: "テスト"}})

		entries, ok := store.Get(news.KindUpdate)
		require.True(t, ok)
		require.Len(t, entries, 1)
		assert.Equal(t, "テスト", entries[0].Content)

		_, ok = store.Get(news.KindEvent)
		assert.False(t, ok)
	})

	t.Run("clear removes the override", func(t *testing.T) {
		store := newsstore.NewMemoryStore()
		store.Set(news.KindEvent, []news.Entry{{Content: "イベント"}})
		store.Clear(news.KindEvent)

		_, ok := store.Get(news.KindEvent)
		assert.False(t, ok)
	})

	t.Run("empty override is distinct from no override", func(t *testing.T) {
		store := newsstore.NewMemoryStore()
		store.Set(news.KindUpdate, nil)

		entries, ok := store.Get(news.KindUpdate)
		assert.True(t, ok)
		assert.Empty(t, entries)
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		store := newsstore.NewMemoryStore()
		store.Set(news.KindUpdate, []news.Entry{{Content: "元の内容"}})

		entries, ok := store.Get(news.KindUpdate)
		require.True(t, ok)
		entries[0].Content = "書き換え"

		again, ok := store.Get(news.KindUpdate)
		require.True(t, ok)
		assert.Equal(t, "元の内容", again[0].Content)
	})

	t.Run("concurrent access", func(t *testing.T) {
		store := newsstore.NewMemoryStore()
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				store.Set(news.KindUpdate, []news.Entry{{Content: "並行書き込み"}})
			}()
			go func() {
				defer wg.Done()
				store.Get(news.KindUpdate)
			}()
		}
		wg.Wait()
	})
}
