//go:build unit

package instagram_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bakery-preorder/internal/infra/instagram"
	"bakery-preorder/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL, token string) *instagram.Client {
	return instagram.NewClient(config.InstagramConfig{
		BaseURL:     baseURL,
		AccessToken: token,
		Limit:       9,
		Timeout:     time.Second,
	})
}

func TestConfigured(t *testing.T) {
	assert.True(t, testClient("http://localhost", "tok").Configured())
	assert.False(t, testClient("http://localhost", "").Configured())
}

func TestFetch(t *testing.T) {
	t.Run("lists recent media", func(t *testing.T) {
		var gotPath, gotToken, gotLimit string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotToken = r.URL.Query().Get("access_token")
			gotLimit = r.URL.Query().Get("limit")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data": [
				{"id": "1", "caption": "焼きたてパン", "media_type": "IMAGE", "media_url": "https://cdn.example.com/1.jpg", "permalink": "https://instagram.com/p/1"},
				{"id": "2", "media_type": "VIDEO", "media_url": "https://cdn.example.com/2.mp4", "permalink": "https://instagram.com/p/2", "thumbnail_url": "https://cdn.example.com/2.jpg"}
			]}`))
		}))
		defer server.Close()

		items, err := testClient(server.URL, "tok").Fetch(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "/me/media", gotPath)
		assert.Equal(t, "tok", gotToken)
		assert.Equal(t, "9", gotLimit)

		require.Len(t, items, 2)
		assert.Equal(t, "1", items[0].ID)
		assert.Equal(t, "焼きたてパン", items[0].Caption)
		assert.Equal(t, "https://cdn.example.com/2.jpg", items[1].ThumbnailURL)
	})

	t.Run("api error payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error": {"message": "Invalid OAuth access token", "type": "OAuthException", "code": 190}}`))
		}))
		defer server.Close()

		_, err := testClient(server.URL, "bad").Fetch(context.Background())
		assert.ErrorIs(t, err, instagram.ErrAPIError)
	})

	t.Run("network error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close()

		_, err := testClient(server.URL, "tok").Fetch(context.Background())
		assert.Error(t, err)
	})

	t.Run("malformed response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html>not json</html>`))
		}))
		defer server.Close()

		_, err := testClient(server.URL, "tok").Fetch(context.Background())
		assert.Error(t, err)
	})
}
