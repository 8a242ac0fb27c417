package wordsource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelimeci/kelimeci/internal/entities"
)

const wordDocument = `{
	"A1": [
		{"word": "house", "meaning": "ev", "example": "A big house."},
		{"word": "car", "meaning": "araba"}
	],
	"B1": [
		{"word": "journey", "meaning": "yolculuk"}
	]
}`

func TestClient_FetchWords(t *testing.T) {
	t.Run("parses level-keyed document", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Kelimeci/1.0", r.Header.Get("User-Agent"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(wordDocument))
		}))
		defer server.Close()

		client := NewClient(server.URL, "", time.Second)
		doc, err := client.FetchWords(context.Background())
		require.NoError(t, err)

		require.Len(t, doc, 2)
		assert.Len(t, doc[entities.LevelA1], 2)
		assert.Equal(t, "journey", doc[entities.LevelB1][0].Word)
	})

	t.Run("rejects empty document", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "", time.Second)
		_, err := client.FetchWords(context.Background())
		assert.ErrorContains(t, err, "empty")
	})

	t.Run("fails on non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(server.URL, "", time.Second)
		_, err := client.FetchWords(context.Background())
		assert.ErrorContains(t, err, "unexpected status")
	})

	t.Run("fails without configured URL", func(t *testing.T) {
		client := NewClient("", "", time.Second)
		_, err := client.FetchWords(context.Background())
		assert.ErrorContains(t, err, "not configured")
	})
}

func TestClient_FetchImageURLs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["https://img.example/a.jpg", "https://img.example/b.jpg"]`))
	}))
	defer server.Close()

	client := NewClient("", server.URL, time.Second)
	urls, err := client.FetchImageURLs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"https://img.example/a.jpg", "https://img.example/b.jpg"}, urls)
}
