package carddata

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScryfallResolverSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cards/named", r.URL.Path)
		assert.Equal(t, "Lightning Bolt", r.URL.Query().Get("exact"))

		_ = json.NewEncoder(w).Encode(namedCardResponse{
			Name:     "Lightning Bolt",
			TypeLine: "Instant",
		})
	}))
	defer srv.Close()

	r := NewScryfallResolver(srv.URL, 5*time.Second, nil)

	c, err := r.Resolve(context.Background(), "Lightning Bolt")
	require.NoError(t, err)
	assert.Equal(t, "Lightning Bolt", c.Name)
	assert.False(t, c.IsPermanent())
}

func TestScryfallResolverClassifiesTypeLine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(namedCardResponse{
			Name:     "Dryad Arbor",
			TypeLine: "Land Creature — Forest Dryad",
		})
	}))
	defer srv.Close()

	r := NewScryfallResolver(srv.URL, 5*time.Second, nil)

	c, err := r.Resolve(context.Background(), "Dryad Arbor")
	require.NoError(t, err)
	assert.True(t, c.IsCreature())
	assert.True(t, c.IsLand())
	assert.True(t, c.IsPermanent())
}

func TestScryfallResolverNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"object":"error"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	r := NewScryfallResolver(srv.URL, 5*time.Second, nil)

	_, err := r.Resolve(context.Background(), "No Such Card")
	require.ErrorIs(t, err, ErrCardNotFound)
}

func TestScryfallResolverServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := NewScryfallResolver(srv.URL, 5*time.Second, nil)

	_, err := r.Resolve(context.Background(), "Lightning Bolt")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCardNotFound)
}
