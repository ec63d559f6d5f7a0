package mapbox

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/VinayNoogler000/RentEase/internal/config"
	apperrors "github.com/VinayNoogler000/RentEase/internal/pkg/errors"
)

func TestClient_Forward(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Contains(t, r.URL.Path, "/geocoding/v5/mapbox.places/")
			assert.Equal(t, "1", r.URL.Query().Get("limit"))
			assert.Equal(t, "test_token", r.URL.Query().Get("access_token"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"features": [
					{
						"place_name": "Paris, France",
						"geometry": {"type": "Point", "coordinates": [2.3522, 48.8566]}
					}
				]
			}`))
		}))
		defer server.Close()

		cfg := &config.MapboxConfig{
			AccessToken:    "test_token",
			BaseURL:        server.URL,
			RequestTimeout: 30,
		}

		geocoder := NewClient(cfg, logger)

		geometry, err := geocoder.Forward(context.Background(), "Paris", "France")
		require.NoError(t, err)
		require.NotNil(t, geometry)
		assert.Equal(t, "Point", geometry.Type)
		assert.Equal(t, []float64{2.3522, 48.8566}, geometry.Coordinates)
	})

	t.Run("no features found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"features": []}`))
		}))
		defer server.Close()

		cfg := &config.MapboxConfig{
			AccessToken:    "test_token",
			BaseURL:        server.URL,
			RequestTimeout: 30,
		}

		geocoder := NewClient(cfg, logger)

		geometry, err := geocoder.Forward(context.Background(), "Nowhereville", "Atlantis")
		assert.Nil(t, geometry)
		assert.True(t, errors.Is(err, apperrors.ErrGeocodingFailed))
	})

	t.Run("api error response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Not Authorized"}`))
		}))
		defer server.Close()

		cfg := &config.MapboxConfig{
			AccessToken:    "bad_token",
			BaseURL:        server.URL,
			RequestTimeout: 30,
		}

		geocoder := NewClient(cfg, logger)

		geometry, err := geocoder.Forward(context.Background(), "Paris", "France")
		assert.Nil(t, geometry)
		assert.True(t, errors.Is(err, apperrors.ErrGeocodingFailed))
	})

	t.Run("invalid coordinates rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"features": [
					{"place_name": "Broken", "geometry": {"type": "Point", "coordinates": [500, 500]}}
				]
			}`))
		}))
		defer server.Close()

		cfg := &config.MapboxConfig{
			AccessToken:    "test_token",
			BaseURL:        server.URL,
			RequestTimeout: 30,
		}

		geocoder := NewClient(cfg, logger)

		geometry, err := geocoder.Forward(context.Background(), "Paris", "France")
		assert.Nil(t, geometry)
		assert.True(t, errors.Is(err, apperrors.ErrGeocodingFailed))
	})

	t.Run("empty query", func(t *testing.T) {
		cfg := &config.MapboxConfig{
			AccessToken:    "test_token",
			BaseURL:        "https://api.mapbox.com",
			RequestTimeout: 30,
		}

		geocoder := NewClient(cfg, logger)

		geometry, err := geocoder.Forward(context.Background(), "", "")
		assert.Nil(t, geometry)
		assert.True(t, errors.Is(err, apperrors.ErrGeocodingFailed))
	})
}
