package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/VinayNoogler000/RentEase/internal/config"
	"github.com/VinayNoogler000/RentEase/internal/domain"
	"github.com/VinayNoogler000/RentEase/internal/domain/repository"
	apperrors "github.com/VinayNoogler000/RentEase/internal/pkg/errors"
	"github.com/VinayNoogler000/RentEase/internal/pkg/utils"
)

type client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	logger      *zap.Logger
}

// geocodeResponse mirrors the Mapbox Geocoding v5 payload; only the
// fields needed to extract a point are decoded.
type geocodeResponse struct {
	Features []struct {
		PlaceName string `json:"place_name"`
		Geometry  struct {
			Type        string    `json:"type"`
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// NewClient creates a forward-geocoding client for the Mapbox API.
func NewClient(cfg *config.MapboxConfig, logger *zap.Logger) repository.Geocoder {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		logger:      logger,
	}
}

// Forward resolves "<location>, <country>" to a GeoJSON point. Any
// provider failure (transport, non-2xx, zero results, out-of-range
// coordinates) surfaces as ErrGeocodingFailed so callers can block the
// write instead of persisting stale coordinates.
func (c *client) Forward(ctx context.Context, location, country string) (*domain.Geometry, error) {
	query := location
	if country != "" {
		query = fmt.Sprintf("%s, %s", location, country)
	}
	if query == "" {
		return nil, apperrors.ErrGeocodingFailed
	}

	reqURL := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?access_token=%s&limit=1",
		c.baseURL,
		url.PathEscape(query),
		url.QueryEscape(c.accessToken),
	)

	c.logger.Debug("Calling Mapbox Geocoding API",
		zap.String("query", query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute geocoding request", zap.Error(err))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrGeocodingFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Mapbox API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrGeocodingFailed, resp.StatusCode)
	}

	var geoResp geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&geoResp); err != nil {
		c.logger.Error("Failed to decode geocoding response", zap.Error(err))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrGeocodingFailed, err)
	}

	if len(geoResp.Features) == 0 {
		c.logger.Warn("Mapbox returned no features for query",
			zap.String("query", query))
		return nil, apperrors.ErrGeocodingFailed
	}

	feature := geoResp.Features[0]
	if len(feature.Geometry.Coordinates) != 2 ||
		!utils.ValidateCoordinates(feature.Geometry.Coordinates[1], feature.Geometry.Coordinates[0]) {
		c.logger.Error("Mapbox returned invalid coordinates",
			zap.String("query", query),
			zap.Float64s("coordinates", feature.Geometry.Coordinates))
		return nil, apperrors.ErrGeocodingFailed
	}

	c.logger.Debug("Geocoding successful",
		zap.String("query", query),
		zap.String("place_name", feature.PlaceName),
		zap.Float64s("coordinates", feature.Geometry.Coordinates))

	return &domain.Geometry{
		Type:        "Point",
		Coordinates: feature.Geometry.Coordinates,
	}, nil
}
