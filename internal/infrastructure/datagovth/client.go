package datagovth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/station-microservice/internal/config"
	"github.com/station-microservice/internal/domain"
	"github.com/station-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	feedURL    string
	logger     *zap.Logger
}

// NewClient creates a client for the data.go.th railway station dataset.
func NewClient(cfg *config.FeedConfig, logger *zap.Logger) repository.StationFeed {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		feedURL: cfg.URL,
		logger:  logger,
	}
}

// FetchStations downloads the full station dataset. Any transport, status or
// decode failure is reported as a single error; there is no partial result.
func (c *client) FetchStations(ctx context.Context) ([]domain.RawStation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		c.logger.Error("Failed to create feed request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to fetch station feed", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch station feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("Station feed returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("station feed error: status %d", resp.StatusCode)
	}

	var stations []domain.RawStation
	if err := json.NewDecoder(resp.Body).Decode(&stations); err != nil {
		c.logger.Error("Failed to decode station feed", zap.Error(err))
		return nil, fmt.Errorf("failed to decode station feed: %w", err)
	}

	c.logger.Debug("Station feed fetched", zap.Int("records", len(stations)))

	return stations, nil
}
