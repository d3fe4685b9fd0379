package repository

import (
	"context"

	"github.com/station-microservice/internal/domain"
)

// StationRepository persists and queries railway stations.
type StationRepository interface {
	// Upsert inserts a station, doing nothing when station_code already exists.
	Upsert(ctx context.Context, station *domain.Station) error

	// Nearest returns stations ordered by ascending geodesic distance from the
	// given point, windowed by limit/offset.
	Nearest(ctx context.Context, lat, lng float64, limit, offset int) ([]*domain.NearbyStation, error)

	// Count returns the number of stored stations.
	Count(ctx context.Context) (int64, error)
}

// StationFeed retrieves the raw external station dataset.
type StationFeed interface {
	FetchStations(ctx context.Context) ([]domain.RawStation, error)
}
