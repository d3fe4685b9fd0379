package usecase

import (
	"context"
	"time"

	"github.com/station-microservice/internal/domain"
	"github.com/station-microservice/internal/domain/repository"
	"github.com/station-microservice/internal/pkg/errors"
	"github.com/station-microservice/internal/pkg/metrics"
	"github.com/station-microservice/internal/pkg/utils"
	"github.com/station-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	// DefaultLimit applies when limit is absent or unparsable. Lenient
	// fallback is deliberate; only lat/lng are strict.
	DefaultLimit = 10
	DefaultPage  = 1
)

type StationUseCase struct {
	stationRepo repository.StationRepository
	logger      *zap.Logger
	collector   *metrics.Collector
}

func NewStationUseCase(
	stationRepo repository.StationRepository,
	logger *zap.Logger,
	collector *metrics.Collector,
) *StationUseCase {
	return &StationUseCase{
		stationRepo: stationRepo,
		logger:      logger,
		collector:   collector,
	}
}

// Nearest returns up to limit stations ordered by increasing geodesic distance
// from the query point, windowed by page. An offset past the end of the result
// set yields an empty slice.
func (uc *StationUseCase) Nearest(ctx context.Context, req dto.NearestStationsRequest) ([]*domain.NearbyStation, error) {
	// Rejects NaN/Inf as well as out-of-range values.
	if !utils.ValidateCoordinates(req.Lat, req.Lng) {
		return nil, errors.ErrInvalidCoordinates
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	page := req.Page
	if page <= 0 {
		page = DefaultPage
	}
	offset := (page - 1) * limit

	start := time.Now()
	stations, err := uc.stationRepo.Nearest(ctx, req.Lat, req.Lng, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to query nearest stations",
			zap.Float64("lat", req.Lat),
			zap.Float64("lng", req.Lng),
			zap.Error(err))
		return nil, err
	}

	uc.collector.NearestQueries.Inc()
	uc.collector.QueryDuration.Observe(time.Since(start).Seconds())

	return stations, nil
}

// Stats reports the number of stored stations for the health surface.
func (uc *StationUseCase) Stats(ctx context.Context) (int64, error) {
	count, err := uc.stationRepo.Count(ctx)
	if err != nil {
		uc.logger.Error("Failed to count stations", zap.Error(err))
		return 0, err
	}
	return count, nil
}
