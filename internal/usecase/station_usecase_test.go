package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/station-microservice/internal/domain"
	apperrors "github.com/station-microservice/internal/pkg/errors"
	"github.com/station-microservice/internal/pkg/metrics"
	"github.com/station-microservice/internal/usecase"
	"github.com/station-microservice/internal/usecase/dto"
)

func nearby(enName string, distance float64) *domain.NearbyStation {
	return &domain.NearbyStation{
		EnName:   strPtr(enName),
		Lat:      13.74,
		Lng:      100.52,
		Distance: distance,
	}
}

func TestStationUseCase_Nearest(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("returns stations in repository distance order", func(t *testing.T) {
		repo := &MockStationRepository{}
		ordered := []*domain.NearbyStation{
			nearby("Near", 10),
			nearby("Mid", 500),
			nearby("Far", 2000),
		}
		repo.On("Nearest", ctx, 13.74, 100.52, 3, 0).Return(ordered, nil)

		uc := usecase.NewStationUseCase(repo, logger, metrics.NewCollector())
		stations, err := uc.Nearest(ctx, dto.NearestStationsRequest{Lat: 13.74, Lng: 100.52, Limit: 3})

		require.NoError(t, err)
		require.Len(t, stations, 3)
		assert.Equal(t, "Near", *stations[0].EnName)
		assert.Equal(t, "Mid", *stations[1].EnName)
		assert.Equal(t, "Far", *stations[2].EnName)
		repo.AssertExpectations(t)
	})

	t.Run("defaults limit to 10 and page to 1", func(t *testing.T) {
		repo := &MockStationRepository{}
		repo.On("Nearest", ctx, 13.74, 100.52, 10, 0).Return([]*domain.NearbyStation{}, nil)

		uc := usecase.NewStationUseCase(repo, logger, metrics.NewCollector())
		_, err := uc.Nearest(ctx, dto.NearestStationsRequest{Lat: 13.74, Lng: 100.52})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("page translates to offset", func(t *testing.T) {
		repo := &MockStationRepository{}
		repo.On("Nearest", ctx, 13.74, 100.52, 2, 2).Return([]*domain.NearbyStation{}, nil)

		uc := usecase.NewStationUseCase(repo, logger, metrics.NewCollector())
		_, err := uc.Nearest(ctx, dto.NearestStationsRequest{Lat: 13.74, Lng: 100.52, Limit: 2, Page: 2})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("out-of-range coordinates rejected before any query", func(t *testing.T) {
		repo := &MockStationRepository{}

		uc := usecase.NewStationUseCase(repo, logger, metrics.NewCollector())
		stations, err := uc.Nearest(ctx, dto.NearestStationsRequest{Lat: 999, Lng: 100.52})

		assert.Nil(t, stations)
		assert.Equal(t, apperrors.ErrInvalidCoordinates, err)
		repo.AssertNotCalled(t, "Nearest", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		repo := &MockStationRepository{}
		repo.On("Nearest", ctx, 13.74, 100.52, 10, 0).Return(nil, apperrors.ErrDatabaseError)

		uc := usecase.NewStationUseCase(repo, logger, metrics.NewCollector())
		stations, err := uc.Nearest(ctx, dto.NearestStationsRequest{Lat: 13.74, Lng: 100.52})

		assert.Nil(t, stations)
		assert.Equal(t, apperrors.ErrDatabaseError, err)
	})
}

func TestStationUseCase_Stats(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	repo := &MockStationRepository{}
	repo.On("Count", ctx).Return(int64(447), nil)

	uc := usecase.NewStationUseCase(repo, logger, metrics.NewCollector())
	count, err := uc.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(447), count)
}
