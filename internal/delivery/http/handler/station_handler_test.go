package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/station-microservice/internal/config"
	httpDelivery "github.com/station-microservice/internal/delivery/http"
	"github.com/station-microservice/internal/delivery/http/handler"
	"github.com/station-microservice/internal/domain"
	"github.com/station-microservice/internal/pkg/metrics"
	"github.com/station-microservice/internal/usecase"
)

const testAPIKey = "test-secret"

type MockStationRepository struct {
	mock.Mock
}

func (m *MockStationRepository) Upsert(ctx context.Context, station *domain.Station) error {
	args := m.Called(ctx, station)
	return args.Error(0)
}

func (m *MockStationRepository) Nearest(ctx context.Context, lat, lng float64, limit, offset int) ([]*domain.NearbyStation, error) {
	args := m.Called(ctx, lat, lng, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.NearbyStation), args.Error(1)
}

func (m *MockStationRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockStationFeed struct {
	mock.Mock
}

func (m *MockStationFeed) FetchStations(ctx context.Context) ([]domain.RawStation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawStation), args.Error(1)
}

func newTestServer(repo *MockStationRepository, feed *MockStationFeed) *httpDelivery.Server {
	logger := zap.NewNop()
	collector := metrics.NewCollector()

	stationUC := usecase.NewStationUseCase(repo, logger, collector)
	ingestUC := usecase.NewIngestUseCase(feed, repo, logger, collector)
	h := handler.NewStationHandler(stationUC, ingestUC, logger)

	cfg := &config.Config{}
	cfg.Server.APIKey = testAPIKey

	return httpDelivery.NewServer(cfg, logger, h)
}

func doRequest(t *testing.T, srv *httpDelivery.Server, method, target, apiKey string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if apiKey != "" {
		req.Header.Set("x-api-key", apiKey)
	}
	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestStationRoutes_APIKeyGate(t *testing.T) {
	repo := &MockStationRepository{}
	srv := newTestServer(repo, &MockStationFeed{})

	t.Run("missing key", func(t *testing.T) {
		resp := doRequest(t, srv, http.MethodGet, "/stations/near?lat=13.7&lng=100.5", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong key", func(t *testing.T) {
		resp := doRequest(t, srv, http.MethodGet, "/stations/near?lat=13.7&lng=100.5", "nope")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	repo.AssertNotCalled(t, "Nearest", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetNearbyStations(t *testing.T) {
	t.Run("missing lng is a client error and touches no store state", func(t *testing.T) {
		repo := &MockStationRepository{}
		srv := newTestServer(repo, &MockStationFeed{})

		resp := doRequest(t, srv, http.MethodGet, "/stations/near?lat=13.7", testAPIKey)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		repo.AssertNotCalled(t, "Nearest", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed lat is rejected, not defaulted", func(t *testing.T) {
		repo := &MockStationRepository{}
		srv := newTestServer(repo, &MockStationFeed{})

		resp := doRequest(t, srv, http.MethodGet, "/stations/near?lat=abc&lng=100.5", testAPIKey)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "INVALID_COORDINATES")
		repo.AssertNotCalled(t, "Nearest", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("returns bare array ordered by distance", func(t *testing.T) {
		repo := &MockStationRepository{}
		en1, en2 := "Near", "Far"
		repo.On("Nearest", mock.Anything, 13.7, 100.5, 10, 0).Return([]*domain.NearbyStation{
			{EnName: &en1, Lat: 13.7, Lng: 100.5, Distance: 12.5},
			{EnName: &en2, Lat: 13.8, Lng: 100.6, Distance: 980.1},
		}, nil)
		srv := newTestServer(repo, &MockStationFeed{})

		resp := doRequest(t, srv, http.MethodGet, "/stations/near?lat=13.7&lng=100.5", testAPIKey)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result []domain.NearbyStation
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		require.Len(t, result, 2)
		assert.Equal(t, "Near", *result[0].EnName)
		assert.InDelta(t, 12.5, result[0].Distance, 1e-9)
	})

	t.Run("unparsable limit silently defaults to 10", func(t *testing.T) {
		repo := &MockStationRepository{}
		repo.On("Nearest", mock.Anything, 13.7, 100.5, 10, 0).Return([]*domain.NearbyStation{}, nil)
		srv := newTestServer(repo, &MockStationFeed{})

		resp := doRequest(t, srv, http.MethodGet, "/stations/near?lat=13.7&lng=100.5&limit=xyz", testAPIKey)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		repo.AssertExpectations(t)
	})
}

func TestGetNearbyStationsPaginated(t *testing.T) {
	repo := &MockStationRepository{}
	repo.On("Nearest", mock.Anything, 13.7, 100.5, 2, 2).Return([]*domain.NearbyStation{}, nil)
	srv := newTestServer(repo, &MockStationFeed{})

	resp := doRequest(t, srv, http.MethodGet, "/stations/near/paginate?lat=13.7&lng=100.5&limit=2&page=2", testAPIKey)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	repo.AssertExpectations(t)
}

func TestFetchStations(t *testing.T) {
	t.Run("reports run summary", func(t *testing.T) {
		repo := &MockStationRepository{}
		feed := &MockStationFeed{}

		name := "Bangkok"
		feed.On("FetchStations", mock.Anything).Return([]domain.RawStation{
			{StationCode: "1001", EnName: &name, Lat: 13.74, Long: 100.51},
			{StationCode: "1002", Lat: "N/A", Long: nil},
		}, nil)
		repo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

		srv := newTestServer(repo, feed)
		resp := doRequest(t, srv, http.MethodPost, "/stations/fetch", testAPIKey)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Stations loaded from API", body["message"])
		assert.EqualValues(t, 2, body["fetched"])
		assert.EqualValues(t, 1, body["upserted"])
		assert.EqualValues(t, 1, body["skipped"])
	})

	t.Run("fetch failure surfaces as server error", func(t *testing.T) {
		repo := &MockStationRepository{}
		feed := &MockStationFeed{}
		feed.On("FetchStations", mock.Anything).Return(nil, errors.New("connection reset"))

		srv := newTestServer(repo, feed)
		resp := doRequest(t, srv, http.MethodPost, "/stations/fetch", testAPIKey)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "FETCH_FAILED")
	})
}
