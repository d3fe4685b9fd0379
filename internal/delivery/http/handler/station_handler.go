package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/station-microservice/internal/pkg/errors"
	"github.com/station-microservice/internal/pkg/utils"
	"github.com/station-microservice/internal/usecase"
	"github.com/station-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// StationHandler - HTTP handler for the station endpoints
type StationHandler struct {
	stationUC *usecase.StationUseCase
	ingestUC  *usecase.IngestUseCase
	logger    *zap.Logger
}

func NewStationHandler(stationUC *usecase.StationUseCase, ingestUC *usecase.IngestUseCase, logger *zap.Logger) *StationHandler {
	return &StationHandler{
		stationUC: stationUC,
		ingestUC:  ingestUC,
		logger:    logger,
	}
}

// FetchStations triggers a full ingestion run of the remote dataset.
func (h *StationHandler) FetchStations(c *fiber.Ctx) error {
	result, err := h.ingestUC.IngestStations(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.IngestResponse{
		Message:  "Stations loaded from API",
		Fetched:  result.Fetched,
		Upserted: result.Upserted,
		Skipped:  result.Skipped,
		Failed:   result.Failed,
	})
}

// GetNearbyStations returns the stations nearest to lat/lng.
func (h *StationHandler) GetNearbyStations(c *fiber.Ctx) error {
	req, err := parseNearestRequest(c, false)
	if err != nil {
		return utils.SendError(c, err)
	}

	stations, err := h.stationUC.Nearest(c.Context(), *req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(stations)
}

// GetNearbyStationsPaginated is the windowed variant driven by limit/page.
func (h *StationHandler) GetNearbyStationsPaginated(c *fiber.Ctx) error {
	req, err := parseNearestRequest(c, true)
	if err != nil {
		return utils.SendError(c, err)
	}

	stations, err := h.stationUC.Nearest(c.Context(), *req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(stations)
}

// Health reports service liveness and the stored station count.
func (h *StationHandler) Health(c *fiber.Ctx) error {
	count, err := h.stationUC.Stats(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.HealthResponse{
		Status:   "healthy",
		Stations: count,
	})
}

// parseNearestRequest reads the proximity query parameters. lat/lng are
// strict: missing is a 400 and so is a present-but-malformed value. limit and
// page deliberately fall back to their defaults on bad input.
func parseNearestRequest(c *fiber.Ctx, paginated bool) (*dto.NearestStationsRequest, error) {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	if latStr == "" || lngStr == "" {
		return nil, errors.ErrMissingCoordinates
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, errors.ErrInvalidCoordinates
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil, errors.ErrInvalidCoordinates
	}

	req := &dto.NearestStationsRequest{
		Lat:   lat,
		Lng:   lng,
		Limit: c.QueryInt("limit", 0),
	}
	if paginated {
		req.Page = c.QueryInt("page", 0)
	}

	return req, nil
}
