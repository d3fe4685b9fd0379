package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/station-microservice/internal/domain"
	"github.com/station-microservice/internal/domain/repository"
	"github.com/station-microservice/internal/pkg/errors"
	"github.com/station-microservice/internal/pkg/metrics"
	"github.com/station-microservice/internal/pkg/utils"
	"github.com/station-microservice/internal/pkg/validator"
	"github.com/station-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// commentNullSentinel is the literal string the feed emits for absent comments.
const commentNullSentinel = "NULL"

type IngestUseCase struct {
	feed        repository.StationFeed
	stationRepo repository.StationRepository
	logger      *zap.Logger
	collector   *metrics.Collector
}

func NewIngestUseCase(
	feed repository.StationFeed,
	stationRepo repository.StationRepository,
	logger *zap.Logger,
	collector *metrics.Collector,
) *IngestUseCase {
	return &IngestUseCase{
		feed:        feed,
		stationRepo: stationRepo,
		logger:      logger,
		collector:   collector,
	}
}

// IngestStations fetches the remote dataset and upserts every usable record.
// Fetch failure aborts the whole run; per-record failures are logged, counted
// and skipped. Records are processed sequentially, one write in flight, so
// every error stays attributable to its station_code.
func (uc *IngestUseCase) IngestStations(ctx context.Context) (*dto.IngestResult, error) {
	log := uc.logger.With(zap.String("run_id", uuid.New().String()))
	start := time.Now()

	records, err := uc.feed.FetchStations(ctx)
	if err != nil {
		log.Error("Failed to fetch station dataset", zap.Error(err))
		uc.collector.IngestRuns.WithLabelValues("fetch_failed").Inc()
		return nil, errors.ErrFetchFailed
	}

	log.Info("Starting station ingestion", zap.Int("records", len(records)))

	result := &dto.IngestResult{Fetched: len(records)}
	for _, rec := range records {
		if err := validator.Validate(&rec); err != nil {
			log.Warn("Skipping record without station_code", zap.Error(err))
			result.Skipped++
			uc.collector.StationsSkipped.Inc()
			continue
		}

		lat := utils.NormalizeNumber(rec.Lat)
		lng := utils.NormalizeNumber(rec.Long)
		if lat == nil || lng == nil || !utils.ValidateCoordinates(*lat, *lng) {
			log.Warn("Skipping station with unusable coordinates",
				zap.String("station_code", rec.StationCode),
				zap.Any("raw_lat", rec.Lat),
				zap.Any("raw_lng", rec.Long))
			result.Skipped++
			uc.collector.StationsSkipped.Inc()
			continue
		}

		comment := rec.Comment
		if comment != nil && *comment == commentNullSentinel {
			comment = nil
		}

		station := &domain.Station{
			StationCode:     rec.StationCode,
			Name:            rec.Name,
			EnName:          rec.EnName,
			ThShort:         rec.ThShort,
			EnShort:         rec.EnShort,
			ChName:          rec.ChName,
			ControlDivision: rec.ControlDivision,
			ExactKm:         utils.NormalizeNumber(rec.ExactKm),
			ExactDistance:   utils.NormalizeNumber(rec.ExactDistance),
			Km:              utils.NormalizeNumber(rec.Km),
			Class:           utils.NormalizeString(rec.Class),
			Lat:             *lat,
			Lng:             *lng,
			Active:          rec.Active,
			Giveway:         rec.Giveway,
			DualTrack:       rec.DualTrack,
			Comment:         comment,
		}

		if err := uc.stationRepo.Upsert(ctx, station); err != nil {
			log.Error("Failed to upsert station",
				zap.String("station_code", rec.StationCode),
				zap.Error(err))
			result.Failed++
			uc.collector.StationWriteErrs.Inc()
			continue
		}

		result.Upserted++
		uc.collector.StationsUpserted.Inc()
	}

	uc.collector.IngestRuns.WithLabelValues("ok").Inc()
	uc.collector.IngestDuration.Observe(time.Since(start).Seconds())

	log.Info("Finished station ingestion",
		zap.Int("fetched", result.Fetched),
		zap.Int("upserted", result.Upserted),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed),
		zap.Duration("duration", time.Since(start)))

	return result, nil
}
