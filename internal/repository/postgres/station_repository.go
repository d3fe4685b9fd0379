package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/station-microservice/internal/domain"
	"github.com/station-microservice/internal/domain/repository"
	"github.com/station-microservice/internal/pkg/errors"
	"go.uber.org/zap"
)

type stationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStationRepository(db *DB) repository.StationRepository {
	return &stationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// Upsert writes a single station row. The geography point is derived from
// lng/lat in the statement itself, and conflicting station codes are left
// untouched (first write wins).
func (r *stationRepository) Upsert(ctx context.Context, s *domain.Station) error {
	query := `
		INSERT INTO stations (
			station_code, name, en_name, th_short, en_short, chname,
			controldivision, exact_km, exact_distance, km, class,
			lat, lng, active, giveway, dual_track, comment, geom
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,
			$12,$13,$14,$15,$16,$17,
			ST_SetSRID(ST_MakePoint($13,$12),4326)::geography
		)
		ON CONFLICT (station_code) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query,
		s.StationCode, s.Name, s.EnName, s.ThShort, s.EnShort, s.ChName,
		s.ControlDivision, s.ExactKm, s.ExactDistance, s.Km, s.Class,
		s.Lat, s.Lng, s.Active, s.Giveway, s.DualTrack, s.Comment,
	)
	if err != nil {
		r.logger.Error("Failed to upsert station",
			zap.String("station_code", s.StationCode),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

// Nearest returns stations ordered by geodesic distance from the query point.
// The KNN operator drives the ordering off the GIST index and ST_Distance
// reports meters on the geography type.
func (r *stationRepository) Nearest(ctx context.Context, lat, lng float64, limit, offset int) ([]*domain.NearbyStation, error) {
	query := `
		SELECT name, en_name,
		       ST_Y(geom::geometry) AS lat,
		       ST_X(geom::geometry) AS lng,
		       ST_Distance(geom, ST_SetSRID(ST_MakePoint($1,$2),4326)::geography) AS distance
		FROM stations
		ORDER BY geom <-> ST_SetSRID(ST_MakePoint($1,$2),4326)::geography
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.QueryContext(ctx, query, lng, lat, limit, offset)
	if err != nil {
		r.logger.Error("Failed to query nearest stations", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	stations := make([]*domain.NearbyStation, 0, limit)
	for rows.Next() {
		var s domain.NearbyStation
		if err := rows.Scan(&s.Name, &s.EnName, &s.Lat, &s.Lng, &s.Distance); err != nil {
			r.logger.Error("Failed to scan nearby station", zap.Error(err))
			continue
		}
		stations = append(stations, &s)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Nearest stations row iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return stations, nil
}

func (r *stationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM stations`); err != nil {
		r.logger.Error("Failed to count stations", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return count, nil
}
