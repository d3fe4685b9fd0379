package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Collector struct {
	reg *prometheus.Registry

	StationsUpserted prometheus.Counter
	StationsSkipped  prometheus.Counter
	StationWriteErrs prometheus.Counter
	IngestRuns       *prometheus.CounterVec // status label: ok|fetch_failed
	IngestDuration   prometheus.Histogram

	NearestQueries prometheus.Counter
	QueryDuration  prometheus.Histogram
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		StationsUpserted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stations_upserted_total",
			Help: "Total station records written (or skipped as existing) by ingestion.",
		}),
		StationsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stations_skipped_total",
			Help: "Total station records skipped for missing or invalid coordinates.",
		}),
		StationWriteErrs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "station_write_errors_total",
			Help: "Total per-record write failures during ingestion.",
		}),
		IngestRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "station_ingest_runs_total",
			Help: "Total ingestion runs by outcome.",
		}, []string{"status"}),
		IngestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "station_ingest_duration_seconds",
			Help:    "Duration of full ingestion runs.",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
		NearestQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "station_nearest_queries_total",
			Help: "Total nearest-station queries served.",
		}),
		QueryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "station_query_duration_seconds",
			Help:    "Latency of nearest-station database queries.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}

	reg.MustRegister(
		c.StationsUpserted, c.StationsSkipped, c.StationWriteErrs,
		c.IngestRuns, c.IngestDuration,
		c.NearestQueries, c.QueryDuration,
	)

	return c
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

// Serve starts a standalone HTTP server exposing /metrics on the given address.
func (c *Collector) Serve(addr string, logger *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Metrics server error", zap.Error(err))
		}
	}()
	logger.Info("Metrics listening", zap.String("address", addr))
	return srv
}
