package dto

// NearestStationsRequest carries a parsed proximity query. Limit and Page are
// zero when absent or unparsable and fall back to their defaults downstream.
type NearestStationsRequest struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Limit int     `json:"limit"`
	Page  int     `json:"page"`
}

// IngestResult summarizes a single ingestion run.
type IngestResult struct {
	Fetched  int `json:"fetched"`
	Upserted int `json:"upserted"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

// IngestResponse is the fetch endpoint payload.
type IngestResponse struct {
	Message  string `json:"message"`
	Fetched  int    `json:"fetched"`
	Upserted int    `json:"upserted"`
	Skipped  int    `json:"skipped"`
	Failed   int    `json:"failed"`
}

// HealthResponse is the health endpoint payload.
type HealthResponse struct {
	Status   string `json:"status"`
	Stations int64  `json:"stations"`
}
