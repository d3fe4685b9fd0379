package domain

import "time"

// RawStation is a single record of the remote dataset, decoded with the
// loosely-typed fields kept as-is so all normalization happens explicitly at
// the ingestion boundary. The feed names longitude "long" and uses the literal
// string "NULL" as an absent comment.
type RawStation struct {
	StationCode     string      `json:"station_code" validate:"required"`
	Name            *string     `json:"name"`
	EnName          *string     `json:"en_name"`
	ThShort         *string     `json:"th_short"`
	EnShort         *string     `json:"en_short"`
	ChName          *string     `json:"chname"`
	ControlDivision *string     `json:"controldivision"`
	ExactKm         interface{} `json:"exact_km"`
	ExactDistance   interface{} `json:"exact_distance"`
	Km              interface{} `json:"km"`
	Class           interface{} `json:"class"`
	Lat             interface{} `json:"lat"`
	Long            interface{} `json:"long"`
	Active          *bool       `json:"active"`
	Giveway         *bool       `json:"giveway"`
	DualTrack       *bool       `json:"dual_track"`
	Comment         *string     `json:"comment"`
}

// Station is the persisted entity, uniquely keyed by StationCode. The geom
// geography column is derived from Lng/Lat inside the upsert statement and is
// never written independently.
type Station struct {
	StationCode     string    `json:"station_code" db:"station_code"`
	Name            *string   `json:"name,omitempty" db:"name"`
	EnName          *string   `json:"en_name,omitempty" db:"en_name"`
	ThShort         *string   `json:"th_short,omitempty" db:"th_short"`
	EnShort         *string   `json:"en_short,omitempty" db:"en_short"`
	ChName          *string   `json:"chname,omitempty" db:"chname"`
	ControlDivision *string   `json:"controldivision,omitempty" db:"controldivision"`
	ExactKm         *float64  `json:"exact_km,omitempty" db:"exact_km"`
	ExactDistance   *float64  `json:"exact_distance,omitempty" db:"exact_distance"`
	Km              *float64  `json:"km,omitempty" db:"km"`
	Class           *string   `json:"class,omitempty" db:"class"`
	Lat             float64   `json:"lat" db:"lat"`
	Lng             float64   `json:"lng" db:"lng"`
	Active          *bool     `json:"active,omitempty" db:"active"`
	Giveway         *bool     `json:"giveway,omitempty" db:"giveway"`
	DualTrack       *bool     `json:"dual_track,omitempty" db:"dual_track"`
	Comment         *string   `json:"comment,omitempty" db:"comment"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// NearbyStation is one row of a proximity query result.
type NearbyStation struct {
	Name     *string `json:"name" db:"name"`
	EnName   *string `json:"en_name" db:"en_name"`
	Lat      float64 `json:"lat" db:"lat"`
	Lng      float64 `json:"lng" db:"lng"`
	Distance float64 `json:"distance" db:"distance"` // meters
}
