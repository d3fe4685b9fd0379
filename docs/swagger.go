// Package docs Station Microservice API.
//
// Microservice that ingests the public Thai railway station dataset into
// PostGIS and serves nearest-station proximity queries.
//
// Endpoints:
// - Trigger ingestion of the remote station dataset
// - Find the stations nearest to a coordinate
// - Paginated nearest-station search
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- api_key:
//
//	SecurityDefinitions:
//	api_key:
//	     type: apiKey
//	     name: x-api-key
//	     in: header
//
// swagger:meta
package docs
