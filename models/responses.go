package models

// SearchOrigin echoes the coordinates a nearby lookup was anchored to.
type SearchOrigin struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance_km"`
}

// NearbyResponse is the envelope returned by GET /location/nearby.
type NearbyResponse struct {
	Origin  SearchOrigin `json:"origin"`
	Count   int          `json:"count"`
	Results []Place      `json:"results"`
}

// SearchResponse is the paginated envelope returned by GET /search.
type SearchResponse struct {
	Results []Place `json:"results"`
	Page    int     `json:"page"`
	Limit   int     `json:"limit"`
	Total   int     `json:"total"`
	Pages   int     `json:"pages"`
}

// SearchParams are the supported filters for GET /search. Zero values are
// omitted from the query string; page/limit fall back to server defaults.
type SearchParams struct {
	Name     string
	Category string
	Page     int
	Limit    int
}

// WatchlistResponse is the envelope returned by GET /watchlist.
type WatchlistResponse struct {
	Watchlist []int `json:"watchlist"`
}

// WatchlistAddRequest is the body of POST /watchlist/add.
type WatchlistAddRequest struct {
	ServiceID int `json:"service_id"`
}
