package caremap

import "caremap/models"

// CareMapAPI defines the interface for interacting with the remote CareMap
// backend. Watchlist mutations are best-effort mirrors of local state and
// callers must not treat their failure as fatal.
type CareMapAPI interface {
	GetNearbyLocations(lat float64, lon float64) (*models.NearbyResponse, error)
	SearchPlaces(params models.SearchParams) (*models.SearchResponse, error)
	AddToWatchlist(serviceID int) error
	RemoveFromWatchlist(serviceID int) error
	GetWatchlist() (*models.WatchlistResponse, error)
}
