package caremap

import (
	"fmt"
	"sync"

	"caremap/config"
	"caremap/models"
	"caremap/util"
)

// CareMapApiClientMock serves canned responses from the resources fixtures
// and records watchlist mutations in memory. Used outside prod and in tests.
type CareMapApiClientMock struct {
	mu        sync.Mutex
	watchlist []int
}

// NewCareMapApiClientMock creates a new instance of CareMapApiClientMock
func NewCareMapApiClientMock() *CareMapApiClientMock {
	return &CareMapApiClientMock{}
}

// GetNearbyLocations returns the nearby fixture regardless of coordinates.
func (c *CareMapApiClientMock) GetNearbyLocations(lat float64, lon float64) (*models.NearbyResponse, error) {
	response, err := util.ReadNearbyResponseFromJSON(config.GetResourcePath(config.NEARBY_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read nearby response from json")
		return nil, err
	}
	return response, nil
}

// SearchPlaces returns the search fixture regardless of filters.
func (c *CareMapApiClientMock) SearchPlaces(params models.SearchParams) (*models.SearchResponse, error) {
	response, err := util.ReadSearchResponseFromJSON(config.GetResourcePath(config.SEARCH_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read search response from json")
		return nil, err
	}
	return response, nil
}

// AddToWatchlist records the id in the in-memory watchlist.
func (c *CareMapApiClientMock) AddToWatchlist(serviceID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range c.watchlist {
		if id == serviceID {
			return nil
		}
	}
	c.watchlist = append(c.watchlist, serviceID)
	return nil
}

// RemoveFromWatchlist drops the id from the in-memory watchlist.
func (c *CareMapApiClientMock) RemoveFromWatchlist(serviceID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.watchlist[:0]
	for _, id := range c.watchlist {
		if id != serviceID {
			kept = append(kept, id)
		}
	}
	c.watchlist = kept
	return nil
}

// GetWatchlist returns the ids recorded so far.
func (c *CareMapApiClientMock) GetWatchlist() (*models.WatchlistResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]int, len(c.watchlist))
	copy(ids, c.watchlist)
	return &models.WatchlistResponse{Watchlist: ids}, nil
}
