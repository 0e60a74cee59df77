package caremap

import (
	"fmt"
	"net/url"
	"strconv"

	"caremap/api"
	"caremap/config"
	"caremap/models"
)

// CareMapApiClient embeds the common HTTPClient
type CareMapApiClient struct {
	*api.HTTPClient
}

// NewCareMapApiClient creates a new instance of CareMapApiClient
func NewCareMapApiClient(httpClient *api.HTTPClient) *CareMapApiClient {
	return &CareMapApiClient{
		HTTPClient: httpClient,
	}
}

// GetNearbyLocations retrieves places around the given coordinates using the
// default radius and result limit.
func (c *CareMapApiClient) GetNearbyLocations(lat float64, lon float64) (*models.NearbyResponse, error) {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("radius_km", strconv.FormatFloat(config.NEARBY_DEFAULT_RADIUS_KM, 'f', -1, 64))
	query.Set("limit", strconv.Itoa(config.NEARBY_DEFAULT_LIMIT))

	var response models.NearbyResponse
	err := c.Request("GET", "/location/nearby?"+query.Encode(), nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// SearchPlaces runs a paginated name/category search.
func (c *CareMapApiClient) SearchPlaces(params models.SearchParams) (*models.SearchResponse, error) {
	query := url.Values{}
	if params.Name != "" {
		query.Set("name", params.Name)
	}
	if params.Category != "" {
		query.Set("category", params.Category)
	}
	page := params.Page
	if page <= 0 {
		page = config.SEARCH_DEFAULT_PAGE
	}
	limit := params.Limit
	if limit <= 0 {
		limit = config.SEARCH_DEFAULT_LIMIT
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var response models.SearchResponse
	err := c.Request("GET", "/search?"+query.Encode(), nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// AddToWatchlist mirrors a local favourite to the server-side watchlist.
func (c *CareMapApiClient) AddToWatchlist(serviceID int) error {
	body := models.WatchlistAddRequest{ServiceID: serviceID}
	return c.Request("POST", "/watchlist/add", nil, body, nil)
}

// RemoveFromWatchlist deletes a place from the server-side watchlist.
func (c *CareMapApiClient) RemoveFromWatchlist(serviceID int) error {
	return c.Request("DELETE", fmt.Sprintf("/watchlist/%d", serviceID), nil, nil, nil)
}

// GetWatchlist fetches the server-side watchlist ids.
func (c *CareMapApiClient) GetWatchlist() (*models.WatchlistResponse, error) {
	var response models.WatchlistResponse
	err := c.Request("GET", "/watchlist", nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
