package services

import (
	"log"

	"caremap/api/caremap"
	redisdao "caremap/dao/redis"
	"caremap/models"
)

// PlacesService answers nearby lookups from the remote API and keeps the
// local geo cache warm with whatever comes back.
type PlacesService struct {
	placeDao   *redisdao.RedisPlaceDAO
	careMapApi caremap.CareMapAPI
}

// NewPlacesService constructs a PlacesService with its dependencies.
func NewPlacesService(
	placeDao *redisdao.RedisPlaceDAO,
	careMapApi caremap.CareMapAPI) *PlacesService {

	return &PlacesService{
		placeDao:   placeDao,
		careMapApi: careMapApi,
	}
}

// GetNearbyPlaces fetches places around the coordinates from the remote API.
// Results are upserted into the geo cache best-effort; a remote failure is
// propagated so the caller can offer a retry.
func (ps *PlacesService) GetNearbyPlaces(lat, lon float64) ([]models.Place, error) {
	resp, err := ps.careMapApi.GetNearbyLocations(lat, lon)
	if err != nil {
		return nil, err
	}

	for _, p := range resp.Results {
		if err := ps.placeDao.UpsertPlace(p); err != nil {
			log.Printf("[PlacesService] Failed to cache place %d: %v", p.ID, err)
		}
	}
	return resp.Results, nil
}

// GetCachedNearbyPlaces serves a nearby lookup from the local geo cache,
// for when the remote API is unreachable.
func (ps *PlacesService) GetCachedNearbyPlaces(lat, lon, radiusKm float64) ([]models.Place, error) {
	return ps.placeDao.GetNearbyPlaces(lat, lon, radiusKm)
}
