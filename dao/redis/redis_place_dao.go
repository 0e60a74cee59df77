package redis

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"caremap/db"
	"caremap/models"
)

const PLACES_GEO_KEY_V1 = "places_geo_v1"
const PLACES_GEO_MEMBER_FORMAT_V1 = "places_geo_member_v1:%d"

// RedisPlaceDAO caches places in a Redis geo index so nearby lookups can be
// answered locally when the remote API is unreachable.
type RedisPlaceDAO struct {
	client db.RedisClient
}

// NewRedisPlaceDAO initializes a RedisPlaceDAO with the Redis client.
func NewRedisPlaceDAO(client db.RedisClient) *RedisPlaceDAO {
	return &RedisPlaceDAO{client: client}
}

// UpsertPlace stores the place as a geolocation member with its JSON data.
func (dao *RedisPlaceDAO) UpsertPlace(p models.Place) error {
	ctx := dao.client.GetContext()
	memberKey := fmt.Sprintf(PLACES_GEO_MEMBER_FORMAT_V1, p.ID)
	return dao.client.AddLocationWithJSON(ctx, PLACES_GEO_KEY_V1, memberKey, p.Latitude, p.Longitude, p)
}

// GetNearbyPlaces retrieves cached places within the given radius (in km).
func (dao *RedisPlaceDAO) GetNearbyPlaces(lat, lon, radiusKm float64) ([]models.Place, error) {
	placesJSON, err := dao.client.GetLocationsWithinRadius(PLACES_GEO_KEY_V1, lat, lon, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("[RedisPlaceDAO] failed to get places: %w", err)
	}

	places := make([]models.Place, len(placesJSON))
	for i, placeJSON := range placesJSON {
		if err := json.Unmarshal([]byte(placeJSON), &places[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal place JSON: %w", err)
		}
	}
	return places, nil
}

// ListAllPlaceIDs returns the ids of every place present in the geo cache.
func (dao *RedisPlaceDAO) ListAllPlaceIDs() ([]int, error) {
	pattern := strings.Replace(PLACES_GEO_MEMBER_FORMAT_V1, "%d", "*", 1)
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list place geo keys: %w", err)
	}

	prefix := strings.Replace(PLACES_GEO_MEMBER_FORMAT_V1, "%d", "", 1)
	ids := make([]int, 0, len(keys))
	for _, k := range keys {
		id, err := strconv.Atoi(strings.TrimPrefix(k, prefix))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
