package db

import "context"

// RedisClient defines the key-value and geo operations the app needs from
// its local store.
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Del(key string) error
	Keys(pattern string) ([]string, error)
	AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error
	GetLocationsWithinRadius(key string, lat, lon, radiusKm float64) ([]string, error)
	GetContext() context.Context
	Ping() error
}
