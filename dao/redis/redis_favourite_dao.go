package redis

import (
	"encoding/json"
	"fmt"
	"log"

	"caremap/config"
	"caremap/db"
	"caremap/models"
)

// RedisFavouriteDAO persists the user's favourited places as one JSON list
// under a single well-known key. The whole list is serialized on every write
// so a failed write can never leave a partially updated record behind.
type RedisFavouriteDAO struct {
	client db.RedisClient
}

// NewRedisFavouriteDAO initializes a RedisFavouriteDAO with the Redis client.
func NewRedisFavouriteDAO(client db.RedisClient) *RedisFavouriteDAO {
	return &RedisFavouriteDAO{client: client}
}

// List returns all favourites, most recently added first. An unreadable or
// unparseable stored value counts as no favourites; List never fails.
func (dao *RedisFavouriteDAO) List() []models.FavouriteRecord {
	raw, err := dao.client.Get(config.SAVED_PLACES_KEY_V1)
	if err != nil {
		// First run or storage unavailable.
		return []models.FavouriteRecord{}
	}

	var records []models.FavouriteRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		// A prior schema's blob: treat as empty rather than propagate.
		log.Printf("[RedisFavouriteDAO] Ignoring unreadable favourites blob: %v", err)
		return []models.FavouriteRecord{}
	}
	return records
}

// Add inserts the record at the head of the list. Adding an id that is
// already present is a no-op: the existing record is preserved, not
// overwritten. A storage write failure is returned so the caller knows the
// favourite was not actually saved.
func (dao *RedisFavouriteDAO) Add(rec models.FavouriteRecord) error {
	records := dao.List()
	for _, existing := range records {
		if existing.ID == rec.ID {
			return nil
		}
	}

	updated := append([]models.FavouriteRecord{rec}, records...)
	return dao.save(updated)
}

// Remove deletes the record with the given id. Removing an absent id is a
// no-op and skips the write entirely.
func (dao *RedisFavouriteDAO) Remove(id int) error {
	records := dao.List()

	kept := make([]models.FavouriteRecord, 0, len(records))
	for _, rec := range records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(records) {
		return nil
	}

	return dao.save(kept)
}

// Contains reports whether the given id is currently favourited.
func (dao *RedisFavouriteDAO) Contains(id int) bool {
	for _, rec := range dao.List() {
		if rec.ID == id {
			return true
		}
	}
	return false
}

func (dao *RedisFavouriteDAO) save(records []models.FavouriteRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal favourites: %w", err)
	}
	if err := dao.client.Set(config.SAVED_PLACES_KEY_V1, string(data)); err != nil {
		return fmt.Errorf("failed to persist favourites: %w", err)
	}
	return nil
}
