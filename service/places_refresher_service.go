package services

import (
	"log"
	"time"

	"caremap/api/caremap"
	redisdao "caremap/dao/redis"
)

// Location holds latitude and longitude for refresh jobs.
type Location struct {
	Lat float64
	Lng float64
}

// defaultLocations are the anchor coordinates whose surroundings get
// refreshed into the geo cache.
var defaultLocations = []Location{
	{
		// Kingston downtown
		Lat: 44.231172,
		Lng: -76.485954,
	},
	{
		// Kingston west end
		Lat: 44.246691,
		Lng: -76.573296,
	},
	{
		// Napanee
		Lat: 44.249592,
		Lng: -76.950499,
	},
}

// PlacesRefresherService periodically re-fetches places around the anchor
// locations and upserts them into the local geo cache.
type PlacesRefresherService struct {
	placeDao   *redisdao.RedisPlaceDAO
	careMapApi caremap.CareMapAPI
}

// NewPlacesRefresherService constructs a new Refresher with dependencies.
func NewPlacesRefresherService(
	placeDao *redisdao.RedisPlaceDAO,
	careMapApi caremap.CareMapAPI,
) *PlacesRefresherService {
	return &PlacesRefresherService{
		placeDao:   placeDao,
		careMapApi: careMapApi,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (pr *PlacesRefresherService) StartPeriodicJob(interval time.Duration) {
	go pr.startPeriodicJob(interval)
}

func (pr *PlacesRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[PlacesRefresherService] Running periodic places refresher job.")
		if err := pr.RefreshPlacesData(); err != nil {
			log.Printf("[PlacesRefresherService] RefreshPlacesData returned error: %v", err)
		} else {
			log.Println("[PlacesRefresherService] RefreshPlacesData completed successfully.")
		}
	}
}

// RefreshPlacesData fetches nearby places for each anchor location, dedupes
// them by id, and upserts them into the cache. Individual anchor failures
// are logged and skipped so one unreachable fetch doesn't abort the rest.
func (pr *PlacesRefresherService) RefreshPlacesData() error {
	seen := make(map[int]struct{})
	total := 0

	log.Printf("[PlacesRefresherService] Refreshing %d locations", len(defaultLocations))
	for _, loc := range defaultLocations {
		resp, err := pr.careMapApi.GetNearbyLocations(loc.Lat, loc.Lng)
		if err != nil {
			log.Printf("[PlacesRefresherService] Failed to fetch nearby for %v,%v: %v", loc.Lat, loc.Lng, err)
			continue
		}

		for _, p := range resp.Results {
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}

			if err := pr.placeDao.UpsertPlace(p); err != nil {
				log.Printf("[PlacesRefresherService] Upsert failed for place %d: %v", p.ID, err)
				continue
			}
			total++
		}
	}

	log.Printf("[PlacesRefresherService] Cached %d unique places", total)
	return nil
}
