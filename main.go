package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"caremap/config"
	"caremap/di"
	"caremap/util"
)

func main() {
	config.LoadEnv()

	container := di.NewContainer(config.Environment())

	fmt.Println("warming places cache!")
	if err := container.PlacesRefresherService.RefreshPlacesData(); err != nil {
		log.Printf("[MAIN] Initial refresh failed: %v", err)
	}
	container.PlacesRefresherService.StartPeriodicJob(config.PLACES_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	if os.Getenv("CAREMAP_PLOT") != "" {
		plotCachedPlaces(container)
	}

	fmt.Println("starting server!")
	container.CareMapHttpServer.Start()
}

// plotCachedPlaces dumps the geo cache to an HTML scatter map, for eyeballing
// what the refresher collected.
func plotCachedPlaces(container *di.Container) {
	places, err := container.RedisPlaceDao.GetNearbyPlaces(44.231172, -76.485954, config.NEARBY_DEFAULT_RADIUS_KM)
	if err != nil {
		log.Printf("[MAIN] Could not read cached places for plotting: %v", err)
		return
	}
	if err := util.PlotPlaces(places, "places_map.html"); err != nil {
		log.Printf("[MAIN] Plotting failed: %v", err)
	}
}
