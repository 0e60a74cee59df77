package di

import (
	"context"
	"fmt"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"caremap/api"
	"caremap/api/caremap"
	"caremap/config"
	redisdao "caremap/dao/redis"
	"caremap/db"
	"caremap/identity"
	"caremap/server"
	"caremap/server/handlers"
	services "caremap/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient            db.RedisClient
	RedisFavouriteDao      *redisdao.RedisFavouriteDAO
	RedisPlaceDao          *redisdao.RedisPlaceDAO
	DeviceIdentity         *identity.Provider
	CareMapAPI             caremap.CareMapAPI
	FavouritesService      *services.FavouritesService
	PlacesService          *services.PlacesService
	SearchService          *services.SearchService
	PlacesRefresherService *services.PlacesRefresherService
	PlaceHandler           *handlers.PlaceHandler
	FavouriteHandler       *handlers.FavouriteHandler
	MuxRouter              *mux.Router
	Router                 *server.Router
	CareMapHttpServer      *server.CareMapHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using in-memory store")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.RedisAddress(),
			Password: config.RedisPassword(),
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewGeoRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
	}

	// Device identity rides on the same local store, best-effort.
	deviceIdentity := identity.NewProvider(redisClient)

	var careMapApiClient caremap.CareMapAPI
	if env != "prod" {
		careMapApiClient = caremap.NewCareMapApiClientMock()
		log.Printf("Using mock caremap api")
	} else {
		log.Printf("Using prod caremap api at %s", config.APIBaseURL())
		httpClient := api.NewHTTPClient(config.APIBaseURL())
		httpClient.SetHeaderProvider(deviceIdentity.Headers)
		careMapApiClient = caremap.NewCareMapApiClient(httpClient)
	}

	redisFavouriteDao := redisdao.NewRedisFavouriteDAO(redisClient)
	redisPlaceDao := redisdao.NewRedisPlaceDAO(redisClient)

	favouritesService := services.NewFavouritesService(redisFavouriteDao, careMapApiClient)
	placesService := services.NewPlacesService(redisPlaceDao, careMapApiClient)
	searchService := services.NewSearchService(careMapApiClient, config.SEARCH_DEBOUNCE_MILLIS*time.Millisecond)
	placesRefresherService := services.NewPlacesRefresherService(redisPlaceDao, careMapApiClient)

	placeHandler := handlers.NewPlaceHandler(placesService, searchService)
	favouriteHandler := handlers.NewFavouriteHandler(favouritesService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(placeHandler, favouriteHandler, muxRouter)
	careMapHttpServer := server.NewCareMapHttpServer(router, muxRouter, config.ListenAddress())

	return &Container{
		RedisClient:            redisClient,
		RedisFavouriteDao:      redisFavouriteDao,
		RedisPlaceDao:          redisPlaceDao,
		DeviceIdentity:         deviceIdentity,
		CareMapAPI:             careMapApiClient,
		FavouritesService:      favouritesService,
		PlacesService:          placesService,
		SearchService:          searchService,
		PlacesRefresherService: placesRefresherService,
		PlaceHandler:           placeHandler,
		FavouriteHandler:       favouriteHandler,
		MuxRouter:              muxRouter,
		Router:                 router,
		CareMapHttpServer:      careMapHttpServer,
	}
}
