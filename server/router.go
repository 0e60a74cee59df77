package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// PlaceRoutes are the lookup endpoints the router mounts.
type PlaceRoutes interface {
	GetNearbyPlaces(w http.ResponseWriter, r *http.Request)
	SearchPlaces(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

// FavouriteRoutes are the favourites endpoints the router mounts.
type FavouriteRoutes interface {
	ListFavourites(w http.ResponseWriter, r *http.Request)
	AddFavourite(w http.ResponseWriter, r *http.Request)
	RemoveFavourite(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	placeHandler     PlaceRoutes
	favouriteHandler FavouriteRoutes
	router           *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	placeHandler PlaceRoutes,
	favouriteHandler FavouriteRoutes,
	router *mux.Router) *Router {
	return &Router{
		placeHandler:     placeHandler,
		favouriteHandler: favouriteHandler,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?latitude={float}&longitude={float}[&radius_km={float}]
	r.router.HandleFunc("/v1/places/nearby", r.placeHandler.GetNearbyPlaces).Methods("GET")

	// expects ?[name][&category][&page][&limit]
	r.router.HandleFunc("/v1/search", r.placeHandler.SearchPlaces).Methods("GET")

	r.router.HandleFunc("/v1/favourites", r.favouriteHandler.ListFavourites).Methods("GET")
	r.router.HandleFunc("/v1/favourites", r.favouriteHandler.AddFavourite).Methods("POST")
	r.router.HandleFunc("/v1/favourites/{id}", r.favouriteHandler.RemoveFavourite).Methods("DELETE")

	r.router.HandleFunc("/ping", r.placeHandler.Ping).Methods("GET")
}
