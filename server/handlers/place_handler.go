package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"caremap/config"
	"caremap/hours"
	"caremap/models"
	services "caremap/service"
)

const (
	LATITUDE_QUERY_ARG  = "latitude"
	LONGITUDE_QUERY_ARG = "longitude"
	RADIUS_QUERY_ARG    = "radius_km"
	NAME_QUERY_ARG      = "name"
	CATEGORY_QUERY_ARG  = "category"
	PAGE_QUERY_ARG      = "page"
	LIMIT_QUERY_ARG     = "limit"
)

// PlaceStatus is the derived open/closing-soon/closed classification plus
// the display mapping the UI renders markers with.
type PlaceStatus struct {
	Status    string     `json:"status"`
	Label     string     `json:"label"`
	Color     string     `json:"color"`
	NextClose *time.Time `json:"next_close,omitempty"`
}

// PlaceWithStatus pairs a Place with its status at request time.
type PlaceWithStatus struct {
	Place  models.Place `json:"place"`
	Status PlaceStatus  `json:"status"`
}

// PlaceHandler serves nearby and search lookups over the local HTTP surface.
type PlaceHandler struct {
	placesService *services.PlacesService
	searchService *services.SearchService
}

func NewPlaceHandler(
	placesService *services.PlacesService,
	searchService *services.SearchService) *PlaceHandler {
	return &PlaceHandler{
		placesService: placesService,
		searchService: searchService,
	}
}

// GetNearbyPlaces handles GET /v1/places/nearby.
// Expects ?latitude={float}&longitude={float}[&radius_km={float}].
func (h *PlaceHandler) GetNearbyPlaces(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()

	lat, err := parseArgFloat64(vals, LATITUDE_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LATITUDE_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lon, err := parseArgFloat64(vals, LONGITUDE_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LONGITUDE_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radiusKm := config.NEARBY_DEFAULT_RADIUS_KM
	if v := vals.Get(RADIUS_QUERY_ARG); v != "" {
		if radiusKm, err = strconv.ParseFloat(v, 64); err != nil {
			http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
			return
		}
	}

	places, err := h.placesService.GetNearbyPlaces(lat, lon)
	if err != nil {
		log.Println("[PlaceHandler] Remote nearby lookup failed, trying cache:", err)
		cached, cacheErr := h.placesService.GetCachedNearbyPlaces(lat, lon, radiusKm)
		if cacheErr != nil || len(cached) == 0 {
			http.Error(w, "Nearby lookup unavailable", http.StatusBadGateway)
			return
		}
		places = cached
	}

	writeJSON(w, withStatuses(places, time.Now()))
}

// SearchPlaces handles GET /v1/search.
// Expects ?[name][&category][&page][&limit].
func (h *PlaceHandler) SearchPlaces(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()

	params := models.SearchParams{
		Name:     vals.Get(NAME_QUERY_ARG),
		Category: vals.Get(CATEGORY_QUERY_ARG),
	}
	if v := vals.Get(PAGE_QUERY_ARG); v != "" {
		params.Page, _ = strconv.Atoi(v)
	}
	if v := vals.Get(LIMIT_QUERY_ARG); v != "" {
		params.Limit, _ = strconv.Atoi(v)
	}

	places, err := h.searchService.Search(params)
	if err != nil {
		if errors.Is(err, services.ErrSuperseded) {
			// A newer query took over; nothing to render for this one.
			w.WriteHeader(http.StatusNoContent)
			return
		}
		log.Println("[PlaceHandler] Search failed:", err)
		http.Error(w, "Search unavailable", http.StatusBadGateway)
		return
	}

	writeJSON(w, withStatuses(places, time.Now()))
}

func withStatuses(places []models.Place, at time.Time) []PlaceWithStatus {
	out := make([]PlaceWithStatus, 0, len(places))
	for _, p := range places {
		out = append(out, PlaceWithStatus{
			Place:  p,
			Status: statusOf(p.Hours, at),
		})
	}
	return out
}

func statusOf(h *models.PlaceHours, at time.Time) PlaceStatus {
	eval := hours.Resolve(h, at)
	return PlaceStatus{
		Status:    string(eval.Status),
		Label:     eval.Status.Label(),
		Color:     eval.Status.Color(),
		NextClose: eval.NextClose,
	}
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}

// Ping handles GET /ping
func (h *PlaceHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}
