package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"caremap/models"
	services "caremap/service"
)

// FavouriteWithStatus pairs a persisted favourite with its status at request
// time. The stored hours string is decoded here, at read time.
type FavouriteWithStatus struct {
	Favourite models.FavouriteRecord `json:"favourite"`
	Status    PlaceStatus            `json:"status"`
}

// FavouriteHandler serves the favourites list and mutations.
type FavouriteHandler struct {
	favouritesService *services.FavouritesService
}

func NewFavouriteHandler(favouritesService *services.FavouritesService) *FavouriteHandler {
	return &FavouriteHandler{favouritesService: favouritesService}
}

// ListFavourites handles GET /v1/favourites.
func (h *FavouriteHandler) ListFavourites(w http.ResponseWriter, r *http.Request) {
	records := h.favouritesService.List()
	now := time.Now()

	out := make([]FavouriteWithStatus, 0, len(records))
	for _, rec := range records {
		out = append(out, FavouriteWithStatus{
			Favourite: rec,
			Status:    statusOf(rec.ParsedHours(), now),
		})
	}

	writeJSON(w, out)
}

// AddFavourite handles POST /v1/favourites with a Place body. The response
// reflects only the local commit; the remote mirror runs on its own.
func (h *FavouriteHandler) AddFavourite(w http.ResponseWriter, r *http.Request) {
	var place models.Place
	if err := json.NewDecoder(r.Body).Decode(&place); err != nil {
		http.Error(w, "Invalid place payload", http.StatusBadRequest)
		return
	}

	if _, err := h.favouritesService.Add(place); err != nil {
		// Local persistence failed: the favourite was NOT saved and the
		// caller must know.
		log.Println("[FavouriteHandler] Local save failed:", err)
		http.Error(w, "Failed to save favourite", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"message": "Place added to favourites"})
}

// RemoveFavourite handles DELETE /v1/favourites/{id}.
func (h *FavouriteHandler) RemoveFavourite(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid favourite id", http.StatusBadRequest)
		return
	}

	if _, err := h.favouritesService.Remove(id); err != nil {
		log.Println("[FavouriteHandler] Local remove failed:", err)
		http.Error(w, "Failed to remove favourite", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
