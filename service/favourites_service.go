package services

import (
	"log"

	"caremap/api/caremap"
	redisdao "caremap/dao/redis"
	"caremap/models"
)

// FavouritesService is the local-first favourites workflow: mutations commit
// to local storage synchronously, then mirror to the remote watchlist on an
// independent goroutine. The mirror is fire-and-forget: its failure is
// logged and reported on the returned channel, never as the operation's
// error, and it never rolls back local state.
type FavouritesService struct {
	favouriteDao *redisdao.RedisFavouriteDAO
	careMapApi   caremap.CareMapAPI
}

// NewFavouritesService constructs a FavouritesService with its dependencies.
func NewFavouritesService(
	favouriteDao *redisdao.RedisFavouriteDAO,
	careMapApi caremap.CareMapAPI) *FavouritesService {

	return &FavouritesService{
		favouriteDao: favouriteDao,
		careMapApi:   careMapApi,
	}
}

// Add favourites a place. The error reflects only the local commit; the
// returned channel carries the single outcome of the remote mirror and may
// be ignored.
func (fs *FavouritesService) Add(place models.Place) (<-chan error, error) {
	rec := models.NewFavouriteRecord(place)
	if err := fs.favouriteDao.Add(rec); err != nil {
		return nil, err
	}

	return fs.mirror("add", place.ID, func() error {
		return fs.careMapApi.AddToWatchlist(place.ID)
	}), nil
}

// Remove unfavourites a place, with the same local-first contract as Add.
func (fs *FavouritesService) Remove(id int) (<-chan error, error) {
	if err := fs.favouriteDao.Remove(id); err != nil {
		return nil, err
	}

	return fs.mirror("delete", id, func() error {
		return fs.careMapApi.RemoveFromWatchlist(id)
	}), nil
}

// List returns the locally persisted favourites, newest first.
func (fs *FavouritesService) List() []models.FavouriteRecord {
	return fs.favouriteDao.List()
}

// Contains reports whether the place is favourited locally.
func (fs *FavouritesService) Contains(id int) bool {
	return fs.favouriteDao.Contains(id)
}

func (fs *FavouritesService) mirror(op string, id int, call func() error) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		err := call()
		if err != nil {
			log.Printf("[FavouritesService] Watchlist %s mirror failed for place %d: %v", op, id, err)
		}
		done <- err
	}()
	return done
}
