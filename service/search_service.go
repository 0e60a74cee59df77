package services

import (
	"errors"
	"sync/atomic"
	"time"

	"caremap/api/caremap"
	"caremap/models"
)

// ErrSuperseded is returned when a newer search was issued while this one
// was debouncing or in flight. Its results must be discarded, not applied.
var ErrSuperseded = errors.New("search superseded by a newer query")

// SearchService debounces search-as-you-type queries. Each call takes a
// generation token; after the quiescence delay and again after the remote
// call returns, the token is checked against the latest generation and stale
// results are dropped.
type SearchService struct {
	careMapApi caremap.CareMapAPI
	debounce   time.Duration
	generation uint64
}

// NewSearchService constructs a SearchService. A zero debounce disables the
// quiescence delay (useful in tests).
func NewSearchService(careMapApi caremap.CareMapAPI, debounce time.Duration) *SearchService {
	return &SearchService{
		careMapApi: careMapApi,
		debounce:   debounce,
	}
}

// Search issues a debounced search against the remote API.
func (ss *SearchService) Search(params models.SearchParams) ([]models.Place, error) {
	gen := atomic.AddUint64(&ss.generation, 1)

	if ss.debounce > 0 {
		time.Sleep(ss.debounce)
	}
	if atomic.LoadUint64(&ss.generation) != gen {
		return nil, ErrSuperseded
	}

	resp, err := ss.careMapApi.SearchPlaces(params)
	if err != nil {
		return nil, err
	}

	if atomic.LoadUint64(&ss.generation) != gen {
		return nil, ErrSuperseded
	}
	return resp.Results, nil
}
