package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"caremap/models"
)

func TestSearchService_Search(t *testing.T) {
	api := &stubCareMapAPI{
		searchResp: &models.SearchResponse{
			Results: []models.Place{{ID: 1, Name: "Hit"}},
			Page:    1,
		},
	}
	svc := NewSearchService(api, 0)

	got, err := svc.Search(models.SearchParams{Name: "hit"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("Results = %v; want one place with id 1", got)
	}
}

func TestSearchService_RemoteFailurePropagates(t *testing.T) {
	api := &stubCareMapAPI{searchErr: errors.New("503")}
	svc := NewSearchService(api, 0)

	if _, err := svc.Search(models.SearchParams{}); err == nil {
		t.Error("Expected remote failure to propagate")
	}
}

func TestSearchService_SupersededDuringDebounce(t *testing.T) {
	api := &stubCareMapAPI{
		searchResp: &models.SearchResponse{Results: []models.Place{{ID: 1}}},
	}
	svc := NewSearchService(api, 80*time.Millisecond)

	var wg sync.WaitGroup
	var firstErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = svc.Search(models.SearchParams{Name: "she"})
	}()

	// Let the first call enter its quiescence delay, then supersede it.
	time.Sleep(20 * time.Millisecond)
	got, err := svc.Search(models.SearchParams{Name: "shelter"})
	if err != nil {
		t.Fatalf("Latest search failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Latest search should return results, got %v", got)
	}

	wg.Wait()
	if !errors.Is(firstErr, ErrSuperseded) {
		t.Errorf("First search error = %v; want ErrSuperseded", firstErr)
	}
}

func TestSearchService_SupersededInFlight(t *testing.T) {
	api := &stubCareMapAPI{
		searchResp: &models.SearchResponse{Results: []models.Place{{ID: 1}}},
		searchWait: 60 * time.Millisecond,
	}
	svc := NewSearchService(api, 0)

	var wg sync.WaitGroup
	var firstErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = svc.Search(models.SearchParams{Name: "me"})
	}()

	// The first call is in flight; a newer one claims the generation so
	// the stale result must be discarded on return.
	time.Sleep(20 * time.Millisecond)
	if _, err := svc.Search(models.SearchParams{Name: "meal"}); err != nil {
		t.Fatalf("Latest search failed: %v", err)
	}

	wg.Wait()
	if !errors.Is(firstErr, ErrSuperseded) {
		t.Errorf("First search error = %v; want ErrSuperseded", firstErr)
	}
}
