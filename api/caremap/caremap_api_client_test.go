package caremap

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"caremap/api"
	"caremap/models"
)

func TestGetNearbyLocations(t *testing.T) {
	wantResp := models.NearbyResponse{
		Origin: models.SearchOrigin{Latitude: 44.23, Longitude: -76.48, DistanceKm: 200},
		Count:  1,
		Results: []models.Place{
			{ID: 7, Name: "Soup Kitchen", Category: "meals", Latitude: 44.23, Longitude: -76.48},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("expected GET; got %s", r.Method)
		}
		if r.URL.Path != "/location/nearby" {
			t.Errorf("expected path /location/nearby; got %s", r.URL.Path)
		}

		q := r.URL.Query()
		checks := []struct {
			key  string
			want string
		}{
			{"latitude", "44.23"},
			{"longitude", "-76.48"},
			{"radius_km", "200"},
			{"limit", "200"},
		}
		for _, c := range checks {
			if got := q.Get(c.key); got != c.want {
				t.Errorf("query[%q] = %q; want %q", c.key, got, c.want)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(wantResp)
	}))
	defer srv.Close()

	client := NewCareMapApiClient(api.NewHTTPClient(srv.URL))

	got, err := client.GetNearbyLocations(44.23, -76.48)
	if err != nil {
		t.Fatal(err)
	}
	if got.Count != wantResp.Count {
		t.Errorf("Count = %d; want %d", got.Count, wantResp.Count)
	}
	if len(got.Results) != 1 || got.Results[0].ID != 7 {
		t.Errorf("Results = %+v; want one place with id 7", got.Results)
	}
}

func TestGetNearbyLocations_NullHoursTolerated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"origin": {"latitude": 1, "longitude": 2, "distance_km": 3},
			"count": 2,
			"results": [
				{"id": 1, "name": "a", "category": "c", "address": "x",
				 "latitude": 1, "longitude": 2, "phone": null, "website": null,
				 "hours": null, "last_verified": ""},
				{"id": 2, "name": "b", "category": "c", "address": "y",
				 "latitude": 1, "longitude": 2, "phone": null, "website": null,
				 "hours": "not even json", "last_verified": ""}
			]
		}`)
	}))
	defer srv.Close()

	client := NewCareMapApiClient(api.NewHTTPClient(srv.URL))

	got, err := client.GetNearbyLocations(1, 2)
	if err != nil {
		t.Fatalf("Missing or malformed hours must not fail the payload: %v", err)
	}
	for _, p := range got.Results {
		if p.Hours != nil {
			t.Errorf("Expected nil hours for place %d, got %+v", p.ID, p.Hours)
		}
	}
}

func TestSearchPlaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("expected path /search; got %s", r.URL.Path)
		}

		q := r.URL.Query()
		if got := q.Get("category"); got != "shelter" {
			t.Errorf("category = %q; want shelter", got)
		}
		if got := q.Get("name"); got != "" {
			t.Errorf("name should be omitted when empty, got %q", got)
		}
		// Defaults applied when the caller leaves page/limit zero.
		if got := q.Get("page"); got != "1" {
			t.Errorf("page = %q; want 1", got)
		}
		if got := q.Get("limit"); got != "100" {
			t.Errorf("limit = %q; want 100", got)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.SearchResponse{Page: 1, Limit: 100, Total: 0, Pages: 0})
	}))
	defer srv.Close()

	client := NewCareMapApiClient(api.NewHTTPClient(srv.URL))

	got, err := client.SearchPlaces(models.SearchParams{Category: "shelter"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Page != 1 {
		t.Errorf("Page = %d; want 1", got.Page)
	}
}

func TestAddToWatchlist(t *testing.T) {
	var received map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("expected POST; got %s", r.Method)
		}
		if r.URL.Path != "/watchlist/add" {
			t.Errorf("expected path /watchlist/add; got %s", r.URL.Path)
		}

		b, _ := io.ReadAll(r.Body)
		json.Unmarshal(b, &received)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Service added to watchlist"})
	}))
	defer srv.Close()

	client := NewCareMapApiClient(api.NewHTTPClient(srv.URL))

	if err := client.AddToWatchlist(42); err != nil {
		t.Fatal(err)
	}
	if got, ok := received["service_id"]; !ok || got != 42.0 {
		t.Errorf("body[service_id] = %v; want 42", got)
	}
}

func TestRemoveFromWatchlist(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "DELETE" {
			t.Errorf("expected DELETE; got %s", r.Method)
		}
		if r.URL.Path != "/watchlist/42" {
			t.Errorf("expected path /watchlist/42; got %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewCareMapApiClient(api.NewHTTPClient(srv.URL))

	if err := client.RemoveFromWatchlist(42); err != nil {
		t.Fatal(err)
	}
}

func TestGetWatchlist(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/watchlist" {
			t.Errorf("expected path /watchlist; got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"watchlist": [3, 1, 4]}`)
	}))
	defer srv.Close()

	client := NewCareMapApiClient(api.NewHTTPClient(srv.URL))

	got, err := client.GetWatchlist()
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Watchlist) != 3 || got.Watchlist[0] != 3 {
		t.Errorf("Watchlist = %v; want [3 1 4]", got.Watchlist)
	}
}

func TestDeviceIdHeaderAttached(t *testing.T) {
	var gotHeader string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Device-Id")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"watchlist": []}`)
	}))
	defer srv.Close()

	httpClient := api.NewHTTPClient(srv.URL)
	httpClient.SetHeaderProvider(func() map[string]string {
		return map[string]string{"X-Device-Id": "device-abc"}
	})
	client := NewCareMapApiClient(httpClient)

	if _, err := client.GetWatchlist(); err != nil {
		t.Fatal(err)
	}
	if gotHeader != "device-abc" {
		t.Errorf("X-Device-Id = %q; want device-abc", gotHeader)
	}
}

func TestRemoteFailurePropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewCareMapApiClient(api.NewHTTPClient(srv.URL))

	if _, err := client.GetNearbyLocations(1, 2); err == nil {
		t.Error("Expected an error for a 500 response")
	}
	if _, err := client.SearchPlaces(models.SearchParams{}); err == nil {
		t.Error("Expected an error for a 500 response")
	}
}
