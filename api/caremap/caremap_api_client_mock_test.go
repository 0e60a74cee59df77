package caremap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"caremap/config"
	"caremap/models"
	"caremap/util"
)

func TestMock_GetNearbyLocations(t *testing.T) {
	t.Setenv("PROJECT_ROOT", "../..")

	client := NewCareMapApiClientMock()

	expected, err := util.ReadNearbyResponseFromJSON(config.GetResourcePath(config.NEARBY_RESPONSE_RESOURCE))
	if err != nil {
		t.Fatalf("expected no error when reading expected response, got %v", err)
	}

	response, err := client.GetNearbyLocations(44.23, -76.48)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	assert.Equal(t, expected, response, "Responses dont match")
}

func TestMock_SearchPlaces(t *testing.T) {
	t.Setenv("PROJECT_ROOT", "../..")

	client := NewCareMapApiClientMock()

	expected, err := util.ReadSearchResponseFromJSON(config.GetResourcePath(config.SEARCH_RESPONSE_RESOURCE))
	if err != nil {
		t.Fatalf("expected no error when reading expected response, got %v", err)
	}

	response, err := client.SearchPlaces(models.SearchParams{Category: "meals"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	assert.Equal(t, expected, response, "Responses dont match")
}

func TestMock_WatchlistRoundTrip(t *testing.T) {
	client := NewCareMapApiClientMock()

	if err := client.AddToWatchlist(7); err != nil {
		t.Fatal(err)
	}
	if err := client.AddToWatchlist(9); err != nil {
		t.Fatal(err)
	}
	// Duplicate adds are collapsed.
	if err := client.AddToWatchlist(7); err != nil {
		t.Fatal(err)
	}

	got, err := client.GetWatchlist()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []int{7, 9}, got.Watchlist)

	if err := client.RemoveFromWatchlist(7); err != nil {
		t.Fatal(err)
	}
	got, err = client.GetWatchlist()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []int{9}, got.Watchlist)
}
