package util

import (
	"encoding/json"
	"fmt"
	"os"

	"caremap/models"
)

// ReadNearbyResponseFromJSON loads a NearbyResponse from JSON on disk.
func ReadNearbyResponseFromJSON(filePath string) (*models.NearbyResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.NearbyResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal NearbyResponse: %w", err)
	}
	return &resp, nil
}

// ReadSearchResponseFromJSON loads a SearchResponse from JSON on disk.
func ReadSearchResponseFromJSON(filePath string) (*models.SearchResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.SearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal SearchResponse: %w", err)
	}
	return &resp, nil
}

// ReadPlaceFromJSON loads a single Place from JSON on disk.
func ReadPlaceFromJSON(filePath string) (*models.Place, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var p models.Place
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Place: %w", err)
	}
	return &p, nil
}

// PrintNearbyResponsePartially prints key fields of a NearbyResponse.
func PrintNearbyResponsePartially(resp *models.NearbyResponse) {
	fmt.Printf("Origin: %.6f, %.6f (radius %.1f km)\n",
		resp.Origin.Latitude, resp.Origin.Longitude, resp.Origin.DistanceKm)
	fmt.Printf("Count: %d\n", resp.Count)
	if len(resp.Results) > 0 {
		p := resp.Results[0]
		fmt.Printf("First place: %s [%s] at %s (%.6f, %.6f)\n",
			p.Name, p.Category, p.Address, p.Latitude, p.Longitude)
	}
}
