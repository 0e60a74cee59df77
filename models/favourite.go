package models

import "encoding/json"

// FavouriteRecord is the lightweight projection of a Place persisted when a
// user favourites it. Hours stays an opaque serialized string at store time;
// decoding is deferred to read time for display.
type FavouriteRecord struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Hours     string  `json:"hours"`
}

// NewFavouriteRecord projects a Place into its persisted favourite form.
func NewFavouriteRecord(p Place) FavouriteRecord {
	rec := FavouriteRecord{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Address:   p.Address,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
	}
	if p.Hours != nil {
		if raw, err := json.Marshal(p.Hours); err == nil {
			rec.Hours = string(raw)
		}
	}
	return rec
}

// ParsedHours decodes the stored schedule; nil when absent or malformed.
func (r FavouriteRecord) ParsedHours() *PlaceHours {
	return ParseHours(r.Hours)
}
