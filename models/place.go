package models

import (
	"encoding/json"
	"fmt"
)

// TimeAnchor pins one side of an open period to a weekday and clock time.
// Day uses the same numbering as time.Weekday: 0 = Sunday .. 6 = Saturday.
type TimeAnchor struct {
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// Period is one contiguous open window within a weekly schedule. A missing
// close anchor means the place stays open indefinitely from the open anchor.
type Period struct {
	Open  TimeAnchor  `json:"open"`
	Close *TimeAnchor `json:"close,omitempty"`
}

// PlaceHours is the weekly schedule attached to a place. OpenNow is a
// snapshot from the data source and may be stale; WeekdayDescriptions is
// opaque display text, never an input to hours resolution.
type PlaceHours struct {
	OpenNow             bool     `json:"openNow"`
	Periods             []Period `json:"periods"`
	WeekdayDescriptions []string `json:"weekdayDescriptions"`
	NextOpenTime        string   `json:"nextOpenTime,omitempty"`
	NextCloseTime       string   `json:"nextCloseTime,omitempty"`
}

// Place is a point of interest returned by the CareMap API.
type Place struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	Category     string      `json:"category"`
	Address      string      `json:"address"`
	Latitude     float64     `json:"latitude"`
	Longitude    float64     `json:"longitude"`
	Phone        *string     `json:"phone"`
	Website      *string     `json:"website"`
	Hours        *PlaceHours `json:"hours"`
	LastVerified string      `json:"last_verified"`
}

// UnmarshalJSON tolerates the two shapes the backend emits for "hours": an
// inline schedule object or an opaque JSON string holding one. Anything
// unreadable becomes nil rather than failing the whole payload.
func (p *Place) UnmarshalJSON(data []byte) error {
	// Alias avoids infinite recursion.
	type Alias Place
	aux := &struct {
		Hours json.RawMessage `json:"hours"`
		*Alias
	}{
		Alias: (*Alias)(p),
	}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	p.Hours = parseHoursRaw(aux.Hours)
	return nil
}

func (p *Place) ToString() string {
	return fmt.Sprintf("Place(id=%d, name=%s, category=%s, lat=%f, lon=%f)",
		p.ID, p.Name, p.Category, p.Latitude, p.Longitude)
}

// ParseHours decodes an opaque serialized schedule. Empty or malformed input
// yields nil; schedules are parsed on read, never on write.
func ParseHours(raw string) *PlaceHours {
	if raw == "" {
		return nil
	}
	var h PlaceHours
	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		return nil
	}
	return &h
}

func parseHoursRaw(raw json.RawMessage) *PlaceHours {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	// Some payloads double-encode hours as a JSON string.
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return ParseHours(asString)
	}
	var h PlaceHours
	if err := json.Unmarshal(raw, &h); err != nil {
		return nil
	}
	return &h
}
