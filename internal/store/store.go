// Package store persists saved locations. Two implementations exist:
// a process-local memory repository and a Postgres repository.
package store

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no saved location matches.
	ErrNotFound = errors.New("saved location not found")
)

// SavedLocation is a location the user has looked up or pinned.
type SavedLocation struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Region     string    `json:"region,omitempty"`
	Country    string    `json:"country"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	IsFavorite bool      `json:"is_favorite"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LocationRepository is the contract both repositories satisfy.
type LocationRepository interface {
	// FindOrCreate returns the existing location with these
	// coordinates or inserts loc as a new one.
	FindOrCreate(ctx context.Context, loc SavedLocation) (SavedLocation, error)

	// GetByID returns the location with the given ID.
	GetByID(ctx context.Context, id int64) (SavedLocation, error)

	// FindByCoordinates returns the location at exactly lat/lon.
	FindByCoordinates(ctx context.Context, lat, lon float64) (SavedLocation, error)

	// List returns up to limit locations, most recently updated first.
	List(ctx context.Context, limit int) ([]SavedLocation, error)

	// Favorites returns all favorite locations.
	Favorites(ctx context.Context) ([]SavedLocation, error)

	// ToggleFavorite flips the favorite flag and returns the new state.
	ToggleFavorite(ctx context.Context, id int64) (bool, error)

	// UpdateDetails refreshes name/country/region for a saved location,
	// used when a placeholder entry gets real data from the API.
	UpdateDetails(ctx context.Context, id int64, name, country, region string) (SavedLocation, error)

	// Count returns the number of saved locations.
	Count(ctx context.Context) (int, error)

	Close()
}
