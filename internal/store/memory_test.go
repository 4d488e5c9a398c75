package store

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryFindOrCreateDeduplicatesByCoordinates(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first, err := repo.FindOrCreate(ctx, SavedLocation{
		Name: "London", Country: "United Kingdom",
		Latitude: 51.52, Longitude: -0.11,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID == 0 {
		t.Fatal("expected assigned ID")
	}

	second, err := repo.FindOrCreate(ctx, SavedLocation{
		Name: "Somewhere else", Country: "UK",
		Latitude: 51.52, Longitude: -0.11,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("same coordinates created a second record: %d != %d", second.ID, first.ID)
	}

	n, _ := repo.Count(ctx)
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestMemoryGetByIDNotFound(t *testing.T) {
	repo := NewMemoryRepository()
	if _, err := repo.GetByID(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryFindByCoordinates(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	saved, _ := repo.FindOrCreate(ctx, SavedLocation{
		Name: "Paris", Country: "France", Latitude: 48.87, Longitude: 2.33,
	})

	got, err := repo.FindByCoordinates(ctx, 48.87, 2.33)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != saved.ID || got.Name != "Paris" {
		t.Errorf("got %+v", got)
	}

	if _, err := repo.FindByCoordinates(ctx, 0, 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryToggleFavorite(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	loc, _ := repo.FindOrCreate(ctx, SavedLocation{
		Name: "Tokyo", Country: "Japan", Latitude: 35.69, Longitude: 139.69,
	})

	fav, err := repo.ToggleFavorite(ctx, loc.ID)
	if err != nil || !fav {
		t.Fatalf("first toggle = (%v, %v), want (true, nil)", fav, err)
	}

	favs, _ := repo.Favorites(ctx)
	if len(favs) != 1 || favs[0].ID != loc.ID {
		t.Errorf("favorites = %+v", favs)
	}

	fav, err = repo.ToggleFavorite(ctx, loc.ID)
	if err != nil || fav {
		t.Fatalf("second toggle = (%v, %v), want (false, nil)", fav, err)
	}
}

func TestMemoryUpdateDetails(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	loc, _ := repo.FindOrCreate(ctx, SavedLocation{
		Name: "Custom Location", Latitude: 40.71, Longitude: -74.01,
	})

	updated, err := repo.UpdateDetails(ctx, loc.ID, "New York", "United States of America", "New York")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "New York" || updated.Region != "New York" {
		t.Errorf("got %+v", updated)
	}
}

func TestMemoryListLimit(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		repo.FindOrCreate(ctx, SavedLocation{
			Name: "loc", Latitude: float64(i), Longitude: float64(i),
		})
	}

	locs, err := repo.List(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(locs) != 3 {
		t.Errorf("len = %d, want 3", len(locs))
	}
}
