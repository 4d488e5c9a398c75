package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepository is a concurrency-safe in-memory LocationRepository.
// It backs the application when no DATABASE_URL is configured; saved
// locations then live only for the life of the process.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	data   map[int64]SavedLocation
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextID: 1,
		data:   make(map[int64]SavedLocation),
	}
}

func (r *MemoryRepository) FindOrCreate(_ context.Context, loc SavedLocation) (SavedLocation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.data {
		if existing.Latitude == loc.Latitude && existing.Longitude == loc.Longitude {
			return existing, nil
		}
	}

	now := time.Now().UTC()
	loc.ID = r.nextID
	loc.CreatedAt = now
	loc.UpdatedAt = now
	r.nextID++
	r.data[loc.ID] = loc
	return loc, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id int64) (SavedLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	loc, ok := r.data[id]
	if !ok {
		return SavedLocation{}, ErrNotFound
	}
	return loc, nil
}

func (r *MemoryRepository) FindByCoordinates(_ context.Context, lat, lon float64) (SavedLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, loc := range r.data {
		if loc.Latitude == lat && loc.Longitude == lon {
			return loc, nil
		}
	}
	return SavedLocation{}, ErrNotFound
}

func (r *MemoryRepository) List(_ context.Context, limit int) ([]SavedLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	locs := make([]SavedLocation, 0, len(r.data))
	for _, loc := range r.data {
		locs = append(locs, loc)
	}
	sort.Slice(locs, func(i, j int) bool {
		return locs[i].UpdatedAt.After(locs[j].UpdatedAt)
	})
	if limit > 0 && len(locs) > limit {
		locs = locs[:limit]
	}
	return locs, nil
}

func (r *MemoryRepository) Favorites(_ context.Context) ([]SavedLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var favs []SavedLocation
	for _, loc := range r.data {
		if loc.IsFavorite {
			favs = append(favs, loc)
		}
	}
	sort.Slice(favs, func(i, j int) bool { return favs[i].Name < favs[j].Name })
	return favs, nil
}

func (r *MemoryRepository) ToggleFavorite(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	loc, ok := r.data[id]
	if !ok {
		return false, ErrNotFound
	}
	loc.IsFavorite = !loc.IsFavorite
	loc.UpdatedAt = time.Now().UTC()
	r.data[id] = loc
	return loc.IsFavorite, nil
}

func (r *MemoryRepository) UpdateDetails(_ context.Context, id int64, name, country, region string) (SavedLocation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	loc, ok := r.data[id]
	if !ok {
		return SavedLocation{}, ErrNotFound
	}
	loc.Name = name
	loc.Country = country
	loc.Region = region
	loc.UpdatedAt = time.Now().UTC()
	r.data[id] = loc
	return loc, nil
}

func (r *MemoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data), nil
}

func (r *MemoryRepository) Close() {}
