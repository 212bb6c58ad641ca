package mpa

import (
	"context"
	"sort"
	"sync"

	"filmorate/internal/models"
)

// InMemoryMpaRepository serves the fixed MPA enumeration from a map.
type InMemoryMpaRepository struct {
	mu      sync.RWMutex
	ratings map[uint]models.MpaRating
}

func NewInMemoryMpaRepository(ratings []models.MpaRating) *InMemoryMpaRepository {
	byID := make(map[uint]models.MpaRating, len(ratings))
	for _, rating := range ratings {
		byID[rating.ID] = rating
	}
	return &InMemoryMpaRepository{ratings: byID}
}

// DefaultRatings mirrors the rows seeded at migration time.
func DefaultRatings() []models.MpaRating {
	return []models.MpaRating{
		{ID: 1, Name: "G"},
		{ID: 2, Name: "PG"},
		{ID: 3, Name: "PG-13"},
		{ID: 4, Name: "R"},
		{ID: 5, Name: "NC-17"},
	}
}

func (r *InMemoryMpaRepository) FindAll(ctx context.Context) ([]models.MpaRating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ratings := make([]models.MpaRating, 0, len(r.ratings))
	for _, rating := range r.ratings {
		ratings = append(ratings, rating)
	}
	sort.Slice(ratings, func(i, j int) bool { return ratings[i].ID < ratings[j].ID })
	return ratings, nil
}

func (r *InMemoryMpaRepository) FindByID(ctx context.Context, id uint) (*models.MpaRating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rating, ok := r.ratings[id]
	if !ok {
		return nil, nil
	}
	return &rating, nil
}
