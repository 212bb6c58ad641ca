package genre

import (
	"context"
	"sort"
	"sync"

	"filmorate/internal/models"
)

// InMemoryGenreRepository serves the fixed genre enumeration from a map.
type InMemoryGenreRepository struct {
	mu     sync.RWMutex
	genres map[uint]models.Genre
}

func NewInMemoryGenreRepository(genres []models.Genre) *InMemoryGenreRepository {
	byID := make(map[uint]models.Genre, len(genres))
	for _, g := range genres {
		byID[g.ID] = g
	}
	return &InMemoryGenreRepository{genres: byID}
}

// DefaultGenres mirrors the rows seeded at migration time.
func DefaultGenres() []models.Genre {
	return []models.Genre{
		{ID: 1, Name: "Comedy"},
		{ID: 2, Name: "Drama"},
		{ID: 3, Name: "Cartoon"},
		{ID: 4, Name: "Thriller"},
		{ID: 5, Name: "Documentary"},
		{ID: 6, Name: "Action"},
	}
}

func (r *InMemoryGenreRepository) FindAll(ctx context.Context) ([]models.Genre, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	genres := make([]models.Genre, 0, len(r.genres))
	for _, g := range r.genres {
		genres = append(genres, g)
	}
	sort.Slice(genres, func(i, j int) bool { return genres[i].ID < genres[j].ID })
	return genres, nil
}

func (r *InMemoryGenreRepository) FindByID(ctx context.Context, id uint) (*models.Genre, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	genre, ok := r.genres[id]
	if !ok {
		return nil, nil
	}
	return &genre, nil
}
