package director

import (
	"context"
	"sort"
	"sync"

	"filmorate/internal/models"
)

// InMemoryDirectorRepository keeps directors in a guarded map.
type InMemoryDirectorRepository struct {
	mu        sync.RWMutex
	directors map[uint]models.Director
	nextID    uint
}

func NewInMemoryDirectorRepository() *InMemoryDirectorRepository {
	return &InMemoryDirectorRepository{
		directors: make(map[uint]models.Director),
		nextID:    1,
	}
}

func (r *InMemoryDirectorRepository) Create(ctx context.Context, director *models.Director) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	director.ID = r.nextID
	r.nextID++
	r.directors[director.ID] = *director
	return nil
}

func (r *InMemoryDirectorRepository) Update(ctx context.Context, director *models.Director) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.directors[director.ID] = *director
	return nil
}

func (r *InMemoryDirectorRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.directors, id)
	return nil
}

func (r *InMemoryDirectorRepository) FindAll(ctx context.Context) ([]models.Director, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	directors := make([]models.Director, 0, len(r.directors))
	for _, director := range r.directors {
		directors = append(directors, director)
	}
	sort.Slice(directors, func(i, j int) bool { return directors[i].ID < directors[j].ID })
	return directors, nil
}

func (r *InMemoryDirectorRepository) FindByID(ctx context.Context, id uint) (*models.Director, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	director, ok := r.directors[id]
	if !ok {
		return nil, nil
	}
	return &director, nil
}

func (r *InMemoryDirectorRepository) Exists(ctx context.Context, id uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.directors[id]
	return ok, nil
}
