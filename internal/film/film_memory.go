package film

import (
	"context"
	"sort"
	"sync"

	"filmorate/internal/models"
)

// InMemoryFilmRepository keeps films and the like index in guarded maps.
// It implements both FilmRepository and LikeRepository so the service logic
// runs unchanged without postgres.
type InMemoryFilmRepository struct {
	mu     sync.RWMutex
	films  map[uint]models.Film
	likes  map[uint]map[uint]bool // filmID -> set of userIDs
	nextID uint
}

func NewInMemoryFilmRepository() *InMemoryFilmRepository {
	return &InMemoryFilmRepository{
		films:  make(map[uint]models.Film),
		likes:  make(map[uint]map[uint]bool),
		nextID: 1,
	}
}

func (r *InMemoryFilmRepository) Create(ctx context.Context, film *models.Film) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	film.ID = r.nextID
	r.nextID++
	r.films[film.ID] = *film
	return nil
}

func (r *InMemoryFilmRepository) Update(ctx context.Context, film *models.Film) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.films[film.ID] = *film
	return nil
}

func (r *InMemoryFilmRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.films, id)
	delete(r.likes, id)
	return nil
}

func (r *InMemoryFilmRepository) FindByID(ctx context.Context, id uint) (*models.Film, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	film, ok := r.films[id]
	if !ok {
		return nil, nil
	}
	return &film, nil
}

func (r *InMemoryFilmRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Film, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	films := make([]models.Film, 0, len(ids))
	for _, id := range ids {
		if film, ok := r.films[id]; ok {
			films = append(films, film)
		}
	}
	return films, nil
}

func (r *InMemoryFilmRepository) FindAll(ctx context.Context) ([]models.Film, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	films := make([]models.Film, 0, len(r.films))
	for _, film := range r.films {
		films = append(films, film)
	}
	sort.Slice(films, func(i, j int) bool { return films[i].ID < films[j].ID })
	return films, nil
}

func (r *InMemoryFilmRepository) FindFiltered(ctx context.Context, genreID uint, year int) ([]models.Film, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var films []models.Film
	for _, film := range r.films {
		if genreID != 0 && !hasGenre(film, genreID) {
			continue
		}
		if year != 0 && film.ReleaseDate.Year() != year {
			continue
		}
		films = append(films, film)
	}
	sort.Slice(films, func(i, j int) bool { return films[i].ID < films[j].ID })
	return films, nil
}

func (r *InMemoryFilmRepository) FindByDirector(ctx context.Context, directorID uint) ([]models.Film, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var films []models.Film
	for _, film := range r.films {
		for _, d := range film.Directors {
			if d.ID == directorID {
				films = append(films, film)
				break
			}
		}
	}
	sort.Slice(films, func(i, j int) bool { return films[i].ID < films[j].ID })
	return films, nil
}

func (r *InMemoryFilmRepository) Exists(ctx context.Context, id uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.films[id]
	return ok, nil
}

func hasGenre(film models.Film, genreID uint) bool {
	for _, g := range film.Genres {
		if g.ID == genreID {
			return true
		}
	}
	return false
}

/** --------------------LIKE INDEX-------------------- */

func (r *InMemoryFilmRepository) AddLike(ctx context.Context, filmID, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.likes[filmID] == nil {
		r.likes[filmID] = make(map[uint]bool)
	}
	r.likes[filmID][userID] = true
	return nil
}

func (r *InMemoryFilmRepository) RemoveLike(ctx context.Context, filmID, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.likes[filmID], userID)
	return nil
}

func (r *InMemoryFilmRepository) LikesOf(ctx context.Context, userID uint) (map[uint]bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	likes := make(map[uint]bool)
	for filmID, likers := range r.likes {
		if likers[userID] {
			likes[filmID] = true
		}
	}
	return likes, nil
}

func (r *InMemoryFilmRepository) LikersOf(ctx context.Context, filmID uint) (map[uint]bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	likers := make(map[uint]bool, len(r.likes[filmID]))
	for userID := range r.likes[filmID] {
		likers[userID] = true
	}
	return likers, nil
}

func (r *InMemoryFilmRepository) AllLikes(ctx context.Context) (map[uint]map[uint]bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make(map[uint]map[uint]bool)
	for filmID, likers := range r.likes {
		for userID := range likers {
			if all[userID] == nil {
				all[userID] = make(map[uint]bool)
			}
			all[userID][filmID] = true
		}
	}
	return all, nil
}

func (r *InMemoryFilmRepository) CountByFilm(ctx context.Context) (map[uint]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[uint]int, len(r.likes))
	for filmID, likers := range r.likes {
		if len(likers) > 0 {
			counts[filmID] = len(likers)
		}
	}
	return counts, nil
}
