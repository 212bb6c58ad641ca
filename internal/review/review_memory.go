package review

import (
	"context"
	"sort"
	"sync"

	"filmorate/internal/models"
)

type reactionKey struct {
	reviewID uint
	userID   uint
}

// InMemoryReviewRepository keeps reviews and reactions in guarded maps.
// Usefulness is computed from the reactions on every read, same as the
// postgres implementation.
type InMemoryReviewRepository struct {
	mu        sync.RWMutex
	reviews   map[uint]models.Review
	reactions map[reactionKey]bool
	nextID    uint
}

func NewInMemoryReviewRepository() *InMemoryReviewRepository {
	return &InMemoryReviewRepository{
		reviews:   make(map[uint]models.Review),
		reactions: make(map[reactionKey]bool),
		nextID:    1,
	}
}

func (r *InMemoryReviewRepository) Create(ctx context.Context, review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	review.ID = r.nextID
	r.nextID++
	r.reviews[review.ID] = *review
	return nil
}

func (r *InMemoryReviewRepository) Update(ctx context.Context, review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.reviews[review.ID]
	if !ok {
		return nil
	}
	stored.Content = review.Content
	stored.IsPositive = review.IsPositive
	r.reviews[review.ID] = stored
	return nil
}

func (r *InMemoryReviewRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.reviews, id)
	for key := range r.reactions {
		if key.reviewID == id {
			delete(r.reactions, key)
		}
	}
	return nil
}

func (r *InMemoryReviewRepository) FindByID(ctx context.Context, id uint) (*models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	review, ok := r.reviews[id]
	if !ok {
		return nil, nil
	}
	review.Useful = r.useful(id)
	return &review, nil
}

func (r *InMemoryReviewRepository) FindAll(ctx context.Context, filmID uint, count int) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var reviews []models.Review
	for _, review := range r.reviews {
		if filmID != 0 && review.FilmID != filmID {
			continue
		}
		review.Useful = r.useful(review.ID)
		reviews = append(reviews, review)
	}
	sort.Slice(reviews, func(i, j int) bool {
		if reviews[i].Useful != reviews[j].Useful {
			return reviews[i].Useful > reviews[j].Useful
		}
		return reviews[i].ID < reviews[j].ID
	})
	if len(reviews) > count {
		reviews = reviews[:count]
	}
	return reviews, nil
}

func (r *InMemoryReviewRepository) Exists(ctx context.Context, id uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.reviews[id]
	return ok, nil
}

func (r *InMemoryReviewRepository) React(ctx context.Context, reviewID, userID uint, positive bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reactions[reactionKey{reviewID, userID}] = positive
	return nil
}

func (r *InMemoryReviewRepository) RemoveReaction(ctx context.Context, reviewID, userID uint, positive bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := reactionKey{reviewID, userID}
	if stored, ok := r.reactions[key]; ok && stored == positive {
		delete(r.reactions, key)
	}
	return nil
}

func (r *InMemoryReviewRepository) useful(reviewID uint) int {
	useful := 0
	for key, positive := range r.reactions {
		if key.reviewID != reviewID {
			continue
		}
		if positive {
			useful++
		} else {
			useful--
		}
	}
	return useful
}
