package recommendation

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"filmorate/internal/apperrors"
	"filmorate/internal/film"
	"filmorate/internal/models"
	"filmorate/internal/user"

	"github.com/redis/go-redis/v9"
)

// maxCandidates caps the candidate list before ids are resolved to films.
const maxCandidates = 20

type RecommendationService interface {
	Recommend(ctx context.Context, userID uint) ([]models.Film, error)
}

type recommendationService struct {
	userRepo user.UserRepository
	filmRepo film.FilmRepository
	likeRepo film.LikeRepository
	cache    *redis.Client
	cacheTTL time.Duration
}

// NewRecommendationService wires the recommender. cache may be nil to
// disable result caching.
func NewRecommendationService(
	userRepo user.UserRepository,
	filmRepo film.FilmRepository,
	likeRepo film.LikeRepository,
	cache *redis.Client,
	cacheTTL time.Duration,
) RecommendationService {
	return &recommendationService{
		userRepo: userRepo,
		filmRepo: filmRepo,
		likeRepo: likeRepo,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Recommend returns films liked by users with overlapping taste that the
// target user has not liked yet. Every (shared film, neighbor) pair adds one
// point to each of the neighbor's candidate films; candidates are ranked by
// score descending with ascending film id as the tie-break, so the result is
// deterministic for a given like state. A user with no likes gets an empty
// list.
func (s *recommendationService) Recommend(ctx context.Context, userID uint) ([]models.Film, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("user with id %d not found", userID)
	}

	cacheKey := fmt.Sprintf("recommendations:%d", userID)
	if cached, ok := s.fromCache(ctx, cacheKey); ok {
		return cached, nil
	}

	userLikes, err := s.likeRepo.LikesOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(userLikes) == 0 {
		return []models.Film{}, nil
	}

	allLikes, err := s.likeRepo.AllLikes(ctx)
	if err != nil {
		return nil, err
	}

	scores := make(map[uint]int)
	for likedFilm := range userLikes {
		for neighborID, neighborLikes := range allLikes {
			if neighborID == userID || !neighborLikes[likedFilm] {
				continue
			}
			for candidate := range neighborLikes {
				if !userLikes[candidate] {
					scores[candidate]++
				}
			}
		}
	}

	candidates := make([]uint, 0, len(scores))
	for filmID := range scores {
		candidates = append(candidates, filmID)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if scores[candidates[i]] != scores[candidates[j]] {
			return scores[candidates[i]] > scores[candidates[j]]
		}
		return candidates[i] < candidates[j]
	})
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	films, err := s.filmRepo.FindByIDs(ctx, candidates)
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, cacheKey, films)
	return films, nil
}

func (s *recommendationService) fromCache(ctx context.Context, key string) ([]models.Film, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, err := s.cache.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var films []models.Film
	if err := json.Unmarshal([]byte(data), &films); err != nil {
		return nil, false
	}
	return films, true
}

func (s *recommendationService) toCache(ctx context.Context, key string, films []models.Film) {
	if s.cache == nil {
		return
	}
	if data, err := json.Marshal(films); err == nil {
		s.cache.Set(ctx, key, data, s.cacheTTL)
	}
}
