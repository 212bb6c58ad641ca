package film

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"filmorate/internal/apperrors"
	"filmorate/internal/director"
	"filmorate/internal/genre"
	"filmorate/internal/models"
	"filmorate/internal/mpa"
	"filmorate/internal/user"

	"github.com/redis/go-redis/v9"
)

const (
	maxDescriptionLength = 200
	defaultPopularLimit  = 10

	// SortByYear and SortByLikes are the accepted orderings for the
	// films-by-director listing.
	SortByYear  = "year"
	SortByLikes = "likes"
)

// earliestReleaseDate is the historical first-film date; films cannot
// predate it.
var earliestReleaseDate = models.NewDate(1895, 12, 28)

type FilmService interface {
	Create(ctx context.Context, film *models.Film) (*models.Film, error)
	Update(ctx context.Context, film *models.Film) (*models.Film, error)
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.Film, error)
	GetAll(ctx context.Context) ([]models.Film, error)

	AddLike(ctx context.Context, filmID, userID uint) error
	RemoveLike(ctx context.Context, filmID, userID uint) error
	GetPopular(ctx context.Context, count int, genreID uint, year int) ([]models.Film, error)
	GetCommon(ctx context.Context, userID, friendID uint) ([]models.Film, error)
	GetByDirector(ctx context.Context, directorID uint, sortBy string) ([]models.Film, error)
}

type filmService struct {
	repo         FilmRepository
	likeRepo     LikeRepository
	genreRepo    genre.GenreRepository
	mpaRepo      mpa.MpaRepository
	directorRepo director.DirectorRepository
	userRepo     user.UserRepository
	cache        *redis.Client
	cacheTTL     time.Duration
}

// NewFilmService wires the film service. cache may be nil to disable the
// popular-films cache.
func NewFilmService(
	repo FilmRepository,
	likeRepo LikeRepository,
	genreRepo genre.GenreRepository,
	mpaRepo mpa.MpaRepository,
	directorRepo director.DirectorRepository,
	userRepo user.UserRepository,
	cache *redis.Client,
	cacheTTL time.Duration,
) FilmService {
	return &filmService{
		repo:         repo,
		likeRepo:     likeRepo,
		genreRepo:    genreRepo,
		mpaRepo:      mpaRepo,
		directorRepo: directorRepo,
		userRepo:     userRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
}

// validate checks the film's fields and resolves its MPA, genre and director
// references. Genres are deduplicated and ordered by id regardless of the
// request order.
func (s *filmService) validate(ctx context.Context, film *models.Film) error {
	if film.Name == "" {
		return apperrors.Validation("film name must not be empty")
	}
	if len([]rune(film.Description)) > maxDescriptionLength {
		return apperrors.Validation("film description must not exceed %d characters", maxDescriptionLength)
	}
	if film.ReleaseDate.IsZero() || film.ReleaseDate.Before(earliestReleaseDate.Time) {
		return apperrors.Validation("release date must not be before %s", earliestReleaseDate.Format("2006-01-02"))
	}
	if film.Duration <= 0 {
		return apperrors.Validation("film duration must be positive")
	}

	if film.Mpa.ID == 0 {
		return apperrors.Validation("mpa rating must be specified")
	}
	rating, err := s.mpaRepo.FindByID(ctx, film.Mpa.ID)
	if err != nil {
		return err
	}
	if rating == nil {
		return apperrors.NotFound("mpa rating with id %d not found", film.Mpa.ID)
	}
	film.Mpa = *rating
	film.MpaID = rating.ID

	seen := make(map[uint]bool, len(film.Genres))
	genres := make([]models.Genre, 0, len(film.Genres))
	for _, g := range film.Genres {
		if seen[g.ID] {
			continue
		}
		seen[g.ID] = true
		resolved, err := s.genreRepo.FindByID(ctx, g.ID)
		if err != nil {
			return err
		}
		if resolved == nil {
			return apperrors.NotFound("genre with id %d not found", g.ID)
		}
		genres = append(genres, *resolved)
	}
	sort.Slice(genres, func(i, j int) bool { return genres[i].ID < genres[j].ID })
	film.Genres = genres

	directors := make([]models.Director, 0, len(film.Directors))
	seenDirectors := make(map[uint]bool, len(film.Directors))
	for _, d := range film.Directors {
		if seenDirectors[d.ID] {
			continue
		}
		seenDirectors[d.ID] = true
		resolved, err := s.directorRepo.FindByID(ctx, d.ID)
		if err != nil {
			return err
		}
		if resolved == nil {
			return apperrors.NotFound("director with id %d not found", d.ID)
		}
		directors = append(directors, *resolved)
	}
	film.Directors = directors

	return nil
}

func (s *filmService) Create(ctx context.Context, film *models.Film) (*models.Film, error) {
	if err := s.validate(ctx, film); err != nil {
		return nil, err
	}
	film.ID = 0
	if err := s.repo.Create(ctx, film); err != nil {
		return nil, err
	}
	return film, nil
}

func (s *filmService) Update(ctx context.Context, film *models.Film) (*models.Film, error) {
	if err := s.ensureFilmExists(ctx, film.ID); err != nil {
		return nil, err
	}
	if err := s.validate(ctx, film); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, film); err != nil {
		return nil, err
	}
	return film, nil
}

func (s *filmService) Delete(ctx context.Context, id uint) error {
	if err := s.ensureFilmExists(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *filmService) GetByID(ctx context.Context, id uint) (*models.Film, error) {
	film, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if film == nil {
		return nil, apperrors.NotFound("film with id %d not found", id)
	}
	return film, nil
}

func (s *filmService) GetAll(ctx context.Context) ([]models.Film, error) {
	return s.repo.FindAll(ctx)
}

func (s *filmService) AddLike(ctx context.Context, filmID, userID uint) error {
	if err := s.ensureFilmExists(ctx, filmID); err != nil {
		return err
	}
	if err := s.ensureUserExists(ctx, userID); err != nil {
		return err
	}
	return s.likeRepo.AddLike(ctx, filmID, userID)
}

func (s *filmService) RemoveLike(ctx context.Context, filmID, userID uint) error {
	if err := s.ensureFilmExists(ctx, filmID); err != nil {
		return err
	}
	if err := s.ensureUserExists(ctx, userID); err != nil {
		return err
	}
	return s.likeRepo.RemoveLike(ctx, filmID, userID)
}

// GetPopular ranks films by like count descending with ascending film id as
// the tie-break, so repeated calls over unchanged state return the identical
// order. Films without likes rank last. A non-positive count falls back to
// the default limit.
func (s *filmService) GetPopular(ctx context.Context, count int, genreID uint, year int) ([]models.Film, error) {
	if count <= 0 {
		count = defaultPopularLimit
	}

	cacheKey := fmt.Sprintf("films:popular:%d:%d:%d", count, genreID, year)
	if cached, ok := s.fromCache(ctx, cacheKey); ok {
		return cached, nil
	}

	films, err := s.repo.FindFiltered(ctx, genreID, year)
	if err != nil {
		return nil, err
	}
	counts, err := s.likeRepo.CountByFilm(ctx)
	if err != nil {
		return nil, err
	}

	rankByLikes(films, counts)
	if len(films) > count {
		films = films[:count]
	}

	s.toCache(ctx, cacheKey, films)
	return films, nil
}

// GetCommon returns the films both users liked, in popularity order.
func (s *filmService) GetCommon(ctx context.Context, userID, friendID uint) ([]models.Film, error) {
	if err := s.ensureUserExists(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.ensureUserExists(ctx, friendID); err != nil {
		return nil, err
	}

	likes, err := s.likeRepo.LikesOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	friendLikes, err := s.likeRepo.LikesOf(ctx, friendID)
	if err != nil {
		return nil, err
	}

	var common []uint
	for filmID := range likes {
		if friendLikes[filmID] {
			common = append(common, filmID)
		}
	}
	if len(common) == 0 {
		return []models.Film{}, nil
	}
	sort.Slice(common, func(i, j int) bool { return common[i] < common[j] })

	films, err := s.repo.FindByIDs(ctx, common)
	if err != nil {
		return nil, err
	}
	counts, err := s.likeRepo.CountByFilm(ctx)
	if err != nil {
		return nil, err
	}
	rankByLikes(films, counts)
	return films, nil
}

func (s *filmService) GetByDirector(ctx context.Context, directorID uint, sortBy string) ([]models.Film, error) {
	exists, err := s.directorRepo.Exists(ctx, directorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("director with id %d not found", directorID)
	}

	films, err := s.repo.FindByDirector(ctx, directorID)
	if err != nil {
		return nil, err
	}

	switch sortBy {
	case SortByYear:
		sort.Slice(films, func(i, j int) bool {
			if films[i].ReleaseDate.Equal(films[j].ReleaseDate.Time) {
				return films[i].ID < films[j].ID
			}
			return films[i].ReleaseDate.Before(films[j].ReleaseDate.Time)
		})
	case SortByLikes, "":
		counts, err := s.likeRepo.CountByFilm(ctx)
		if err != nil {
			return nil, err
		}
		rankByLikes(films, counts)
	default:
		return nil, apperrors.Validation("sortBy must be %q or %q", SortByYear, SortByLikes)
	}
	return films, nil
}

// rankByLikes sorts films in place: like count descending, film id ascending
// on ties.
func rankByLikes(films []models.Film, counts map[uint]int) {
	sort.Slice(films, func(i, j int) bool {
		ci, cj := counts[films[i].ID], counts[films[j].ID]
		if ci != cj {
			return ci > cj
		}
		return films[i].ID < films[j].ID
	})
}

func (s *filmService) ensureFilmExists(ctx context.Context, id uint) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound("film with id %d not found", id)
	}
	return nil
}

func (s *filmService) ensureUserExists(ctx context.Context, id uint) error {
	exists, err := s.userRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound("user with id %d not found", id)
	}
	return nil
}

func (s *filmService) fromCache(ctx context.Context, key string) ([]models.Film, bool) {
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

func (s *filmService) toCache(ctx context.Context, key string, films []models.Film) {
	if s.cache == nil {
		return
	}
	if data, err := json.Marshal(films); err == nil {
		s.cache.Set(ctx, key, data, s.cacheTTL)
	}
}
