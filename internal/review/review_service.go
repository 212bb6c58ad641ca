package review

import (
	"context"
	"strings"

	"filmorate/internal/apperrors"
	"filmorate/internal/film"
	"filmorate/internal/models"
	"filmorate/internal/user"
)

const defaultReviewLimit = 10

type ReviewService interface {
	Create(ctx context.Context, review *models.Review) (*models.Review, error)
	Update(ctx context.Context, review *models.Review) (*models.Review, error)
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.Review, error)
	GetReviews(ctx context.Context, filmID uint, count int) ([]models.Review, error)

	Like(ctx context.Context, reviewID, userID uint) error
	Dislike(ctx context.Context, reviewID, userID uint) error
	RemoveLike(ctx context.Context, reviewID, userID uint) error
	RemoveDislike(ctx context.Context, reviewID, userID uint) error
}

type reviewService struct {
	repo     ReviewRepository
	userRepo user.UserRepository
	filmRepo film.FilmRepository
}

func NewReviewService(repo ReviewRepository, userRepo user.UserRepository, filmRepo film.FilmRepository) ReviewService {
	return &reviewService{repo: repo, userRepo: userRepo, filmRepo: filmRepo}
}

func (s *reviewService) validate(ctx context.Context, review *models.Review) error {
	if strings.TrimSpace(review.Content) == "" {
		return apperrors.Validation("review content must not be blank")
	}
	if review.IsPositive == nil {
		return apperrors.Validation("isPositive must be specified")
	}
	if review.UserID == 0 {
		return apperrors.Validation("userId must be specified")
	}
	if review.FilmID == 0 {
		return apperrors.Validation("filmId must be specified")
	}

	userExists, err := s.userRepo.Exists(ctx, review.UserID)
	if err != nil {
		return err
	}
	if !userExists {
		return apperrors.NotFound("user with id %d not found", review.UserID)
	}
	filmExists, err := s.filmRepo.Exists(ctx, review.FilmID)
	if err != nil {
		return err
	}
	if !filmExists {
		return apperrors.NotFound("film with id %d not found", review.FilmID)
	}
	return nil
}

func (s *reviewService) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	if err := s.validate(ctx, review); err != nil {
		return nil, err
	}
	review.ID = 0
	review.Useful = 0
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) Update(ctx context.Context, review *models.Review) (*models.Review, error) {
	if err := s.ensureExists(ctx, review.ID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(review.Content) == "" {
		return nil, apperrors.Validation("review content must not be blank")
	}
	if review.IsPositive == nil {
		return nil, apperrors.Validation("isPositive must be specified")
	}
	if err := s.repo.Update(ctx, review); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, review.ID)
}

func (s *reviewService) Delete(ctx context.Context, id uint) error {
	if err := s.ensureExists(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *reviewService) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, apperrors.NotFound("review with id %d not found", id)
	}
	return review, nil
}

func (s *reviewService) GetReviews(ctx context.Context, filmID uint, count int) ([]models.Review, error) {
	if count <= 0 {
		count = defaultReviewLimit
	}
	return s.repo.FindAll(ctx, filmID, count)
}

func (s *reviewService) Like(ctx context.Context, reviewID, userID uint) error {
	if err := s.ensureReactionRefs(ctx, reviewID, userID); err != nil {
		return err
	}
	return s.repo.React(ctx, reviewID, userID, true)
}

func (s *reviewService) Dislike(ctx context.Context, reviewID, userID uint) error {
	if err := s.ensureReactionRefs(ctx, reviewID, userID); err != nil {
		return err
	}
	return s.repo.React(ctx, reviewID, userID, false)
}

func (s *reviewService) RemoveLike(ctx context.Context, reviewID, userID uint) error {
	if err := s.ensureReactionRefs(ctx, reviewID, userID); err != nil {
		return err
	}
	return s.repo.RemoveReaction(ctx, reviewID, userID, true)
}

func (s *reviewService) RemoveDislike(ctx context.Context, reviewID, userID uint) error {
	if err := s.ensureReactionRefs(ctx, reviewID, userID); err != nil {
		return err
	}
	return s.repo.RemoveReaction(ctx, reviewID, userID, false)
}

func (s *reviewService) ensureExists(ctx context.Context, id uint) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound("review with id %d not found", id)
	}
	return nil
}

func (s *reviewService) ensureReactionRefs(ctx context.Context, reviewID, userID uint) error {
	if err := s.ensureExists(ctx, reviewID); err != nil {
		return err
	}
	userExists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !userExists {
		return apperrors.NotFound("user with id %d not found", userID)
	}
	return nil
}
