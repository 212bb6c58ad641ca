package genre

import (
	"context"

	"filmorate/internal/apperrors"
	"filmorate/internal/models"
)

type GenreService interface {
	GetAll(ctx context.Context) ([]models.Genre, error)
	GetByID(ctx context.Context, id uint) (*models.Genre, error)
}

type genreService struct {
	repo GenreRepository
}

func NewGenreService(repo GenreRepository) GenreService {
	return &genreService{repo: repo}
}

func (s *genreService) GetAll(ctx context.Context) ([]models.Genre, error) {
	return s.repo.FindAll(ctx)
}

func (s *genreService) GetByID(ctx context.Context, id uint) (*models.Genre, error) {
	genre, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, apperrors.NotFound("genre with id %d not found", id)
	}
	return genre, nil
}
