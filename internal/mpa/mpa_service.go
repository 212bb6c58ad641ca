package mpa

import (
	"context"

	"filmorate/internal/apperrors"
	"filmorate/internal/models"
)

type MpaService interface {
	GetAll(ctx context.Context) ([]models.MpaRating, error)
	GetByID(ctx context.Context, id uint) (*models.MpaRating, error)
}

type mpaService struct {
	repo MpaRepository
}

func NewMpaService(repo MpaRepository) MpaService {
	return &mpaService{repo: repo}
}

func (s *mpaService) GetAll(ctx context.Context) ([]models.MpaRating, error) {
	return s.repo.FindAll(ctx)
}

func (s *mpaService) GetByID(ctx context.Context, id uint) (*models.MpaRating, error) {
	rating, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, apperrors.NotFound("mpa rating with id %d not found", id)
	}
	return rating, nil
}
