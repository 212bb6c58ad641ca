package director

import (
	"context"
	"strings"

	"filmorate/internal/apperrors"
	"filmorate/internal/models"
)

type DirectorService interface {
	Create(ctx context.Context, director *models.Director) (*models.Director, error)
	Update(ctx context.Context, director *models.Director) (*models.Director, error)
	Delete(ctx context.Context, id uint) error
	GetAll(ctx context.Context) ([]models.Director, error)
	GetByID(ctx context.Context, id uint) (*models.Director, error)
}

type directorService struct {
	repo DirectorRepository
}

func NewDirectorService(repo DirectorRepository) DirectorService {
	return &directorService{repo: repo}
}

func (s *directorService) Create(ctx context.Context, director *models.Director) (*models.Director, error) {
	if strings.TrimSpace(director.Name) == "" {
		return nil, apperrors.Validation("director name must not be blank")
	}
	director.ID = 0
	if err := s.repo.Create(ctx, director); err != nil {
		return nil, err
	}
	return director, nil
}

func (s *directorService) Update(ctx context.Context, director *models.Director) (*models.Director, error) {
	if strings.TrimSpace(director.Name) == "" {
		return nil, apperrors.Validation("director name must not be blank")
	}
	if err := s.ensureExists(ctx, director.ID); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, director); err != nil {
		return nil, err
	}
	return director, nil
}

func (s *directorService) Delete(ctx context.Context, id uint) error {
	if err := s.ensureExists(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *directorService) GetAll(ctx context.Context) ([]models.Director, error) {
	return s.repo.FindAll(ctx)
}

func (s *directorService) GetByID(ctx context.Context, id uint) (*models.Director, error) {
	director, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if director == nil {
		return nil, apperrors.NotFound("director with id %d not found", id)
	}
	return director, nil
}

func (s *directorService) ensureExists(ctx context.Context, id uint) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound("director with id %d not found", id)
	}
	return nil
}
