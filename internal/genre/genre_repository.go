package genre

import (
	"context"
	"errors"

	"filmorate/internal/models"

	"gorm.io/gorm"
)

type GenreRepository interface {
	FindAll(ctx context.Context) ([]models.Genre, error)
	FindByID(ctx context.Context, id uint) (*models.Genre, error)
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) FindAll(ctx context.Context) ([]models.Genre, error) {
	var genres []models.Genre
	err := r.db.WithContext(ctx).Order("id").Find(&genres).Error
	return genres, err
}

func (r *genreRepository) FindByID(ctx context.Context, id uint) (*models.Genre, error) {
	var genre models.Genre
	err := r.db.WithContext(ctx).First(&genre, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}
