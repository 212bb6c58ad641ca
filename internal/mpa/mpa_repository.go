package mpa

import (
	"context"
	"errors"

	"filmorate/internal/models"

	"gorm.io/gorm"
)

type MpaRepository interface {
	FindAll(ctx context.Context) ([]models.MpaRating, error)
	FindByID(ctx context.Context, id uint) (*models.MpaRating, error)
}

type mpaRepository struct {
	db *gorm.DB
}

func NewMpaRepository(db *gorm.DB) MpaRepository {
	return &mpaRepository{db: db}
}

func (r *mpaRepository) FindAll(ctx context.Context) ([]models.MpaRating, error) {
	var ratings []models.MpaRating
	err := r.db.WithContext(ctx).Order("id").Find(&ratings).Error
	return ratings, err
}

func (r *mpaRepository) FindByID(ctx context.Context, id uint) (*models.MpaRating, error) {
	var rating models.MpaRating
	err := r.db.WithContext(ctx).First(&rating, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}
