package director

import (
	"context"
	"errors"

	"filmorate/internal/models"

	"gorm.io/gorm"
)

type DirectorRepository interface {
	Create(ctx context.Context, director *models.Director) error
	Update(ctx context.Context, director *models.Director) error
	Delete(ctx context.Context, id uint) error
	FindAll(ctx context.Context) ([]models.Director, error)
	FindByID(ctx context.Context, id uint) (*models.Director, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type directorRepository struct {
	db *gorm.DB
}

func NewDirectorRepository(db *gorm.DB) DirectorRepository {
	return &directorRepository{db: db}
}

func (r *directorRepository) Create(ctx context.Context, director *models.Director) error {
	return r.db.WithContext(ctx).Create(director).Error
}

func (r *directorRepository) Update(ctx context.Context, director *models.Director) error {
	return r.db.WithContext(ctx).Save(director).Error
}

// Delete removes the director and their film links together.
func (r *directorRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM film_directors WHERE director_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Director{}, id).Error
	})
}

func (r *directorRepository) FindAll(ctx context.Context) ([]models.Director, error) {
	var directors []models.Director
	err := r.db.WithContext(ctx).Order("id").Find(&directors).Error
	return directors, err
}

func (r *directorRepository) FindByID(ctx context.Context, id uint) (*models.Director, error) {
	var director models.Director
	err := r.db.WithContext(ctx).First(&director, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &director, nil
}

func (r *directorRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Director{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
