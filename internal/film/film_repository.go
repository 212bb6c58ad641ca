package film

import (
	"context"
	"errors"

	"filmorate/internal/models"

	"gorm.io/gorm"
)

// FilmRepository is the storage contract for films. Reads resolve the MPA
// rating, genres and directors; lookups return (nil, nil) when absent.
type FilmRepository interface {
	Create(ctx context.Context, film *models.Film) error
	Update(ctx context.Context, film *models.Film) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Film, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Film, error)
	FindAll(ctx context.Context) ([]models.Film, error)
	FindFiltered(ctx context.Context, genreID uint, year int) ([]models.Film, error)
	FindByDirector(ctx context.Context, directorID uint) ([]models.Film, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type filmRepository struct {
	db *gorm.DB
}

func NewFilmRepository(db *gorm.DB) FilmRepository {
	return &filmRepository{db: db}
}

func (r *filmRepository) preload(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Mpa").
		Preload("Genres", func(db *gorm.DB) *gorm.DB { return db.Order("genres.id") }).
		Preload("Directors", func(db *gorm.DB) *gorm.DB { return db.Order("directors.id") })
}

func (r *filmRepository) Create(ctx context.Context, film *models.Film) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		genres := film.Genres
		directors := film.Directors
		if err := tx.Omit("Genres", "Directors").Create(film).Error; err != nil {
			return err
		}
		if err := tx.Model(film).Association("Genres").Replace(genres); err != nil {
			return err
		}
		return tx.Model(film).Association("Directors").Replace(directors)
	})
}

// Update replaces the genre and director sets wholesale (delete-then-insert)
// in the same transaction as the row update.
func (r *filmRepository) Update(ctx context.Context, film *models.Film) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Genres", "Directors").Save(film).Error; err != nil {
			return err
		}
		if err := tx.Model(film).Association("Genres").Replace(film.Genres); err != nil {
			return err
		}
		return tx.Model(film).Association("Directors").Replace(film.Directors)
	})
}

// Delete removes the film with its likes, genre/director links, reviews and
// review reactions in one transaction.
func (r *filmRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("film_id = ?", id).Delete(&models.FilmLike{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM film_genres WHERE film_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM film_directors WHERE film_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec(
			"DELETE FROM review_reactions WHERE review_id IN (SELECT id FROM reviews WHERE film_id = ?)", id,
		).Error; err != nil {
			return err
		}
		if err := tx.Where("film_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Film{}, id).Error
	})
}

func (r *filmRepository) FindByID(ctx context.Context, id uint) (*models.Film, error) {
	var film models.Film
	err := r.preload(r.db.WithContext(ctx)).First(&film, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &film, nil
}

// FindByIDs returns films in the order the ids were given, skipping
// ids that no longer resolve.
func (r *filmRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Film, error) {
	if len(ids) == 0 {
		return []models.Film{}, nil
	}
	var films []models.Film
	err := r.preload(r.db.WithContext(ctx)).Where("id IN ?", ids).Find(&films).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Film, len(films))
	for _, f := range films {
		byID[f.ID] = f
	}
	ordered := make([]models.Film, 0, len(ids))
	for _, id := range ids {
		if f, ok := byID[id]; ok {
			ordered = append(ordered, f)
		}
	}
	return ordered, nil
}

func (r *filmRepository) FindAll(ctx context.Context) ([]models.Film, error) {
	var films []models.Film
	err := r.preload(r.db.WithContext(ctx)).Order("id").Find(&films).Error
	return films, err
}

func (r *filmRepository) FindFiltered(ctx context.Context, genreID uint, year int) ([]models.Film, error) {
	q := r.preload(r.db.WithContext(ctx)).Model(&models.Film{})
	if genreID != 0 {
		q = q.Joins("JOIN film_genres fg ON fg.film_id = films.id").Where("fg.genre_id = ?", genreID)
	}
	if year != 0 {
		q = q.Where("EXTRACT(YEAR FROM release_date) = ?", year)
	}
	var films []models.Film
	err := q.Order("films.id").Find(&films).Error
	return films, err
}

func (r *filmRepository) FindByDirector(ctx context.Context, directorID uint) ([]models.Film, error) {
	var films []models.Film
	err := r.preload(r.db.WithContext(ctx)).Model(&models.Film{}).
		Joins("JOIN film_directors fd ON fd.film_id = films.id").
		Where("fd.director_id = ?", directorID).
		Order("films.id").
		Find(&films).Error
	return films, err
}

func (r *filmRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Film{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
