package film

import (
	"context"

	"filmorate/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository is the like index: the bipartite user-film relation the
// popularity ranker and the recommender are built on. Add and Remove are
// idempotent; existence of the referenced user and film is the service
// layer's concern.
type LikeRepository interface {
	AddLike(ctx context.Context, filmID, userID uint) error
	RemoveLike(ctx context.Context, filmID, userID uint) error
	LikesOf(ctx context.Context, userID uint) (map[uint]bool, error)
	LikersOf(ctx context.Context, filmID uint) (map[uint]bool, error)
	AllLikes(ctx context.Context) (map[uint]map[uint]bool, error)
	CountByFilm(ctx context.Context) (map[uint]int, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) AddLike(ctx context.Context, filmID, userID uint) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.FilmLike{FilmID: filmID, UserID: userID}).Error
}

func (r *likeRepository) RemoveLike(ctx context.Context, filmID, userID uint) error {
	return r.db.WithContext(ctx).
		Where("film_id = ? AND user_id = ?", filmID, userID).
		Delete(&models.FilmLike{}).Error
}

func (r *likeRepository) LikesOf(ctx context.Context, userID uint) (map[uint]bool, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.FilmLike{}).
		Where("user_id = ?", userID).
		Pluck("film_id", &ids).Error
	if err != nil {
		return nil, err
	}
	likes := make(map[uint]bool, len(ids))
	for _, id := range ids {
		likes[id] = true
	}
	return likes, nil
}

func (r *likeRepository) LikersOf(ctx context.Context, filmID uint) (map[uint]bool, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.FilmLike{}).
		Where("film_id = ?", filmID).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	likers := make(map[uint]bool, len(ids))
	for _, id := range ids {
		likers[id] = true
	}
	return likers, nil
}

// AllLikes returns the full snapshot keyed by user id, as the recommender
// consumes it.
func (r *likeRepository) AllLikes(ctx context.Context) (map[uint]map[uint]bool, error) {
	var rows []models.FilmLike
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	all := make(map[uint]map[uint]bool)
	for _, row := range rows {
		if all[row.UserID] == nil {
			all[row.UserID] = make(map[uint]bool)
		}
		all[row.UserID][row.FilmID] = true
	}
	return all, nil
}

func (r *likeRepository) CountByFilm(ctx context.Context) (map[uint]int, error) {
	var rows []struct {
		FilmID uint
		Count  int
	}
	err := r.db.WithContext(ctx).Model(&models.FilmLike{}).
		Select("film_id, COUNT(*) AS count").
		Group("film_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int, len(rows))
	for _, row := range rows {
		counts[row.FilmID] = row.Count
	}
	return counts, nil
}
