package review

import (
	"context"
	"errors"

	"filmorate/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// usefulSelect derives the usefulness score from the reactions relation on
// every read; it is never stored, so it cannot drift.
const usefulSelect = "reviews.*, COALESCE(SUM(CASE WHEN review_reactions.is_positive THEN 1 ELSE -1 END), 0) AS useful"

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Review, error)
	FindAll(ctx context.Context, filmID uint, count int) ([]models.Review, error)
	Exists(ctx context.Context, id uint) (bool, error)

	React(ctx context.Context, reviewID, userID uint, positive bool) error
	RemoveReaction(ctx context.Context, reviewID, userID uint, positive bool) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) withUseful(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Review{}).
		Select(usefulSelect).
		Joins("LEFT JOIN review_reactions ON review_reactions.review_id = reviews.id").
		Group("reviews.id")
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// Update changes the verdict only; author and film are immutable.
func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Model(&models.Review{}).
		Where("id = ?", review.ID).
		Updates(map[string]interface{}{
			"content":     review.Content,
			"is_positive": review.IsPositive,
		}).Error
}

func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", id).Delete(&models.ReviewReaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Review{}, id).Error
	})
}

func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	err := r.withUseful(r.db.WithContext(ctx)).
		Where("reviews.id = ?", id).
		First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindAll(ctx context.Context, filmID uint, count int) ([]models.Review, error) {
	q := r.withUseful(r.db.WithContext(ctx))
	if filmID != 0 {
		q = q.Where("reviews.film_id = ?", filmID)
	}
	var reviews []models.Review
	err := q.Order("useful DESC, reviews.id").Limit(count).Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Review{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// React upserts the user's single reaction on the review; voting again with
// the other polarity flips it.
func (r *reviewRepository) React(ctx context.Context, reviewID, userID uint, positive bool) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "review_id"}, {Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"is_positive": positive}),
		}).
		Create(&models.ReviewReaction{ReviewID: reviewID, UserID: userID, IsPositive: positive}).Error
}

// RemoveReaction deletes the reaction only when its polarity matches, so
// removing a like never clears a dislike.
func (r *reviewRepository) RemoveReaction(ctx context.Context, reviewID, userID uint, positive bool) error {
	return r.db.WithContext(ctx).
		Where("review_id = ? AND user_id = ? AND is_positive = ?", reviewID, userID, positive).
		Delete(&models.ReviewReaction{}).Error
}
