package user

import (
	"context"
	"errors"

	"filmorate/internal/apperrors"
	"filmorate/internal/models"

	"gorm.io/gorm"
)

// UserRepository is the storage contract for users and the friend graph.
// Lookups return (nil, nil) when the row is absent so the service layer owns
// the not-found taxonomy for both the postgres and in-memory backends.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Exists(ctx context.Context, id uint) (bool, error)

	GetFriendship(ctx context.Context, userID, friendID uint) (*models.Friendship, error)
	CreateFriendship(ctx context.Context, userID, friendID uint, status string) error
	UpdateFriendshipStatus(ctx context.Context, userID, friendID uint, status string) error
	RemoveFriendEdges(ctx context.Context, userID, friendID uint) error
	GetFriendIDs(ctx context.Context, userID uint) ([]uint, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// translateConstraint maps store integrity violations onto the shared error
// taxonomy, so a duplicate email or login answers 409 rather than leaking a
// driver error as a 500.
func translateConstraint(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.Conflict("email or login already in use")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.Conflict("referenced row no longer exists")
	}
	return err
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return translateConstraint(err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return translateConstraint(err)
	}
	return nil
}

// Delete removes the user together with their likes, friendship edges,
// review reactions and authored reviews in one transaction.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.FilmLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ? OR friend_id = ?", id, id).Delete(&models.Friendship{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.ReviewReaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&users).Error
	return users, err
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Order("id").Find(&users).Error
	return users, err
}

func (r *userRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) GetFriendship(ctx context.Context, userID, friendID uint) (*models.Friendship, error) {
	var friendship models.Friendship
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		First(&friendship).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &friendship, nil
}

func (r *userRepository) CreateFriendship(ctx context.Context, userID, friendID uint, status string) error {
	return r.db.WithContext(ctx).Create(&models.Friendship{
		UserID:   userID,
		FriendID: friendID,
		Status:   status,
	}).Error
}

func (r *userRepository) UpdateFriendshipStatus(ctx context.Context, userID, friendID uint, status string) error {
	return r.db.WithContext(ctx).Model(&models.Friendship{}).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Update("status", status).Error
}

// RemoveFriendEdges deletes the pair's edges in both directions so the
// relationship returns to NONE regardless of prior state.
func (r *userRepository) RemoveFriendEdges(ctx context.Context, userID, friendID uint) error {
	return r.db.WithContext(ctx).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friendID, friendID, userID).
		Delete(&models.Friendship{}).Error
}

func (r *userRepository) GetFriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.Friendship{}).
		Where("user_id = ?", userID).
		Order("friend_id").
		Pluck("friend_id", &ids).Error
	return ids, err
}
