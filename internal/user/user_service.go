package user

import (
	"context"
	"strings"
	"time"

	"filmorate/internal/apperrors"
	"filmorate/internal/models"
)

type UserService interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)

	AddFriend(ctx context.Context, userID, friendID uint) error
	RemoveFriend(ctx context.Context, userID, friendID uint) error
	GetFriends(ctx context.Context, userID uint) ([]models.User, error)
	GetCommonFriends(ctx context.Context, userID, otherID uint) ([]models.User, error)
}

type userService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func validateUser(user *models.User) error {
	if user.Email == "" || !strings.Contains(user.Email, "@") {
		return apperrors.Validation("email must be set and contain @")
	}
	if user.Login == "" || strings.Contains(user.Login, " ") {
		return apperrors.Validation("login must be set and contain no spaces")
	}
	if !user.Birthday.IsZero() && user.Birthday.After(time.Now()) {
		return apperrors.Validation("birthday must not be in the future")
	}
	if user.Name == "" {
		user.Name = user.Login
	}
	return nil
}

func (s *userService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := validateUser(user); err != nil {
		return nil, err
	}
	user.ID = 0
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, user *models.User) (*models.User, error) {
	if err := validateUser(user); err != nil {
		return nil, err
	}
	if err := s.ensureExists(ctx, user.ID); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	if err := s.ensureExists(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *userService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("user with id %d not found", id)
	}
	return user, nil
}

func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

// AddFriend records a pending request, or promotes the pair to a mutual
// friendship when the reverse request already exists. Re-adding an existing
// edge is a no-op.
func (s *userService) AddFriend(ctx context.Context, userID, friendID uint) error {
	if userID == friendID {
		return apperrors.Validation("user cannot add themselves as a friend")
	}
	if err := s.ensureExists(ctx, userID); err != nil {
		return err
	}
	if err := s.ensureExists(ctx, friendID); err != nil {
		return err
	}

	edge, err := s.repo.GetFriendship(ctx, userID, friendID)
	if err != nil {
		return err
	}
	if edge != nil {
		return nil
	}

	reverse, err := s.repo.GetFriendship(ctx, friendID, userID)
	if err != nil {
		return err
	}
	if reverse != nil {
		// Reciprocated request: both directions become confirmed.
		if err := s.repo.UpdateFriendshipStatus(ctx, friendID, userID, models.FriendshipConfirmed); err != nil {
			return err
		}
		return s.repo.CreateFriendship(ctx, userID, friendID, models.FriendshipConfirmed)
	}

	return s.repo.CreateFriendship(ctx, userID, friendID, models.FriendshipPending)
}

func (s *userService) RemoveFriend(ctx context.Context, userID, friendID uint) error {
	if err := s.ensureExists(ctx, userID); err != nil {
		return err
	}
	if err := s.ensureExists(ctx, friendID); err != nil {
		return err
	}
	return s.repo.RemoveFriendEdges(ctx, userID, friendID)
}

func (s *userService) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	if err := s.ensureExists(ctx, userID); err != nil {
		return nil, err
	}
	ids, err := s.repo.GetFriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByIDs(ctx, ids)
}

func (s *userService) GetCommonFriends(ctx context.Context, userID, otherID uint) ([]models.User, error) {
	if err := s.ensureExists(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.ensureExists(ctx, otherID); err != nil {
		return nil, err
	}

	ids, err := s.repo.GetFriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	otherIDs, err := s.repo.GetFriendIDs(ctx, otherID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 || len(otherIDs) == 0 {
		return []models.User{}, nil
	}

	otherSet := make(map[uint]bool, len(otherIDs))
	for _, id := range otherIDs {
		otherSet[id] = true
	}
	var common []uint
	for _, id := range ids {
		if otherSet[id] {
			common = append(common, id)
		}
	}
	if len(common) == 0 {
		return []models.User{}, nil
	}
	return s.repo.FindByIDs(ctx, common)
}

func (s *userService) ensureExists(ctx context.Context, id uint) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound("user with id %d not found", id)
	}
	return nil
}
