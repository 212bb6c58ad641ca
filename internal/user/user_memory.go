package user

import (
	"context"
	"sort"
	"sync"

	"filmorate/internal/apperrors"
	"filmorate/internal/models"
)

type directedEdge struct {
	userID   uint
	friendID uint
}

// InMemoryUserRepository keeps users and the friend graph in guarded maps.
// It backs unit tests and deployments without postgres.
type InMemoryUserRepository struct {
	mu          sync.RWMutex
	users       map[uint]models.User
	friendships map[directedEdge]string
	nextID      uint
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users:       make(map[uint]models.User),
		friendships: make(map[directedEdge]string),
		nextID:      1,
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.taken(user.Email, user.Login, 0) {
		return apperrors.Conflict("email or login already in use")
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = *user
	return nil
}

func (r *InMemoryUserRepository) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.taken(user.Email, user.Login, user.ID) {
		return apperrors.Conflict("email or login already in use")
	}
	r.users[user.ID] = *user
	return nil
}

// taken mirrors the unique indexes on email and login; selfID exempts the row
// being updated.
func (r *InMemoryUserRepository) taken(email, login string, selfID uint) bool {
	for id, u := range r.users {
		if id == selfID {
			continue
		}
		if u.Email == email || u.Login == login {
			return true
		}
	}
	return false
}

func (r *InMemoryUserRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, id)
	for edge := range r.friendships {
		if edge.userID == id || edge.friendID == id {
			delete(r.friendships, edge)
		}
	}
	return nil
}

func (r *InMemoryUserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *InMemoryUserRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *InMemoryUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *InMemoryUserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[id]
	return ok, nil
}

func (r *InMemoryUserRepository) GetFriendship(ctx context.Context, userID, friendID uint) (*models.Friendship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	status, ok := r.friendships[directedEdge{userID, friendID}]
	if !ok {
		return nil, nil
	}
	return &models.Friendship{UserID: userID, FriendID: friendID, Status: status}, nil
}

func (r *InMemoryUserRepository) CreateFriendship(ctx context.Context, userID, friendID uint, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.friendships[directedEdge{userID, friendID}] = status
	return nil
}

func (r *InMemoryUserRepository) UpdateFriendshipStatus(ctx context.Context, userID, friendID uint, status string) error {
	return r.CreateFriendship(ctx, userID, friendID, status)
}

func (r *InMemoryUserRepository) RemoveFriendEdges(ctx context.Context, userID, friendID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.friendships, directedEdge{userID, friendID})
	delete(r.friendships, directedEdge{friendID, userID})
	return nil
}

func (r *InMemoryUserRepository) GetFriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []uint
	for edge := range r.friendships {
		if edge.userID == userID {
			ids = append(ids, edge.friendID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
