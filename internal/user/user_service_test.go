package user

import (
	"context"
	"testing"

	"filmorate/internal/apperrors"
	"filmorate/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (UserService, *InMemoryUserRepository) {
	t.Helper()
	repo := NewInMemoryUserRepository()
	return NewUserService(repo), repo
}

func createUser(t *testing.T, svc UserService, login string) *models.User {
	t.Helper()
	created, err := svc.Create(context.Background(), &models.User{
		Email:    login + "@example.com",
		Login:    login,
		Birthday: models.NewDate(1990, 1, 1),
	})
	require.NoError(t, err)
	return created
}

func TestCreateUserDefaultsNameToLogin(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), &models.User{
		Email: "dolore@example.com",
		Login: "dolore",
	})
	require.NoError(t, err)
	assert.Equal(t, "dolore", created.Name)
	assert.NotZero(t, created.ID)
}

func TestCreateUserValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		user models.User
	}{
		{"missing email", models.User{Login: "login"}},
		{"email without at sign", models.User{Email: "not-an-email", Login: "login"}},
		{"missing login", models.User{Email: "a@b.c"}},
		{"login with space", models.User{Email: "a@b.c", Login: "bad login"}},
		{"future birthday", models.User{Email: "a@b.c", Login: "login", Birthday: models.NewDate(2446, 8, 20)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, &tt.user)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestCreateUserDuplicateEmailOrLoginConflict(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	createUser(t, svc, "alice")

	_, err := svc.Create(ctx, &models.User{Email: "alice@example.com", Login: "someone-else"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	_, err = svc.Create(ctx, &models.User{Email: "fresh@example.com", Login: "alice"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestUpdateUserToTakenLoginConflict(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	createUser(t, svc, "alice")
	bob := createUser(t, svc, "bob")

	bob.Login = "alice"
	_, err := svc.Update(ctx, bob)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	// Keeping your own email and login is not a conflict.
	bob.Login = "bob"
	bob.Name = "Robert"
	updated, err := svc.Update(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, "Robert", updated.Name)
}

func TestAddFriendSelfRejected(t *testing.T) {
	svc, _ := newTestService(t)
	alice := createUser(t, svc, "alice")

	err := svc.AddFriend(context.Background(), alice.ID, alice.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestAddFriendUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)
	alice := createUser(t, svc, "alice")

	err := svc.AddFriend(context.Background(), alice.ID, 999)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	err = svc.AddFriend(context.Background(), 999, alice.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestAddFriendIsOneSidedUntilReciprocated(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	alice := createUser(t, svc, "alice")
	bob := createUser(t, svc, "bob")

	require.NoError(t, svc.AddFriend(ctx, alice.ID, bob.ID))

	aliceFriends, err := svc.GetFriends(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceFriends, 1)
	assert.Equal(t, bob.ID, aliceFriends[0].ID)

	bobFriends, err := svc.GetFriends(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobFriends)

	edge, err := repo.GetFriendship(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.NotNil(t, edge)
	assert.Equal(t, models.FriendshipPending, edge.Status)
}

func TestAddFriendReciprocationConfirmsBothEdges(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	alice := createUser(t, svc, "alice")
	bob := createUser(t, svc, "bob")

	require.NoError(t, svc.AddFriend(ctx, alice.ID, bob.ID))
	require.NoError(t, svc.AddFriend(ctx, bob.ID, alice.ID))

	for _, pair := range [][2]uint{{alice.ID, bob.ID}, {bob.ID, alice.ID}} {
		edge, err := repo.GetFriendship(ctx, pair[0], pair[1])
		require.NoError(t, err)
		require.NotNil(t, edge)
		assert.Equal(t, models.FriendshipConfirmed, edge.Status)
	}
}

func TestAddFriendTwiceIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	alice := createUser(t, svc, "alice")
	bob := createUser(t, svc, "bob")

	require.NoError(t, svc.AddFriend(ctx, alice.ID, bob.ID))
	require.NoError(t, svc.AddFriend(ctx, alice.ID, bob.ID))

	friends, err := svc.GetFriends(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, friends, 1)
}

func TestRemoveFriendDropsBothDirections(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	alice := createUser(t, svc, "alice")
	bob := createUser(t, svc, "bob")

	require.NoError(t, svc.AddFriend(ctx, alice.ID, bob.ID))
	require.NoError(t, svc.AddFriend(ctx, bob.ID, alice.ID))
	require.NoError(t, svc.RemoveFriend(ctx, alice.ID, bob.ID))

	aliceFriends, err := svc.GetFriends(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, aliceFriends)

	bobFriends, err := svc.GetFriends(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobFriends)
}

func TestRemoveFriendWithoutEdgeSucceeds(t *testing.T) {
	svc, _ := newTestService(t)
	alice := createUser(t, svc, "alice")
	bob := createUser(t, svc, "bob")

	assert.NoError(t, svc.RemoveFriend(context.Background(), alice.ID, bob.ID))
}

func TestGetCommonFriends(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	alice := createUser(t, svc, "alice")
	bob := createUser(t, svc, "bob")
	carol := createUser(t, svc, "carol")

	require.NoError(t, svc.AddFriend(ctx, alice.ID, carol.ID))
	require.NoError(t, svc.AddFriend(ctx, bob.ID, carol.ID))

	common, err := svc.GetCommonFriends(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, common, 1)
	assert.Equal(t, carol.ID, common[0].ID)

	// Symmetric regardless of argument order.
	reversed, err := svc.GetCommonFriends(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, common, reversed)
}

func TestGetCommonFriendsEmpty(t *testing.T) {
	svc, _ := newTestService(t)
	alice := createUser(t, svc, "alice")
	bob := createUser(t, svc, "bob")

	common, err := svc.GetCommonFriends(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, common)
}

func TestUpdateUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Update(context.Background(), &models.User{
		ID:    42,
		Email: "ghost@example.com",
		Login: "ghost",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteUserRemovesFriendEdges(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	alice := createUser(t, svc, "alice")
	bob := createUser(t, svc, "bob")

	require.NoError(t, svc.AddFriend(ctx, bob.ID, alice.ID))
	require.NoError(t, svc.Delete(ctx, alice.ID))

	_, err := svc.GetByID(ctx, alice.ID)
	assert.True(t, apperrors.IsNotFound(err))

	friends, err := svc.GetFriends(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)
}
