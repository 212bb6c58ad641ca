package review

import (
	"context"
	"testing"

	"filmorate/internal/apperrors"
	"filmorate/internal/film"
	"filmorate/internal/models"
	"filmorate/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	svc   ReviewService
	films *film.InMemoryFilmRepository
	users *user.InMemoryUserRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	films := film.NewInMemoryFilmRepository()
	users := user.NewInMemoryUserRepository()
	svc := NewReviewService(NewInMemoryReviewRepository(), users, films)
	return &testEnv{svc: svc, films: films, users: users}
}

func (e *testEnv) addUser(t *testing.T, login string) uint {
	t.Helper()
	u := &models.User{Email: login + "@example.com", Login: login}
	require.NoError(t, e.users.Create(context.Background(), u))
	return u.ID
}

func (e *testEnv) addFilm(t *testing.T, name string) uint {
	t.Helper()
	f := &models.Film{Name: name, ReleaseDate: models.NewDate(2000, 1, 1), Duration: 90}
	require.NoError(t, e.films.Create(context.Background(), f))
	return f.ID
}

func (e *testEnv) addReview(t *testing.T, userID, filmID uint) *models.Review {
	t.Helper()
	created, err := e.svc.Create(context.Background(), &models.Review{
		Content:    "worth watching",
		IsPositive: boolPtr(true),
		UserID:     userID,
		FilmID:     filmID,
	})
	require.NoError(t, err)
	return created
}

func boolPtr(b bool) *bool { return &b }

func TestCreateReviewValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.addUser(t, "alice")
	f := env.addFilm(t, "one")

	tests := []struct {
		name   string
		review models.Review
	}{
		{"blank content", models.Review{Content: "   ", IsPositive: boolPtr(true), UserID: alice, FilmID: f}},
		{"missing polarity", models.Review{Content: "ok", UserID: alice, FilmID: f}},
		{"missing user", models.Review{Content: "ok", IsPositive: boolPtr(true), FilmID: f}},
		{"missing film", models.Review{Content: "ok", IsPositive: boolPtr(true), UserID: alice}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.Create(ctx, &tt.review)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestCreateReviewUnknownRefs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.addUser(t, "alice")
	f := env.addFilm(t, "one")

	_, err := env.svc.Create(ctx, &models.Review{Content: "ok", IsPositive: boolPtr(true), UserID: 99, FilmID: f})
	assert.True(t, apperrors.IsNotFound(err))

	_, err = env.svc.Create(ctx, &models.Review{Content: "ok", IsPositive: boolPtr(true), UserID: alice, FilmID: 99})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestNewReviewStartsWithZeroUseful(t *testing.T) {
	env := newTestEnv(t)
	alice := env.addUser(t, "alice")
	f := env.addFilm(t, "one")

	created := env.addReview(t, alice, f)
	assert.Zero(t, created.Useful)
}

func TestReactionsAdjustUseful(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.addUser(t, "alice")
	bob := env.addUser(t, "bob")
	carol := env.addUser(t, "carol")
	f := env.addFilm(t, "one")
	review := env.addReview(t, alice, f)

	require.NoError(t, env.svc.Like(ctx, review.ID, bob))
	require.NoError(t, env.svc.Like(ctx, review.ID, carol))

	fetched, err := env.svc.GetByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, fetched.Useful)

	require.NoError(t, env.svc.Dislike(ctx, review.ID, carol))

	fetched, err = env.svc.GetByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, fetched.Useful)
}

func TestRepeatedLikeCountsOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.addUser(t, "alice")
	bob := env.addUser(t, "bob")
	f := env.addFilm(t, "one")
	review := env.addReview(t, alice, f)

	require.NoError(t, env.svc.Like(ctx, review.ID, bob))
	require.NoError(t, env.svc.Like(ctx, review.ID, bob))

	fetched, err := env.svc.GetByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fetched.Useful)
}

func TestRemoveLikeOnlyMatchesPolarity(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.addUser(t, "alice")
	bob := env.addUser(t, "bob")
	f := env.addFilm(t, "one")
	review := env.addReview(t, alice, f)

	require.NoError(t, env.svc.Dislike(ctx, review.ID, bob))
	// Removing a like the user never gave leaves the dislike in place.
	require.NoError(t, env.svc.RemoveLike(ctx, review.ID, bob))

	fetched, err := env.svc.GetByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, -1, fetched.Useful)

	require.NoError(t, env.svc.RemoveDislike(ctx, review.ID, bob))

	fetched, err = env.svc.GetByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Zero(t, fetched.Useful)
}

func TestReactionUnknownRefs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.addUser(t, "alice")
	f := env.addFilm(t, "one")
	review := env.addReview(t, alice, f)

	assert.True(t, apperrors.IsNotFound(env.svc.Like(ctx, 99, alice)))
	assert.True(t, apperrors.IsNotFound(env.svc.Like(ctx, review.ID, 99)))
}

func TestGetReviewsOrdersByUseful(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.addUser(t, "alice")
	bob := env.addUser(t, "bob")
	f := env.addFilm(t, "one")

	first := env.addReview(t, alice, f)
	second := env.addReview(t, bob, f)

	require.NoError(t, env.svc.Like(ctx, second.ID, alice))

	reviews, err := env.svc.GetReviews(ctx, f, 10)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, second.ID, reviews[0].ID)
	assert.Equal(t, first.ID, reviews[1].ID)
}

func TestGetReviewsFiltersByFilm(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.addUser(t, "alice")
	bob := env.addUser(t, "bob")
	f1 := env.addFilm(t, "one")
	f2 := env.addFilm(t, "two")

	env.addReview(t, alice, f1)
	wanted := env.addReview(t, bob, f2)

	reviews, err := env.svc.GetReviews(ctx, f2, 10)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, wanted.ID, reviews[0].ID)

	all, err := env.svc.GetReviews(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateReviewKeepsAuthorAndFilm(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.addUser(t, "alice")
	f := env.addFilm(t, "one")
	review := env.addReview(t, alice, f)

	updated, err := env.svc.Update(ctx, &models.Review{
		ID:         review.ID,
		Content:    "changed my mind",
		IsPositive: boolPtr(false),
		UserID:     999, // must be ignored
		FilmID:     999,
	})
	require.NoError(t, err)
	assert.Equal(t, "changed my mind", updated.Content)
	assert.False(t, *updated.IsPositive)
	assert.Equal(t, alice, updated.UserID)
	assert.Equal(t, f, updated.FilmID)
}

func TestDeleteReviewDropsReactions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.addUser(t, "alice")
	bob := env.addUser(t, "bob")
	f := env.addFilm(t, "one")
	review := env.addReview(t, alice, f)

	require.NoError(t, env.svc.Like(ctx, review.ID, bob))
	require.NoError(t, env.svc.Delete(ctx, review.ID))

	_, err := env.svc.GetByID(ctx, review.ID)
	assert.True(t, apperrors.IsNotFound(err))
}
