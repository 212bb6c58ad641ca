package recommendation

import (
	"context"
	"testing"
	"time"

	"filmorate/internal/apperrors"
	"filmorate/internal/film"
	"filmorate/internal/models"
	"filmorate/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	svc   RecommendationService
	films *film.InMemoryFilmRepository
	users *user.InMemoryUserRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	films := film.NewInMemoryFilmRepository()
	users := user.NewInMemoryUserRepository()
	svc := NewRecommendationService(users, films, films, nil, time.Minute)
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

func (e *testEnv) like(t *testing.T, filmID, userID uint) {
	t.Helper()
	require.NoError(t, e.films.AddLike(context.Background(), filmID, userID))
}

func TestRecommendUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Recommend(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestRecommendNoLikesReturnsEmpty(t *testing.T) {
	env := newTestEnv(t)
	alice := env.addUser(t, "alice")
	bob := env.addUser(t, "bob")
	f := env.addFilm(t, "solo")
	env.like(t, f, bob)

	films, err := env.svc.Recommend(context.Background(), alice)
	require.NoError(t, err)
	assert.Empty(t, films)
}

func TestRecommendFromOverlappingNeighbors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	f1 := env.addFilm(t, "shared one")
	f2 := env.addFilm(t, "shared two")
	f3 := env.addFilm(t, "from bob")
	f4 := env.addFilm(t, "from carol")

	alice := env.addUser(t, "alice")
	bob := env.addUser(t, "bob")
	carol := env.addUser(t, "carol")

	env.like(t, f1, alice)
	env.like(t, f2, alice)
	env.like(t, f1, bob)
	env.like(t, f3, bob)
	env.like(t, f2, carol)
	env.like(t, f4, carol)

	films, err := env.svc.Recommend(ctx, alice)
	require.NoError(t, err)
	require.Len(t, films, 2)
	assert.Equal(t, f3, films[0].ID)
	assert.Equal(t, f4, films[1].ID)
}

func TestRecommendExcludesOwnLikes(t *testing.T) {
	env := newTestEnv(t)

	f1 := env.addFilm(t, "shared")
	f2 := env.addFilm(t, "also shared")

	alice := env.addUser(t, "alice")
	bob := env.addUser(t, "bob")

	env.like(t, f1, alice)
	env.like(t, f2, alice)
	env.like(t, f1, bob)
	env.like(t, f2, bob)

	films, err := env.svc.Recommend(context.Background(), alice)
	require.NoError(t, err)
	assert.Empty(t, films)
}

func TestRecommendRanksByNeighborOverlap(t *testing.T) {
	env := newTestEnv(t)

	f1 := env.addFilm(t, "anchor one")
	f2 := env.addFilm(t, "anchor two")
	f3 := env.addFilm(t, "strong candidate")
	f4 := env.addFilm(t, "weak candidate")

	alice := env.addUser(t, "alice")
	bob := env.addUser(t, "bob")
	carol := env.addUser(t, "carol")

	env.like(t, f1, alice)
	env.like(t, f2, alice)

	// Bob shares two films with alice, so his candidate scores twice.
	env.like(t, f1, bob)
	env.like(t, f2, bob)
	env.like(t, f3, bob)

	// Carol shares one.
	env.like(t, f1, carol)
	env.like(t, f4, carol)

	films, err := env.svc.Recommend(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, films, 2)
	assert.Equal(t, f3, films[0].ID)
	assert.Equal(t, f4, films[1].ID)
}

func TestRecommendNoNeighborsReturnsEmpty(t *testing.T) {
	env := newTestEnv(t)

	f1 := env.addFilm(t, "lonely")
	alice := env.addUser(t, "alice")
	env.like(t, f1, alice)

	films, err := env.svc.Recommend(context.Background(), alice)
	require.NoError(t, err)
	assert.Empty(t, films)
}
