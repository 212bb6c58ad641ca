package film

import (
	"context"
	"strings"
	"testing"
	"time"

	"filmorate/internal/apperrors"
	"filmorate/internal/director"
	"filmorate/internal/genre"
	"filmorate/internal/models"
	"filmorate/internal/mpa"
	"filmorate/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	svc       FilmService
	films     *InMemoryFilmRepository
	users     *user.InMemoryUserRepository
	directors *director.InMemoryDirectorRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	films := NewInMemoryFilmRepository()
	users := user.NewInMemoryUserRepository()
	directors := director.NewInMemoryDirectorRepository()
	svc := NewFilmService(
		films,
		films,
		genre.NewInMemoryGenreRepository(genre.DefaultGenres()),
		mpa.NewInMemoryMpaRepository(mpa.DefaultRatings()),
		directors,
		users,
		nil,
		time.Minute,
	)
	return &testEnv{svc: svc, films: films, users: users, directors: directors}
}

func validFilm() *models.Film {
	return &models.Film{
		Name:        "nisi eiusmod",
		Description: "adipisicing",
		ReleaseDate: models.NewDate(1967, 3, 25),
		Duration:    100,
		Mpa:         models.MpaRating{ID: 1},
	}
}

func (e *testEnv) createFilm(t *testing.T, name string) *models.Film {
	t.Helper()
	f := validFilm()
	f.Name = name
	created, err := e.svc.Create(context.Background(), f)
	require.NoError(t, err)
	return created
}

func (e *testEnv) createUser(t *testing.T, login string) *models.User {
	t.Helper()
	u := &models.User{Email: login + "@example.com", Login: login}
	require.NoError(t, e.users.Create(context.Background(), u))
	return u
}

func TestCreateFilmValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(f *models.Film)
	}{
		{"empty name", func(f *models.Film) { f.Name = "" }},
		{"description too long", func(f *models.Film) { f.Description = strings.Repeat("x", 201) }},
		{"release before cinema", func(f *models.Film) { f.ReleaseDate = models.NewDate(1895, 12, 27) }},
		{"zero duration", func(f *models.Film) { f.Duration = 0 }},
		{"negative duration", func(f *models.Film) { f.Duration = -5 }},
		{"missing mpa", func(f *models.Film) { f.Mpa = models.MpaRating{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFilm()
			tt.mutate(f)
			_, err := env.svc.Create(ctx, f)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestCreateFilmBoundaryValues(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	f := validFilm()
	f.Description = strings.Repeat("x", 200)
	f.ReleaseDate = models.NewDate(1895, 12, 28)
	f.Duration = 1

	created, err := env.svc.Create(ctx, f)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestCreateFilmUnknownReferences(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	f := validFilm()
	f.Mpa = models.MpaRating{ID: 99}
	_, err := env.svc.Create(ctx, f)
	assert.True(t, apperrors.IsNotFound(err))

	f = validFilm()
	f.Genres = []models.Genre{{ID: 42}}
	_, err = env.svc.Create(ctx, f)
	assert.True(t, apperrors.IsNotFound(err))

	f = validFilm()
	f.Directors = []models.Director{{ID: 7}}
	_, err = env.svc.Create(ctx, f)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCreateFilmResolvesAndDeduplicatesGenres(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	f := validFilm()
	f.Genres = []models.Genre{{ID: 2}, {ID: 1}, {ID: 2}}

	created, err := env.svc.Create(ctx, f)
	require.NoError(t, err)
	require.Len(t, created.Genres, 2)
	assert.Equal(t, "Comedy", created.Genres[0].Name)
	assert.Equal(t, "Drama", created.Genres[1].Name)

	fetched, err := env.svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Genres, fetched.Genres)
}

func TestCreateFilmResolvesMpaName(t *testing.T) {
	env := newTestEnv(t)

	f := validFilm()
	f.Mpa = models.MpaRating{ID: 3}
	created, err := env.svc.Create(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, "PG-13", created.Mpa.Name)
}

func TestAddLikeUnknownRefs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	f := env.createFilm(t, "one")
	u := env.createUser(t, "alice")

	assert.True(t, apperrors.IsNotFound(env.svc.AddLike(ctx, 999, u.ID)))
	assert.True(t, apperrors.IsNotFound(env.svc.AddLike(ctx, f.ID, 999)))
}

func TestAddLikeIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	f := env.createFilm(t, "one")
	u := env.createUser(t, "alice")

	require.NoError(t, env.svc.AddLike(ctx, f.ID, u.ID))
	require.NoError(t, env.svc.AddLike(ctx, f.ID, u.ID))

	counts, err := env.films.CountByFilm(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[f.ID])
}

func TestRemoveLikeIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	f := env.createFilm(t, "one")
	u := env.createUser(t, "alice")

	require.NoError(t, env.svc.AddLike(ctx, f.ID, u.ID))
	require.NoError(t, env.svc.RemoveLike(ctx, f.ID, u.ID))
	require.NoError(t, env.svc.RemoveLike(ctx, f.ID, u.ID))

	counts, err := env.films.CountByFilm(ctx)
	require.NoError(t, err)
	assert.Zero(t, counts[f.ID])
}

func TestGetPopularRanksByLikesThenID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	f1 := env.createFilm(t, "first")
	f2 := env.createFilm(t, "second")
	f3 := env.createFilm(t, "third")

	users := make([]*models.User, 3)
	for i, login := range []string{"a", "b", "c"} {
		users[i] = env.createUser(t, login)
	}

	// f2 gets three likes, f3 one, f1 none.
	for _, u := range users {
		require.NoError(t, env.svc.AddLike(ctx, f2.ID, u.ID))
	}
	require.NoError(t, env.svc.AddLike(ctx, f3.ID, users[0].ID))

	popular, err := env.svc.GetPopular(ctx, 10, 0, 0)
	require.NoError(t, err)
	require.Len(t, popular, 3)
	assert.Equal(t, []uint{f2.ID, f3.ID, f1.ID}, []uint{popular[0].ID, popular[1].ID, popular[2].ID})
}

func TestGetPopularTieBreaksByAscendingID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	f1 := env.createFilm(t, "first")
	f2 := env.createFilm(t, "second")
	u := env.createUser(t, "alice")

	require.NoError(t, env.svc.AddLike(ctx, f1.ID, u.ID))
	require.NoError(t, env.svc.AddLike(ctx, f2.ID, u.ID))

	popular, err := env.svc.GetPopular(ctx, 10, 0, 0)
	require.NoError(t, err)
	require.Len(t, popular, 2)
	assert.Equal(t, f1.ID, popular[0].ID)
	assert.Equal(t, f2.ID, popular[1].ID)
}

func TestGetPopularDefaultsCountToTen(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		env.createFilm(t, "film")
	}

	popular, err := env.svc.GetPopular(ctx, 0, 0, 0)
	require.NoError(t, err)
	assert.Len(t, popular, 10)
}

func TestGetPopularFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	comedy := validFilm()
	comedy.Genres = []models.Genre{{ID: 1}}
	comedy.ReleaseDate = models.NewDate(2000, 6, 1)
	created, err := env.svc.Create(ctx, comedy)
	require.NoError(t, err)

	drama := validFilm()
	drama.Genres = []models.Genre{{ID: 2}}
	drama.ReleaseDate = models.NewDate(2001, 6, 1)
	_, err = env.svc.Create(ctx, drama)
	require.NoError(t, err)

	byGenre, err := env.svc.GetPopular(ctx, 10, 1, 0)
	require.NoError(t, err)
	require.Len(t, byGenre, 1)
	assert.Equal(t, created.ID, byGenre[0].ID)

	byYear, err := env.svc.GetPopular(ctx, 10, 0, 2000)
	require.NoError(t, err)
	require.Len(t, byYear, 1)
	assert.Equal(t, created.ID, byYear[0].ID)

	both, err := env.svc.GetPopular(ctx, 10, 2, 2000)
	require.NoError(t, err)
	assert.Empty(t, both)
}

func TestGetCommonReturnsSharedLikesInPopularityOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	f1 := env.createFilm(t, "first")
	f2 := env.createFilm(t, "second")
	f3 := env.createFilm(t, "third")

	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	carol := env.createUser(t, "carol")

	for _, u := range []*models.User{alice, bob} {
		require.NoError(t, env.svc.AddLike(ctx, f1.ID, u.ID))
		require.NoError(t, env.svc.AddLike(ctx, f2.ID, u.ID))
	}
	// Extra like pushes f2 ahead of f1; f3 is alice-only.
	require.NoError(t, env.svc.AddLike(ctx, f2.ID, carol.ID))
	require.NoError(t, env.svc.AddLike(ctx, f3.ID, alice.ID))

	common, err := env.svc.GetCommon(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, common, 2)
	assert.Equal(t, f2.ID, common[0].ID)
	assert.Equal(t, f1.ID, common[1].ID)
}

func TestGetByDirectorSortByYear(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	d := &models.Director{Name: "Wes"}
	require.NoError(t, env.directors.Create(ctx, d))

	newer := validFilm()
	newer.ReleaseDate = models.NewDate(2010, 1, 1)
	newer.Directors = []models.Director{{ID: d.ID}}
	newerCreated, err := env.svc.Create(ctx, newer)
	require.NoError(t, err)

	older := validFilm()
	older.ReleaseDate = models.NewDate(1999, 1, 1)
	older.Directors = []models.Director{{ID: d.ID}}
	olderCreated, err := env.svc.Create(ctx, older)
	require.NoError(t, err)

	films, err := env.svc.GetByDirector(ctx, d.ID, SortByYear)
	require.NoError(t, err)
	require.Len(t, films, 2)
	assert.Equal(t, olderCreated.ID, films[0].ID)
	assert.Equal(t, newerCreated.ID, films[1].ID)
}

func TestGetByDirectorRejectsUnknownSort(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	d := &models.Director{Name: "Wes"}
	require.NoError(t, env.directors.Create(ctx, d))

	_, err := env.svc.GetByDirector(ctx, d.ID, "title")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestGetByDirectorUnknownDirector(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.GetByDirector(context.Background(), 404, SortByLikes)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateUnknownFilm(t *testing.T) {
	env := newTestEnv(t)

	f := validFilm()
	f.ID = 42
	_, err := env.svc.Update(context.Background(), f)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.ErrorContains(t, err, "film with id 42")
}

func TestUpdateUnknownFilmWinsOverBadReferences(t *testing.T) {
	env := newTestEnv(t)

	f := validFilm()
	f.ID = 42
	f.Genres = []models.Genre{{ID: 99}}
	_, err := env.svc.Update(context.Background(), f)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.ErrorContains(t, err, "film with id 42")
}

func TestDeleteFilmRemovesIt(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	f := env.createFilm(t, "doomed")

	require.NoError(t, env.svc.Delete(ctx, f.ID))

	_, err := env.svc.GetByID(ctx, f.ID)
	assert.True(t, apperrors.IsNotFound(err))
}
