package main

import (
	"context"
	"log"
	"log/slog"
	"time"

	"filmorate/internal/config"
	"filmorate/internal/database"
	"filmorate/internal/director"
	"filmorate/internal/film"
	"filmorate/internal/genre"
	"filmorate/internal/models"
	"filmorate/internal/mpa"
	"filmorate/internal/user"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	slog.Info("Starting database seeding...")

	db, err := database.NewPostgresConnection(cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	slog.Info("Database connection established")

	ctx := context.Background()

	userRepo := user.NewUserRepository(db)
	filmRepo := film.NewFilmRepository(db)
	likeRepo := film.NewLikeRepository(db)
	genreRepo := genre.NewGenreRepository(db)
	mpaRepo := mpa.NewMpaRepository(db)
	directorRepo := director.NewDirectorRepository(db)

	userService := user.NewUserService(userRepo)
	filmService := film.NewFilmService(filmRepo, likeRepo, genreRepo, mpaRepo, directorRepo, userRepo, nil, time.Minute)

	slog.Info("Creating demo users...")

	demoUsers := []models.User{
		{Email: "alice@filmorate.dev", Login: "alice", Name: "Alice", Birthday: models.NewDate(1990, 3, 14)},
		{Email: "bob@filmorate.dev", Login: "bob", Birthday: models.NewDate(1985, 7, 1)},
		{Email: "carol@filmorate.dev", Login: "carol", Name: "Carol", Birthday: models.NewDate(2000, 11, 30)},
	}
	var userIDs []uint
	for i := range demoUsers {
		created, err := userService.Create(ctx, &demoUsers[i])
		if err != nil {
			slog.Warn("user might already exist", "login", demoUsers[i].Login, "error", err)
			continue
		}
		userIDs = append(userIDs, created.ID)
		slog.Info("created user", "id", created.ID, "login", created.Login)
	}

	slog.Info("Creating demo films...")

	demoFilms := []models.Film{
		{
			Name:        "Arrival of a Train",
			Description: "Fifty seconds that started everything.",
			ReleaseDate: models.NewDate(1896, 1, 6),
			Duration:    1,
			Mpa:         models.MpaRating{ID: 1},
			Genres:      []models.Genre{{ID: 5}},
		},
		{
			Name:        "Midnight Circuit",
			Description: "A courier takes one last job.",
			ReleaseDate: models.NewDate(2019, 10, 4),
			Duration:    112,
			Mpa:         models.MpaRating{ID: 4},
			Genres:      []models.Genre{{ID: 4}, {ID: 6}},
		},
		{
			Name:        "Paper Houses",
			Description: "Two siblings rebuild after the flood.",
			ReleaseDate: models.NewDate(2021, 2, 19),
			Duration:    96,
			Mpa:         models.MpaRating{ID: 2},
			Genres:      []models.Genre{{ID: 2}},
		},
	}
	var filmIDs []uint
	for i := range demoFilms {
		created, err := filmService.Create(ctx, &demoFilms[i])
		if err != nil {
			slog.Warn("film might already exist", "name", demoFilms[i].Name, "error", err)
			continue
		}
		filmIDs = append(filmIDs, created.ID)
		slog.Info("created film", "id", created.ID, "name", created.Name)
	}

	if len(userIDs) >= 3 && len(filmIDs) >= 3 {
		slog.Info("Creating demo likes and friendships...")
		likes := []struct{ film, user int }{
			{0, 0}, {1, 0}, {0, 1}, {2, 1}, {1, 2},
		}
		for _, l := range likes {
			if err := filmService.AddLike(ctx, filmIDs[l.film], userIDs[l.user]); err != nil {
				slog.Warn("failed to add like", "error", err)
			}
		}
		if err := userService.AddFriend(ctx, userIDs[0], userIDs[1]); err != nil {
			slog.Warn("failed to add friend", "error", err)
		}
		if err := userService.AddFriend(ctx, userIDs[1], userIDs[0]); err != nil {
			slog.Warn("failed to add friend", "error", err)
		}
	}

	slog.Info("Seeding complete")
}
