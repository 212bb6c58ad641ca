package server

import (
	"log/slog"
	"net/http"

	"filmorate/internal/config"
	"filmorate/internal/database"
	"filmorate/internal/director"
	"filmorate/internal/film"
	"filmorate/internal/genre"
	"filmorate/internal/mpa"
	"filmorate/internal/recommendation"
	"filmorate/internal/review"
	"filmorate/internal/server/middleware"
	"filmorate/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	router *gin.Engine
	db     *gorm.DB
	cache  *redis.Client
	cfg    *config.Config
}

func NewApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	db, err := database.NewPostgresConnection(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	// The service layer treats a nil cache client as "caching disabled",
	// so an unreachable redis only costs the caches.
	var cache *redis.Client
	if cfg.Redis.Enabled {
		cache, err = database.NewRedisClient(cfg.Redis)
		if err != nil {
			slog.Warn("redis unavailable, running without cache", "error", err)
			cache = nil
		}
	}

	// Repositories
	userRepo := user.NewUserRepository(db)
	filmRepo := film.NewFilmRepository(db)
	likeRepo := film.NewLikeRepository(db)
	genreRepo := genre.NewGenreRepository(db)
	mpaRepo := mpa.NewMpaRepository(db)
	directorRepo := director.NewDirectorRepository(db)
	reviewRepo := review.NewReviewRepository(db)

	// Services
	userService := user.NewUserService(userRepo)
	filmService := film.NewFilmService(filmRepo, likeRepo, genreRepo, mpaRepo, directorRepo, userRepo, cache, cfg.Redis.CacheTTL)
	genreService := genre.NewGenreService(genreRepo)
	mpaService := mpa.NewMpaService(mpaRepo)
	directorService := director.NewDirectorService(directorRepo)
	reviewService := review.NewReviewService(reviewRepo, userRepo, filmRepo)
	recommendationService := recommendation.NewRecommendationService(userRepo, filmRepo, likeRepo, cache, cfg.Redis.CacheTTL)

	// Handlers
	handlers := &Handlers{
		User:           user.NewUserHandler(userService),
		Film:           film.NewFilmHandler(filmService),
		Genre:          genre.NewGenreHandler(genreService),
		Mpa:            mpa.NewMpaHandler(mpaService),
		Director:       director.NewDirectorHandler(directorService),
		Review:         review.NewReviewHandler(reviewService),
		Recommendation: recommendation.NewRecommendationHandler(recommendationService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LogAPI())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())

	SetupRoutes(router, handlers)

	return &App{
		router: router,
		db:     db,
		cache:  cache,
		cfg:    cfg,
	}, nil
}

func (a *App) Run() error {
	addr := a.cfg.Server.Host + ":" + a.cfg.Server.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      a.router,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	}
	slog.Info("starting server", "addr", addr)
	return srv.ListenAndServe()
}
