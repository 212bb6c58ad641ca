package server

import (
	_ "filmorate/docs"
	"filmorate/internal/director"
	"filmorate/internal/film"
	"filmorate/internal/genre"
	"filmorate/internal/mpa"
	"filmorate/internal/recommendation"
	"filmorate/internal/review"
	"filmorate/internal/user"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handlers struct {
	User           *user.UserHandler
	Film           *film.FilmHandler
	Genre          *genre.GenreHandler
	Mpa            *mpa.MpaHandler
	Director       *director.DirectorHandler
	Review         *review.ReviewHandler
	Recommendation *recommendation.RecommendationHandler
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(router *gin.Engine, h *Handlers) {
	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check route
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	users := router.Group("/users")
	{
		users.GET("", h.User.GetAll)
		users.POST("", h.User.Create)
		users.PUT("", h.User.Update)
		users.GET("/:id", h.User.GetByID)
		users.DELETE("/:id", h.User.Delete)
		users.PUT("/:id/friends/:friendId", h.User.AddFriend)
		users.DELETE("/:id/friends/:friendId", h.User.RemoveFriend)
		users.GET("/:id/friends", h.User.GetFriends)
		users.GET("/:id/friends/common/:otherId", h.User.GetCommonFriends)
		users.GET("/:id/recommendations", h.Recommendation.GetRecommendations)
	}

	films := router.Group("/films")
	{
		films.GET("", h.Film.GetAll)
		films.POST("", h.Film.Create)
		films.PUT("", h.Film.Update)
		films.GET("/popular", h.Film.GetPopular)
		films.GET("/common", h.Film.GetCommon)
		films.GET("/director/:directorId", h.Film.GetByDirector)
		films.GET("/:id", h.Film.GetByID)
		films.DELETE("/:id", h.Film.Delete)
		films.PUT("/:id/like/:userId", h.Film.AddLike)
		films.DELETE("/:id/like/:userId", h.Film.RemoveLike)
	}

	reviews := router.Group("/reviews")
	{
		reviews.GET("", h.Review.GetReviews)
		reviews.POST("", h.Review.Create)
		reviews.PUT("", h.Review.Update)
		reviews.GET("/:id", h.Review.GetByID)
		reviews.DELETE("/:id", h.Review.Delete)
		reviews.PUT("/:id/like/:userId", h.Review.Like)
		reviews.PUT("/:id/dislike/:userId", h.Review.Dislike)
		reviews.DELETE("/:id/like/:userId", h.Review.RemoveLike)
		reviews.DELETE("/:id/dislike/:userId", h.Review.RemoveDislike)
	}

	genres := router.Group("/genres")
	{
		genres.GET("", h.Genre.GetAll)
		genres.GET("/:id", h.Genre.GetByID)
	}

	ratings := router.Group("/mpa")
	{
		ratings.GET("", h.Mpa.GetAll)
		ratings.GET("/:id", h.Mpa.GetByID)
	}

	directors := router.Group("/directors")
	{
		directors.GET("", h.Director.GetAll)
		directors.POST("", h.Director.Create)
		directors.PUT("", h.Director.Update)
		directors.GET("/:id", h.Director.GetByID)
		directors.DELETE("/:id", h.Director.Delete)
	}
}
