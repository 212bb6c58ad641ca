package film

import (
	"net/http"
	"strconv"

	"filmorate/internal/models"
	"filmorate/pkg/response"

	"github.com/gin-gonic/gin"
)

type FilmHandler struct {
	filmService FilmService
}

func NewFilmHandler(filmService FilmService) *FilmHandler {
	return &FilmHandler{filmService: filmService}
}

// @Summary List all films
// @Tags films
// @Produce json
// @Success 200 {array} models.Film
// @Router /films [get]
func (h *FilmHandler) GetAll(c *gin.Context) {
	films, err := h.filmService.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, films)
}

func (h *FilmHandler) GetByID(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	film, err := h.filmService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, film)
}

// @Summary Create a film
// @Tags films
// @Accept json
// @Produce json
// @Param film body models.Film true "Film"
// @Success 201 {object} models.Film
// @Failure 400 {object} map[string]string
// @Router /films [post]
func (h *FilmHandler) Create(c *gin.Context) {
	var film models.Film
	if err := c.ShouldBindJSON(&film); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.filmService.Create(c.Request.Context(), &film)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *FilmHandler) Update(c *gin.Context) {
	var film models.Film
	if err := c.ShouldBindJSON(&film); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.filmService.Update(c.Request.Context(), &film)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *FilmHandler) Delete(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	if err := h.filmService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FilmHandler) AddLike(c *gin.Context) {
	filmID, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	userID, ok := response.PathID(c, "userId")
	if !ok {
		return
	}
	if err := h.filmService.AddLike(c.Request.Context(), filmID, userID); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *FilmHandler) RemoveLike(c *gin.Context) {
	filmID, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	userID, ok := response.PathID(c, "userId")
	if !ok {
		return
	}
	if err := h.filmService.RemoveLike(c.Request.Context(), filmID, userID); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Most-liked films
// @Description Films ranked by like count, optionally filtered by genre and release year.
// @Tags films
// @Produce json
// @Param count query int false "Result limit (default 10)"
// @Param genreId query int false "Genre filter"
// @Param year query int false "Release year filter"
// @Success 200 {array} models.Film
// @Router /films/popular [get]
func (h *FilmHandler) GetPopular(c *gin.Context) {
	count, _ := strconv.Atoi(c.DefaultQuery("count", "10"))
	genreID, _ := strconv.ParseUint(c.Query("genreId"), 10, 32)
	year, _ := strconv.Atoi(c.Query("year"))

	films, err := h.filmService.GetPopular(c.Request.Context(), count, uint(genreID), year)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, films)
}

func (h *FilmHandler) GetCommon(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Query("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId parameter"})
		return
	}
	friendID, err := strconv.ParseUint(c.Query("friendId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid friendId parameter"})
		return
	}

	films, err := h.filmService.GetCommon(c.Request.Context(), uint(userID), uint(friendID))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, films)
}

func (h *FilmHandler) GetByDirector(c *gin.Context) {
	directorID, ok := response.PathID(c, "directorId")
	if !ok {
		return
	}
	films, err := h.filmService.GetByDirector(c.Request.Context(), directorID, c.Query("sortBy"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, films)
}
