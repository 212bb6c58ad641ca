package genre

import (
	"net/http"

	"filmorate/pkg/response"

	"github.com/gin-gonic/gin"
)

type GenreHandler struct {
	genreService GenreService
}

func NewGenreHandler(genreService GenreService) *GenreHandler {
	return &GenreHandler{genreService: genreService}
}

// @Summary List all genres
// @Tags genres
// @Produce json
// @Success 200 {array} models.Genre
// @Router /genres [get]
func (h *GenreHandler) GetAll(c *gin.Context) {
	genres, err := h.genreService.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, genres)
}

func (h *GenreHandler) GetByID(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	genre, err := h.genreService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, genre)
}
