package mpa

import (
	"net/http"

	"filmorate/pkg/response"

	"github.com/gin-gonic/gin"
)

type MpaHandler struct {
	mpaService MpaService
}

func NewMpaHandler(mpaService MpaService) *MpaHandler {
	return &MpaHandler{mpaService: mpaService}
}

// @Summary List all MPA ratings
// @Tags mpa
// @Produce json
// @Success 200 {array} models.MpaRating
// @Router /mpa [get]
func (h *MpaHandler) GetAll(c *gin.Context) {
	ratings, err := h.mpaService.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

func (h *MpaHandler) GetByID(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	rating, err := h.mpaService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}
