package director

import (
	"net/http"

	"filmorate/internal/models"
	"filmorate/pkg/response"

	"github.com/gin-gonic/gin"
)

type DirectorHandler struct {
	directorService DirectorService
}

func NewDirectorHandler(directorService DirectorService) *DirectorHandler {
	return &DirectorHandler{directorService: directorService}
}

func (h *DirectorHandler) GetAll(c *gin.Context) {
	directors, err := h.directorService.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, directors)
}

func (h *DirectorHandler) GetByID(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	director, err := h.directorService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, director)
}

func (h *DirectorHandler) Create(c *gin.Context) {
	var director models.Director
	if err := c.ShouldBindJSON(&director); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.directorService.Create(c.Request.Context(), &director)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *DirectorHandler) Update(c *gin.Context) {
	var director models.Director
	if err := c.ShouldBindJSON(&director); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.directorService.Update(c.Request.Context(), &director)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *DirectorHandler) Delete(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	if err := h.directorService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
