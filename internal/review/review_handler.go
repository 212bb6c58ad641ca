package review

import (
	"context"
	"net/http"
	"strconv"

	"filmorate/internal/models"
	"filmorate/pkg/response"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService ReviewService
}

func NewReviewHandler(reviewService ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// @Summary Create a review
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body models.Review true "Review"
// @Success 201 {object} models.Review
// @Failure 400 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.reviewService.Create(c.Request.Context(), &review)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.reviewService.Update(c.Request.Context(), &review)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	if err := h.reviewService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReviewHandler) GetByID(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	review, err := h.reviewService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// @Summary List reviews ordered by usefulness
// @Tags reviews
// @Produce json
// @Param filmId query int false "Film filter"
// @Param count query int false "Result limit (default 10)"
// @Success 200 {array} models.Review
// @Router /reviews [get]
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	filmID, _ := strconv.ParseUint(c.Query("filmId"), 10, 32)
	count, _ := strconv.Atoi(c.DefaultQuery("count", "10"))

	reviews, err := h.reviewService.GetReviews(c.Request.Context(), uint(filmID), count)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) Like(c *gin.Context) {
	h.react(c, h.reviewService.Like)
}

func (h *ReviewHandler) Dislike(c *gin.Context) {
	h.react(c, h.reviewService.Dislike)
}

func (h *ReviewHandler) RemoveLike(c *gin.Context) {
	h.react(c, h.reviewService.RemoveLike)
}

func (h *ReviewHandler) RemoveDislike(c *gin.Context) {
	h.react(c, h.reviewService.RemoveDislike)
}

func (h *ReviewHandler) react(c *gin.Context, op func(ctx context.Context, reviewID, userID uint) error) {
	reviewID, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	userID, ok := response.PathID(c, "userId")
	if !ok {
		return
	}
	if err := op(c.Request.Context(), reviewID, userID); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusOK)
}
