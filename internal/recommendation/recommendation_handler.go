package recommendation

import (
	"net/http"

	"filmorate/pkg/response"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	recommendationService RecommendationService
}

func NewRecommendationHandler(recommendationService RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// @Summary Personalized film recommendations
// @Description Films liked by users with overlapping taste that this user has not liked yet.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.Film
// @Failure 404 {object} map[string]string
// @Router /users/{id}/recommendations [get]
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	films, err := h.recommendationService.Recommend(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, films)
}
