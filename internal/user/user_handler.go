package user

import (
	"net/http"

	"filmorate/internal/models"
	"filmorate/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService UserService
}

func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Router /users [get]
func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.userService.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary Get a user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} map[string]string
// @Router /users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.User true "User"
// @Success 201 {object} models.User
// @Failure 400 {object} map[string]string
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.userService.Create(c.Request.Context(), &user)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.User true "User"
// @Success 200 {object} models.User
// @Failure 404 {object} map[string]string
// @Router /users [put]
func (h *UserHandler) Update(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.userService.Update(c.Request.Context(), &user)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) AddFriend(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	friendID, ok := response.PathID(c, "friendId")
	if !ok {
		return
	}
	if err := h.userService.AddFriend(c.Request.Context(), id, friendID); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *UserHandler) RemoveFriend(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	friendID, ok := response.PathID(c, "friendId")
	if !ok {
		return
	}
	if err := h.userService.RemoveFriend(c.Request.Context(), id, friendID); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *UserHandler) GetFriends(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	friends, err := h.userService.GetFriends(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, friends)
}

// @Summary Friends both users have in common
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Param otherId path int true "Other user ID"
// @Success 200 {array} models.User
// @Router /users/{id}/friends/common/{otherId} [get]
func (h *UserHandler) GetCommonFriends(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	otherID, ok := response.PathID(c, "otherId")
	if !ok {
		return
	}
	friends, err := h.userService.GetCommonFriends(c.Request.Context(), id, otherID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, friends)
}

