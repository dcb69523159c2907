package handlers

import (
	"net/http"

	"github.com/aledanee/blotch/helper"
	"github.com/aledanee/blotch/middleware"
	"github.com/aledanee/blotch/models"
	"github.com/aledanee/blotch/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, h *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, Helper: h}
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	identifier := c.Query("user_identifier")
	if identifier == "" {
		h.Helper.SendBadRequest(c, "user_identifier is required")
		return
	}

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	actor := middleware.CurrentUser(c)
	if actor == nil {
		h.Helper.SendUnauthorizedError(c, "Not authenticated")
		return
	}

	user, err := h.userService.UpdateUser(identifier, req, actor)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	var params models.UserListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	users, err := h.userService.GetUsers(params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	if len(users) == 0 {
		h.Helper.SendNotFoundError(c, "No users found")
		return
	}

	c.JSON(http.StatusOK, users)
}
