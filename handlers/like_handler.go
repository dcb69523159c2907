package handlers

import (
	"net/http"
	"strconv"

	"github.com/aledanee/blotch/helper"
	"github.com/aledanee/blotch/middleware"
	"github.com/aledanee/blotch/services"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeService services.LikeService
	Helper      *helper.HTTPHelper
}

func NewLikeHandler(likeService services.LikeService, h *helper.HTTPHelper) *LikeHandler {
	return &LikeHandler{likeService: likeService, Helper: h}
}

// ToggleLike creates the caller's like on first call and removes it on the
// next.
func (h *LikeHandler) ToggleLike(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		h.Helper.SendUnauthorizedError(c, "Not authenticated")
		return
	}

	articleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID")
		return
	}

	result, err := h.likeService.ToggleLike(uint(articleID), user)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *LikeHandler) GetLikes(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID")
		return
	}

	likes, err := h.likeService.GetLikes(uint(articleID))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, likes)
}
