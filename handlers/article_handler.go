package handlers

import (
	"net/http"
	"strconv"

	"github.com/aledanee/blotch/helper"
	"github.com/aledanee/blotch/middleware"
	"github.com/aledanee/blotch/models"
	"github.com/aledanee/blotch/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, h *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: h}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	author := middleware.CurrentUser(c)
	if author == nil {
		h.Helper.SendUnauthorizedError(c, "Not authenticated")
		return
	}

	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	article, err := h.articleService.CreateArticle(req, author)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

// GetArticlePage serves offset/limit pagination. An empty page is a valid
// 200 response here.
func (h *ArticleHandler) GetArticlePage(c *gin.Context) {
	var params models.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	articles, err := h.articleService.GetArticlePage(params.Skip, params.Limit)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, articles)
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	articles, err := h.articleService.GetArticles(params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	if len(articles) == 0 {
		h.Helper.SendNotFoundError(c, "No articles found")
		return
	}

	c.JSON(http.StatusOK, articles)
}

func (h *ArticleHandler) SearchArticles(c *gin.Context) {
	articles, err := h.articleService.SearchArticles(c.Query("search"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	if len(articles) == 0 {
		h.Helper.SendNotFoundError(c, "No articles found")
		return
	}

	c.JSON(http.StatusOK, articles)
}

func (h *ArticleHandler) GetLatestArticles(c *gin.Context) {
	limit := 3
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			h.Helper.SendBadRequest(c, "Invalid limit")
			return
		}
		limit = parsed
	}

	articles, err := h.articleService.LatestArticles(limit)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	if len(articles) == 0 {
		h.Helper.SendNotFoundError(c, "No articles found")
		return
	}

	c.JSON(http.StatusOK, articles)
}

func (h *ArticleHandler) GetMostLikedArticle(c *gin.Context) {
	article, err := h.articleService.MostLikedArticle()
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID")
		return
	}

	article, err := h.articleService.GetArticle(uint(id))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		h.Helper.SendUnauthorizedError(c, "Not authenticated")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID")
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	article, err := h.articleService.UpdateArticle(uint(id), req, actor)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		h.Helper.SendUnauthorizedError(c, "Not authenticated")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID")
		return
	}

	if err := h.articleService.DeleteArticle(uint(id), actor); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
