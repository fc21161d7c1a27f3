package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickblog/internal/service"
)

// GetPosts 返回全部文章，按创建时间倒序。
func (a *API) GetPosts(c *gin.Context) {
	posts, err := a.posts.List(c.Request.Context())
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost 按 id 返回单篇文章。
func (a *API) GetPost(c *gin.Context) {
	post, err := a.posts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, http.StatusNotFound, "Post not found")
			return
		}
		respondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreatePost 校验必填字段并创建文章。
func (a *API) CreatePost(c *gin.Context) {
	var input service.CreateInput
	if !bindJSON(c, &input, "Invalid request body") {
		return
	}

	post, err := a.posts.Create(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			respondError(c, http.StatusBadRequest, "Title, content, and author are required")
			return
		}
		respondInternalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// DeletePost 删除文章，不存在时返回 404。
func (a *API) DeletePost(c *gin.Context) {
	if err := a.posts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, http.StatusNotFound, "Post not found")
			return
		}
		respondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
