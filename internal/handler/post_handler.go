package handler

import (
	"net/http"

	"Social_Feed/internal/dto"
	"Social_Feed/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	svc *service.PostService
}

func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

// ListPosts 帖子列表接口
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.svc.ListPosts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// CreatePost 创建帖子接口
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostReq
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	post, err := h.svc.CreatePost(c.Request.Context(), req.Username, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.svc.GetPost(c.Request.Context(), c.Param("postId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// UpdatePost 修改帖子接口，username 和 content 都必须提供
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req dto.UpdatePostReq
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	post, err := h.svc.UpdatePost(c.Request.Context(), c.Param("postId"), req.Username, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost 删除帖子接口，评论和点赞一并删除
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.svc.DeletePost(c.Request.Context(), c.Param("postId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
