package handler

import (
	"net/http"

	"Social_Feed/internal/dto"
	"Social_Feed/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	svc *service.CommentService
}

func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	comments, err := h.svc.ListComments(c.Request.Context(), c.Param("postId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// CreateComment 发表评论接口
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentReq
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	comment, err := h.svc.CreateComment(c.Request.Context(), c.Param("postId"), req.Username, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) GetComment(c *gin.Context) {
	comment, err := h.svc.GetComment(c.Request.Context(), c.Param("postId"), c.Param("commentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var req dto.UpdateCommentReq
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	comment, err := h.svc.UpdateComment(c.Request.Context(), c.Param("postId"), c.Param("commentId"), req.Username, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.svc.DeleteComment(c.Request.Context(), c.Param("postId"), c.Param("commentId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
