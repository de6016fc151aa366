package handler

import (
	"net/http"

	"Social_Feed/internal/dto"
	"Social_Feed/internal/service"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	svc *service.LikeService
}

func NewLikeHandler(svc *service.LikeService) *LikeHandler {
	return &LikeHandler{svc: svc}
}

// Like 点赞接口，重复点赞返回 ALREADY_LIKED
func (h *LikeHandler) Like(c *gin.Context) {
	var req dto.LikeReq
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	like, err := h.svc.LikePost(c.Request.Context(), c.Param("postId"), req.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, like)
}

// Unlike 取消点赞接口，未点赞也返回 204
func (h *LikeHandler) Unlike(c *gin.Context) {
	var req dto.LikeReq
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	if err := h.svc.UnlikePost(c.Request.Context(), c.Param("postId"), req.Username); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
