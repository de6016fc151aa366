package dto

import "Social_Feed/internal/model"

// LikeReq 点赞和取消点赞共用
type LikeReq struct {
	Username string `json:"username" binding:"notblank,min=1,max=50"`
}

type LikeResponse struct {
	PostID   string    `json:"postId"`
	Username string    `json:"username"`
	LikedAt  Timestamp `json:"likedAt"`
}

func LikeFromModel(l *model.Like) LikeResponse {
	return LikeResponse{
		PostID:   l.PostID,
		Username: l.Username,
		LikedAt:  NewTimestamp(l.CreatedAt),
	}
}
