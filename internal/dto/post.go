package dto

import "Social_Feed/internal/model"

type CreatePostReq struct {
	Username string `json:"username" binding:"notblank,min=1,max=50"`
	Content  string `json:"content" binding:"notblank,min=1,max=2000"`
}

type UpdatePostReq struct {
	Username string `json:"username" binding:"notblank,min=1,max=50"`
	Content  string `json:"content" binding:"notblank,min=1,max=2000"`
}

type Post struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Content       string    `json:"content"`
	CreatedAt     Timestamp `json:"createdAt"`
	UpdatedAt     Timestamp `json:"updatedAt"`
	LikesCount    int64     `json:"likesCount"`
	CommentsCount int64     `json:"commentsCount"`
}

func PostFromModel(p *model.PostWithCounts) Post {
	return Post{
		ID:            p.ID,
		Username:      p.Username,
		Content:       p.Content,
		CreatedAt:     NewTimestamp(p.CreatedAt),
		UpdatedAt:     NewTimestamp(p.UpdatedAt),
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
	}
}
