package dto

import "Social_Feed/internal/model"

type CreateCommentReq struct {
	Username string `json:"username" binding:"notblank,min=1,max=50"`
	Content  string `json:"content" binding:"notblank,min=1,max=1000"`
}

type UpdateCommentReq struct {
	Username string `json:"username" binding:"notblank,min=1,max=50"`
	Content  string `json:"content" binding:"notblank,min=1,max=1000"`
}

type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

func CommentFromModel(c *model.Comment) Comment {
	return Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		Username:  c.Username,
		Content:   c.Content,
		CreatedAt: NewTimestamp(c.CreatedAt),
		UpdatedAt: NewTimestamp(c.UpdatedAt),
	}
}
