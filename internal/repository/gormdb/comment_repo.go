package gormdb

import (
	"Social_Feed/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.DB.Create(comment).Error
}

// FindByIDAndPostID id 与 post_id 必须同时匹配
func (r *CommentRepository) FindByIDAndPostID(id, postID string) (*model.Comment, error) {
	var comment model.Comment
	err := r.DB.Where("id = ? AND post_id = ?", id, postID).First(&comment).Error
	return &comment, err
}

// ListByPost 按创建时间正序
func (r *CommentRepository) ListByPost(postID string) ([]model.Comment, error) {
	list := make([]model.Comment, 0)
	err := r.DB.Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&list).Error
	return list, err
}

func (r *CommentRepository) Update(comment *model.Comment) (int64, error) {
	tx := r.DB.Model(&model.Comment{}).
		Where("id = ? AND post_id = ?", comment.ID, comment.PostID).
		Updates(map[string]any{
			"username":   comment.Username,
			"content":    comment.Content,
			"updated_at": comment.UpdatedAt,
		})
	return tx.RowsAffected, tx.Error
}

func (r *CommentRepository) Delete(id, postID string) (int64, error) {
	tx := r.DB.Where("id = ? AND post_id = ?", id, postID).Delete(&model.Comment{})
	return tx.RowsAffected, tx.Error
}

// DeleteByPost 级联删除某帖子下的全部评论
func (r *CommentRepository) DeleteByPost(postID string) (int64, error) {
	tx := r.DB.Where("post_id = ?", postID).Delete(&model.Comment{})
	return tx.RowsAffected, tx.Error
}
