package gormdb

import (
	"Social_Feed/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

const postWithCountsColumns = `posts.*,
	(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS likes_count,
	(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comments_count`

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) FindByID(id string) (*model.Post, error) {
	var post model.Post
	err := r.DB.Where("id = ?", id).First(&post).Error
	return &post, err
}

// Exists 只判断是否存在，不读取整行
func (r *PostRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Post{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ListWithCounts 全量列表，按创建时间倒序；同一时刻按 id 倒序（id 随时间递增）
func (r *PostRepository) ListWithCounts() ([]model.PostWithCounts, error) {
	var list []model.PostWithCounts
	err := r.DB.Model(&model.Post{}).
		Select(postWithCountsColumns).
		Order("posts.created_at DESC, posts.id DESC").
		Scan(&list).Error
	return list, err
}

// FindWithCounts 单条帖子及实时计数
func (r *PostRepository) FindWithCounts(id string) (*model.PostWithCounts, error) {
	var list []model.PostWithCounts
	err := r.DB.Model(&model.Post{}).
		Select(postWithCountsColumns).
		Where("posts.id = ?", id).
		Limit(1).
		Scan(&list).Error
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &list[0], nil
}

// Update 覆盖 username/content 并推进 updated_at，created_at 不变
func (r *PostRepository) Update(post *model.Post) (int64, error) {
	tx := r.DB.Model(&model.Post{}).
		Where("id = ?", post.ID).
		Updates(map[string]any{
			"username":   post.Username,
			"content":    post.Content,
			"updated_at": post.UpdatedAt,
		})
	return tx.RowsAffected, tx.Error
}

func (r *PostRepository) Delete(id string) (int64, error) {
	tx := r.DB.Where("id = ?", id).Delete(&model.Post{})
	return tx.RowsAffected, tx.Error
}
