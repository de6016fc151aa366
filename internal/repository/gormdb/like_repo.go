package gormdb

import (
	"Social_Feed/internal/model"

	"gorm.io/gorm"
)

type LikeRepository struct {
	DB *gorm.DB
}

func (r *LikeRepository) Exists(postID, username string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Like{}).
		Where("post_id = ? AND username = ?", postID, username).
		Count(&count).Error
	return count > 0, err
}

// Create 联合主键冲突时返回 gorm.ErrDuplicatedKey（或驱动原始错误，见 IsDuplicateKey）
func (r *LikeRepository) Create(like *model.Like) error {
	return r.DB.Create(like).Error
}

// DeleteByPostAndUsername 未命中时 affected=0，不报错
func (r *LikeRepository) DeleteByPostAndUsername(postID, username string) (int64, error) {
	tx := r.DB.Where("post_id = ? AND username = ?", postID, username).Delete(&model.Like{})
	return tx.RowsAffected, tx.Error
}

func (r *LikeRepository) DeleteByPost(postID string) (int64, error) {
	tx := r.DB.Where("post_id = ?", postID).Delete(&model.Like{})
	return tx.RowsAffected, tx.Error
}
