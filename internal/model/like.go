package model

import "time"

// Like 以 (post_id, username) 作为联合主键，保证同一用户对同一帖子只能点赞一次
type Like struct {
	PostID    string    `gorm:"primaryKey;size:64"`
	Username  string    `gorm:"primaryKey;size:50"`
	CreatedAt time.Time `gorm:"not null"`
}

func (Like) TableName() string {
	return "likes"
}
