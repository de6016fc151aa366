package model

import "time"

// Comment 不建外键约束：创建评论时不校验帖子是否存在
type Comment struct {
	ID        string    `gorm:"primaryKey;size:64"`
	PostID    string    `gorm:"size:64;not null;index:idx_comments_post_time,priority:1"`
	Username  string    `gorm:"size:50;not null"`
	Content   string    `gorm:"size:1000;not null"`
	CreatedAt time.Time `gorm:"not null;index:idx_comments_post_time,priority:2"`
	UpdatedAt time.Time `gorm:"not null"`
}
