package model

import "time"

type Post struct {
	ID        string    `gorm:"primaryKey;size:64"`
	Username  string    `gorm:"size:50;not null"`
	Content   string    `gorm:"size:2000;not null"`
	CreatedAt time.Time `gorm:"not null;index:idx_posts_created_at"`
	UpdatedAt time.Time `gorm:"not null"`
}

// PostWithCounts 列表/详情查询结果，计数由子表实时统计
type PostWithCounts struct {
	Post
	LikesCount    int64
	CommentsCount int64
}
