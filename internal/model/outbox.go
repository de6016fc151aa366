package model

import "time"

const (
	OutboxPending int8 = 0
	OutboxSent    int8 = 1
	OutboxFailed  int8 = 2
)

// Outbox 动态事件表，与业务写入同一事务
type Outbox struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	EventType string `gorm:"size:32;not null"`
	PostID    string `gorm:"size:64;not null"`
	Username  string `gorm:"size:50"`
	Payload   string `gorm:"type:text;not null"`
	Status    int8   `gorm:"not null;default:0;index"`
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Outbox) TableName() string { return "outbox" }
