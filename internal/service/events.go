package service

import (
	"encoding/json"
	"fmt"
	"time"

	"Social_Feed/internal/model"
	"Social_Feed/internal/repository/gormdb"

	"gorm.io/gorm"
)

const (
	EventPostCreated    = "post.created"
	EventPostUpdated    = "post.updated"
	EventPostDeleted    = "post.deleted"
	EventCommentCreated = "comment.created"
	EventCommentUpdated = "comment.updated"
	EventCommentDeleted = "comment.deleted"
	EventPostLiked      = "post.liked"
	EventPostUnliked    = "post.unliked"
)

// Event 动态事件载荷
type Event struct {
	Type      string    `json:"type"`
	PostID    string    `json:"post_id"`
	CommentID string    `json:"comment_id,omitempty"`
	Username  string    `json:"username,omitempty"`
	Content   string    `json:"content,omitempty"`
	EventTime time.Time `json:"event_time"`
}

// EventRecorder 在业务事务内记录事件
type EventRecorder interface {
	Record(tx *gorm.DB, ev Event) error
}

type NopRecorder struct{}

func (NopRecorder) Record(*gorm.DB, Event) error { return nil }

// OutboxRecorder 写 outbox 表，由 OutboxRelayer 异步投递
type OutboxRecorder struct{}

func (OutboxRecorder) Record(tx *gorm.DB, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", ev.Type, err)
	}
	repo := &gormdb.OutboxRepository{DB: tx}
	return repo.Create(&model.Outbox{
		EventType: ev.Type,
		PostID:    ev.PostID,
		Username:  ev.Username,
		Payload:   string(payload),
		Status:    model.OutboxPending,
	})
}
