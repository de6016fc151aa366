package service

import (
	"context"
	"errors"
	"fmt"

	"Social_Feed/internal/dto"
	"Social_Feed/internal/model"
	"Social_Feed/internal/repository/gormdb"

	"gorm.io/gorm"
)

type CommentService struct {
	deps
}

func NewCommentService(db *gorm.DB, opts ...Option) *CommentService {
	return &CommentService{deps: newDeps(db, opts)}
}

// ListComments 按创建时间正序
func (s *CommentService) ListComments(ctx context.Context, postID string) ([]dto.Comment, error) {
	var out []dto.Comment
	err := s.readTx(ctx, func(tx *gorm.DB) error {
		list, err := (&gormdb.CommentRepository{DB: tx}).ListByPost(postID)
		if err != nil {
			return err
		}
		out = make([]dto.Comment, 0, len(list))
		for i := range list {
			out = append(out, dto.CommentFromModel(&list[i]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list comments of %s: %w", postID, err)
	}
	return out, nil
}

// CreateComment 不校验帖子是否存在，可能产生孤儿评论
func (s *CommentService) CreateComment(ctx context.Context, postID, username, content string) (*dto.Comment, error) {
	now := s.now()
	comment := &model.Comment{
		ID:        s.newID(),
		PostID:    postID,
		Username:  username,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.writeTx(ctx, func(tx *gorm.DB) error {
		if err := (&gormdb.CommentRepository{DB: tx}).Create(comment); err != nil {
			return err
		}
		return s.events.Record(tx, Event{
			Type:      EventCommentCreated,
			PostID:    postID,
			CommentID: comment.ID,
			Username:  username,
			Content:   content,
			EventTime: now,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("create comment on %s: %w", postID, err)
	}

	out := dto.CommentFromModel(comment)
	return &out, nil
}

func (s *CommentService) GetComment(ctx context.Context, postID, commentID string) (*dto.Comment, error) {
	var out dto.Comment
	err := s.readTx(ctx, func(tx *gorm.DB) error {
		c, err := (&gormdb.CommentRepository{DB: tx}).FindByIDAndPostID(commentID, postID)
		if err != nil {
			return err
		}
		out = dto.CommentFromModel(c)
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get comment %s: %w", commentID, err)
	}
	return &out, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, postID, commentID, username, content string) (*dto.Comment, error) {
	unlock, err := s.locker.Lock(ctx, commentLockKey(commentID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	var out dto.Comment
	err = s.writeTx(ctx, func(tx *gorm.DB) error {
		comments := &gormdb.CommentRepository{DB: tx}
		c, err := comments.FindByIDAndPostID(commentID, postID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		if err != nil {
			return err
		}

		c.Username = username
		c.Content = content
		c.UpdatedAt = s.advance(c.UpdatedAt)
		if _, err := comments.Update(c); err != nil {
			return err
		}
		out = dto.CommentFromModel(c)

		return s.events.Record(tx, Event{
			Type:      EventCommentUpdated,
			PostID:    postID,
			CommentID: commentID,
			Username:  username,
			Content:   content,
			EventTime: c.UpdatedAt,
		})
	})
	if errors.Is(err, ErrCommentNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("update comment %s: %w", commentID, err)
	}
	return &out, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, postID, commentID string) error {
	unlock, err := s.locker.Lock(ctx, commentLockKey(commentID))
	if err != nil {
		return err
	}
	defer unlock()

	err = s.writeTx(ctx, func(tx *gorm.DB) error {
		n, err := (&gormdb.CommentRepository{DB: tx}).Delete(commentID, postID)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrCommentNotFound
		}
		return s.events.Record(tx, Event{
			Type:      EventCommentDeleted,
			PostID:    postID,
			CommentID: commentID,
			EventTime: s.now(),
		})
	})
	if errors.Is(err, ErrCommentNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("delete comment %s: %w", commentID, err)
	}
	return nil
}
