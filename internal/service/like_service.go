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

type LikeService struct {
	deps
}

func NewLikeService(db *gorm.DB, opts ...Option) *LikeService {
	return &LikeService{deps: newDeps(db, opts)}
}

// LikePost 已点赞返回 ErrAlreadyLiked；并发插入由联合主键兜底
func (s *LikeService) LikePost(ctx context.Context, postID, username string) (*dto.LikeResponse, error) {
	unlock, err := s.locker.Lock(ctx, likeLockKey(postID, username))
	if err != nil {
		return nil, err
	}
	defer unlock()

	like := &model.Like{PostID: postID, Username: username, CreatedAt: s.now()}
	err = s.writeTx(ctx, func(tx *gorm.DB) error {
		likes := &gormdb.LikeRepository{DB: tx}
		exists, err := likes.Exists(postID, username)
		if err != nil {
			return err
		}
		if exists {
			return ErrAlreadyLiked
		}
		if err := likes.Create(like); err != nil {
			if gormdb.IsDuplicateKey(err) {
				return ErrAlreadyLiked
			}
			return err
		}
		return s.events.Record(tx, Event{
			Type:      EventPostLiked,
			PostID:    postID,
			Username:  username,
			EventTime: like.CreatedAt,
		})
	})
	if errors.Is(err, ErrAlreadyLiked) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("like post %s: %w", postID, err)
	}

	out := dto.LikeFromModel(like)
	return &out, nil
}

// UnlikePost 幂等：没有点赞记录时不报错
func (s *LikeService) UnlikePost(ctx context.Context, postID, username string) error {
	unlock, err := s.locker.Lock(ctx, likeLockKey(postID, username))
	if err != nil {
		return err
	}
	defer unlock()

	err = s.writeTx(ctx, func(tx *gorm.DB) error {
		n, err := (&gormdb.LikeRepository{DB: tx}).DeleteByPostAndUsername(postID, username)
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		return s.events.Record(tx, Event{
			Type:      EventPostUnliked,
			PostID:    postID,
			Username:  username,
			EventTime: s.now(),
		})
	})
	if err != nil {
		return fmt.Errorf("unlike post %s: %w", postID, err)
	}
	return nil
}
