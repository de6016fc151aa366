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

type PostService struct {
	deps
}

func NewPostService(db *gorm.DB, opts ...Option) *PostService {
	return &PostService{deps: newDeps(db, opts)}
}

// ListPosts 全部帖子，创建时间倒序，计数实时统计
func (s *PostService) ListPosts(ctx context.Context) ([]dto.Post, error) {
	var out []dto.Post
	err := s.readTx(ctx, func(tx *gorm.DB) error {
		list, err := (&gormdb.PostRepository{DB: tx}).ListWithCounts()
		if err != nil {
			return err
		}
		out = make([]dto.Post, 0, len(list))
		for i := range list {
			out = append(out, dto.PostFromModel(&list[i]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return out, nil
}

func (s *PostService) CreatePost(ctx context.Context, username, content string) (*dto.Post, error) {
	now := s.now()
	post := &model.Post{
		ID:        s.newID(),
		Username:  username,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.writeTx(ctx, func(tx *gorm.DB) error {
		if err := (&gormdb.PostRepository{DB: tx}).Create(post); err != nil {
			return err
		}
		return s.events.Record(tx, Event{
			Type:      EventPostCreated,
			PostID:    post.ID,
			Username:  username,
			Content:   content,
			EventTime: now,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	out := dto.PostFromModel(&model.PostWithCounts{Post: *post})
	return &out, nil
}

func (s *PostService) GetPost(ctx context.Context, id string) (*dto.Post, error) {
	var out dto.Post
	err := s.readTx(ctx, func(tx *gorm.DB) error {
		p, err := (&gormdb.PostRepository{DB: tx}).FindWithCounts(id)
		if err != nil {
			return err
		}
		out = dto.PostFromModel(p)
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post %s: %w", id, err)
	}
	return &out, nil
}

// UpdatePost 覆盖 username/content，推进 updatedAt 并重新统计计数
func (s *PostService) UpdatePost(ctx context.Context, id, username, content string) (*dto.Post, error) {
	unlock, err := s.locker.Lock(ctx, postLockKey(id))
	if err != nil {
		return nil, err
	}
	defer unlock()

	var out dto.Post
	err = s.writeTx(ctx, func(tx *gorm.DB) error {
		posts := &gormdb.PostRepository{DB: tx}
		post, err := posts.FindByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		if err != nil {
			return err
		}

		post.Username = username
		post.Content = content
		post.UpdatedAt = s.advance(post.UpdatedAt)
		if _, err := posts.Update(post); err != nil {
			return err
		}

		withCounts, err := posts.FindWithCounts(id)
		if err != nil {
			return err
		}
		out = dto.PostFromModel(withCounts)

		return s.events.Record(tx, Event{
			Type:      EventPostUpdated,
			PostID:    id,
			Username:  username,
			Content:   content,
			EventTime: post.UpdatedAt,
		})
	})
	if errors.Is(err, ErrPostNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("update post %s: %w", id, err)
	}
	return &out, nil
}

// DeletePost 同一事务内级联删除评论和点赞
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	unlock, err := s.locker.Lock(ctx, postLockKey(id))
	if err != nil {
		return err
	}
	defer unlock()

	err = s.writeTx(ctx, func(tx *gorm.DB) error {
		posts := &gormdb.PostRepository{DB: tx}
		ok, err := posts.Exists(id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrPostNotFound
		}

		if _, err := (&gormdb.CommentRepository{DB: tx}).DeleteByPost(id); err != nil {
			return err
		}
		if _, err := (&gormdb.LikeRepository{DB: tx}).DeleteByPost(id); err != nil {
			return err
		}
		if _, err := posts.Delete(id); err != nil {
			return err
		}
		return s.events.Record(tx, Event{Type: EventPostDeleted, PostID: id, EventTime: s.now()})
	})
	if errors.Is(err, ErrPostNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("delete post %s: %w", id, err)
	}
	return nil
}
