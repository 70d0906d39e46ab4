package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/post-service/internal/model"
)

type HashtagRepository interface {
	// FindOrCreate 按规范化文本取标签，不存在则建；并发下保证同名只落一行
	FindOrCreate(ctx context.Context, text string) (*model.Hashtag, error)
	FindByText(ctx context.Context, text string) (*model.Hashtag, error)
	ListPosts(ctx context.Context, hashtagID string) ([]*model.Post, error)
}

type hashtagRepository struct {
	db *gorm.DB
}

func NewHashtagRepository(db *gorm.DB) HashtagRepository { return &hashtagRepository{db: db} }

func (r *hashtagRepository) FindOrCreate(ctx context.Context, text string) (*model.Hashtag, error) {
	tag, err := r.FindByText(ctx, text)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := &model.Hashtag{ID: uuid.New().String(), Hashtag: text}
	err = r.db.WithContext(ctx).Create(created).Error
	if err == nil {
		return created, nil
	}
	// 唯一键冲突说明并发插入输了，回读胜者
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return r.FindByText(ctx, text)
	}
	return nil, err
}

func (r *hashtagRepository) FindByText(ctx context.Context, text string) (*model.Hashtag, error) {
	var tag model.Hashtag
	err := r.db.WithContext(ctx).Where("hashtag = ?", text).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// ListPosts 取标签关联的帖子（含作者），顺序为存储默认序
func (r *hashtagRepository) ListPosts(ctx context.Context, hashtagID string) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.db.WithContext(ctx).
		Joins("JOIN post_hashtags ON post_hashtags.post_id = posts.id").
		Where("post_hashtags.hashtag_id = ?", hashtagID).
		Preload("User").
		Find(&posts).Error
	return posts, err
}
