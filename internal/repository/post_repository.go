package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/post-service/internal/model"
)

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetWithAuthor(ctx context.Context, id string) (*model.Post, error)
	GetLike(ctx context.Context, id string) (int64, error)
	SetLike(ctx context.Context, id string, like int64) error
	UpdateContent(ctx context.Context, id, content string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	AppendHashtags(ctx context.Context, post *model.Post, tags []*model.Hashtag) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetWithAuthor(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetLike(ctx context.Context, id string) (int64, error) {
	var post model.Post
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error
	if err != nil {
		return 0, err
	}
	return post.Like, nil
}

// SetLike 整值回写，不做原子自增（读-改-写，见 service.LikePost 的说明）
func (r *postRepository) SetLike(ctx context.Context, id string, like int64) error {
	return r.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Update("like", like).Error
}

func (r *postRepository) UpdateContent(ctx context.Context, id, content string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Update("content", content)
	return res.RowsAffected, res.Error
}

func (r *postRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{})
	return res.RowsAffected, res.Error
}

func (r *postRepository) AppendHashtags(ctx context.Context, post *model.Post, tags []*model.Hashtag) error {
	if len(tags) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(post).Association("Hashtags").Append(tags)
}
