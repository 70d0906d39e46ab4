package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/post-service/internal/model"
)

type CommentRepository interface {
	ListByPost(ctx context.Context, postID string) ([]*model.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

func (r *commentRepository) ListByPost(ctx context.Context, postID string) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.WithContext(ctx).Preload("User").Where("post_id = ?", postID).Find(&comments).Error
	return comments, err
}
