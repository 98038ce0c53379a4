package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"peyvand/internal/config"
	"peyvand/internal/core/comment"
)

// CommentRepositoryDatabase پیاده‌سازی CommentRepository برای دیتابیس
type CommentRepositoryDatabase struct{}

// NewCommentRepositoryDatabase سازنده CommentRepositoryDatabase
func NewCommentRepositoryDatabase() *CommentRepositoryDatabase {
	return &CommentRepositoryDatabase{}
}

func (repo *CommentRepositoryDatabase) Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	if err := config.DB.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (repo *CommentRepositoryDatabase) FindByID(ctx context.Context, id string) (*comment.Comment, error) {
	var c comment.Comment
	if err := config.DB.WithContext(ctx).Preload("Post").Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (repo *CommentRepositoryDatabase) ListByUserID(ctx context.Context, userID string) ([]*comment.Comment, error) {
	var comments []*comment.Comment
	err := config.DB.WithContext(ctx).
		Preload("Post").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (repo *CommentRepositoryDatabase) Update(ctx context.Context, c *comment.Comment) error {
	return config.DB.WithContext(ctx).Save(c).Error
}

func (repo *CommentRepositoryDatabase) Delete(ctx context.Context, id string) error {
	return config.DB.WithContext(ctx).Where("id = ?", id).Delete(&comment.Comment{}).Error
}
