package comment

import (
	"context"

	"peyvand/internal/core/comment"
)

// CommentRepository پورت برای ذخیره‌سازی و بازیابی کامنت‌ها
type CommentRepository interface {
	Create(ctx context.Context, comment *comment.Comment) (*comment.Comment, error)
	FindByID(ctx context.Context, id string) (*comment.Comment, error)
	// ListByUserID کامنت‌های خود کاربر، جدیدترین اول
	ListByUserID(ctx context.Context, userID string) ([]*comment.Comment, error)
	Update(ctx context.Context, comment *comment.Comment) error
	Delete(ctx context.Context, id string) error
}

// DTOها برای UseCase
type CommentDTO struct {
	ID        string `json:"id"`
	PostID    string `json:"post_id"`
	PostTitle string `json:"post_title,omitempty"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}
