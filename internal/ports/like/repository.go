package like

import (
	"context"

	"peyvand/internal/core/like"
)

// LikeRepository پورت برای رابطه‌ی لایک
type LikeRepository interface {
	// CreateIgnoreConflict درج رکورد؛ برخورد با قید یکتای (user, post)
	// بدون خطا نادیده گرفته می‌شود تا toggle همزمان امن بماند
	CreateIgnoreConflict(ctx context.Context, like *like.Like) error
	// DeleteByUserAndPost حذف لایک؛ خروجی true یعنی رکوردی حذف شد
	DeleteByUserAndPost(ctx context.Context, userID, postID string) (bool, error)
	Exists(ctx context.Context, userID, postID string) (bool, error)
	// ListByUserID لایک‌های خود کاربر به همراه پست مربوطه
	ListByUserID(ctx context.Context, userID string) ([]*like.Like, error)
}

// DTOها برای UseCase
type LikeDTO struct {
	ID        string `json:"id"`
	PostID    string `json:"post_id"`
	PostTitle string `json:"post_title,omitempty"`
	IsLiked   bool   `json:"is_liked"`
}
