package post

import (
	"context"

	"peyvand/internal/core/post"
)

// Filters فیلترهای اختیاری لیست پست‌ها
type Filters struct {
	// Hashtag تطبیق زیررشته‌ای بدون حساسیت به حروف
	Hashtag string
	// Username تطبیق دقیق نام کاربری نویسنده
	Username string
}

// PostRepository پورت برای ذخیره‌سازی و بازیابی پست‌ها
type PostRepository interface {
	Create(ctx context.Context, post *post.Post) (*post.Post, error)
	// FindByID بدون قاعده‌ی visibility؛ فقط برای مسیرهای داخلی
	FindByID(ctx context.Context, id string) (*post.Post, error)
	// FindVisibleByID فقط وقتی پست برای requester قابل مشاهده باشد
	FindVisibleByID(ctx context.Context, requesterID, id string) (*post.Post, error)
	// VisibleFeed پست‌های خود کاربر و کاربرانی که دنبال می‌کند، جدیدترین اول
	VisibleFeed(ctx context.Context, requesterID string, filters Filters) ([]*post.Post, error)
	Update(ctx context.Context, post *post.Post) error
	// DeleteCascade حذف پست به همراه کامنت‌ها و لایک‌هایش
	DeleteCascade(ctx context.Context, id string) error
	CountComments(ctx context.Context, postID string) (int64, error)
	CountLikes(ctx context.Context, postID string) (int64, error)
}

// DTOها برای UseCase
type PostDTO struct {
	ID            string `json:"id"`
	Hashtag       string `json:"hashtag"`
	Title         string `json:"title"`
	Content       string `json:"content,omitempty"`
	Image         string `json:"image,omitempty"`
	CreatedBy     string `json:"created_by"`
	CreatedAt     string `json:"created_at"`
	CommentsCount int64  `json:"comments_count"`
	LikesCount    int64  `json:"likes_count"`
}
