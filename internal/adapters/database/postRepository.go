package database

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"peyvand/internal/config"
	"peyvand/internal/core/comment"
	"peyvand/internal/core/follower"
	"peyvand/internal/core/like"
	"peyvand/internal/core/post"
	postPort "peyvand/internal/ports/post"
)

// PostRepositoryDatabase پیاده‌سازی PostRepository برای دیتابیس
type PostRepositoryDatabase struct{}

// NewPostRepositoryDatabase سازنده PostRepositoryDatabase
func NewPostRepositoryDatabase() *PostRepositoryDatabase {
	return &PostRepositoryDatabase{}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := config.DB.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id string) (*post.Post, error) {
	var p post.Post
	if err := config.DB.WithContext(ctx).Preload("User").Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// visibleScope قاعده‌ی visibility: پست‌های خود کاربر یا کاربرانی که دنبال می‌کند.
// قبل از هر فیلتر دیگری اعمال می‌شود تا وجود پست‌های نامرئی لو نرود.
func visibleScope(ctx context.Context, requesterID string) *gorm.DB {
	followees := config.DB.Model(&follower.Follower{}).
		Select("user_id").
		Where("follower_id = ?", requesterID)

	return config.DB.WithContext(ctx).
		Where("posts.created_by = ? OR posts.created_by IN (?)", requesterID, followees)
}

func (repo *PostRepositoryDatabase) FindVisibleByID(ctx context.Context, requesterID, id string) (*post.Post, error) {
	var p post.Post
	err := visibleScope(ctx, requesterID).
		Preload("User").
		Where("posts.id = ?", id).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) VisibleFeed(ctx context.Context, requesterID string, filters postPort.Filters) ([]*post.Post, error) {
	q := visibleScope(ctx, requesterID).Model(&post.Post{}).Preload("User")

	if filters.Hashtag != "" {
		q = q.Where("LOWER(posts.hashtag) LIKE ?", "%"+strings.ToLower(filters.Hashtag)+"%")
	}
	if filters.Username != "" {
		q = q.Joins("JOIN users ON users.id = posts.created_by").
			Where("users.username = ?", filters.Username)
	}

	var posts []*post.Post
	if err := q.Order("posts.created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) Update(ctx context.Context, p *post.Post) error {
	return config.DB.WithContext(ctx).Save(p).Error
}

// DeleteCascade حذف پست به همراه کامنت‌ها و لایک‌ها در یک تراکنش
func (repo *PostRepositoryDatabase) DeleteCascade(ctx context.Context, id string) error {
	return config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&like.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&comment.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&post.Post{}).Error
	})
}

// CountComments شمارش زنده؛ هیچ‌وقت denormalize نمی‌شود
func (repo *PostRepositoryDatabase) CountComments(ctx context.Context, postID string) (int64, error) {
	var count int64
	err := config.DB.WithContext(ctx).Model(&comment.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (repo *PostRepositoryDatabase) CountLikes(ctx context.Context, postID string) (int64, error) {
	var count int64
	err := config.DB.WithContext(ctx).Model(&like.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
