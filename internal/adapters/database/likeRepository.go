package database

import (
	"context"

	"gorm.io/gorm/clause"

	"peyvand/internal/config"
	"peyvand/internal/core/like"
)

// LikeRepositoryDatabase پیاده‌سازی LikeRepository برای دیتابیس
type LikeRepositoryDatabase struct{}

// NewLikeRepositoryDatabase سازنده LikeRepositoryDatabase
func NewLikeRepositoryDatabase() *LikeRepositoryDatabase {
	return &LikeRepositoryDatabase{}
}

// CreateIgnoreConflict درج لایک؛ اگر toggle همزمان دیگری زودتر درج کرده
// باشد، قید یکتای (user_id, post_id) برخورد را بدون خطا جذب می‌کند
func (repo *LikeRepositoryDatabase) CreateIgnoreConflict(ctx context.Context, l *like.Like) error {
	return config.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(l).Error
}

func (repo *LikeRepositoryDatabase) DeleteByUserAndPost(ctx context.Context, userID, postID string) (bool, error) {
	res := config.DB.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&like.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (repo *LikeRepositoryDatabase) Exists(ctx context.Context, userID, postID string) (bool, error) {
	var count int64
	if err := config.DB.WithContext(ctx).Model(&like.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *LikeRepositoryDatabase) ListByUserID(ctx context.Context, userID string) ([]*like.Like, error) {
	var likes []*like.Like
	err := config.DB.WithContext(ctx).
		Preload("Post").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	return likes, nil
}
