package database

import (
	"context"

	"gorm.io/gorm/clause"

	"peyvand/internal/config"
	"peyvand/internal/core/follower"
)

// FollowerRepositoryDatabase پیاده‌سازی FollowerRepository برای دیتابیس
type FollowerRepositoryDatabase struct{}

// NewFollowerRepositoryDatabase سازنده FollowerRepositoryDatabase
func NewFollowerRepositoryDatabase() *FollowerRepositoryDatabase {
	return &FollowerRepositoryDatabase{}
}

// Follow ثبت رابطه؛ تکرار به لطف قید یکتای (user_id, follower_id) بی‌اثر است
func (repo *FollowerRepositoryDatabase) Follow(ctx context.Context, f *follower.Follower) error {
	return config.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(f).Error
}

func (repo *FollowerRepositoryDatabase) Unfollow(ctx context.Context, followerID, followeeID string) error {
	return config.DB.WithContext(ctx).
		Where("follower_id = ? AND user_id = ?", followerID, followeeID).
		Delete(&follower.Follower{}).Error
}

func (repo *FollowerRepositoryDatabase) GetFollowersByUserID(ctx context.Context, userID string) ([]*follower.Follower, error) {
	var followers []*follower.Follower
	if err := config.DB.WithContext(ctx).Preload("Follower").Where("user_id = ?", userID).Find(&followers).Error; err != nil {
		return nil, err
	}
	return followers, nil
}

func (repo *FollowerRepositoryDatabase) GetFollowingByUserID(ctx context.Context, followerID string) ([]*follower.Follower, error) {
	var following []*follower.Follower
	if err := config.DB.WithContext(ctx).Preload("User").Where("follower_id = ?", followerID).Find(&following).Error; err != nil {
		return nil, err
	}
	return following, nil
}

func (repo *FollowerRepositoryDatabase) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	var count int64
	if err := config.DB.WithContext(ctx).Model(&follower.Follower{}).
		Where("follower_id = ? AND user_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *FollowerRepositoryDatabase) CountFollowers(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := config.DB.WithContext(ctx).Model(&follower.Follower{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (repo *FollowerRepositoryDatabase) CountFollowing(ctx context.Context, followerID string) (int64, error) {
	var count int64
	err := config.DB.WithContext(ctx).Model(&follower.Follower{}).Where("follower_id = ?", followerID).Count(&count).Error
	return count, err
}
