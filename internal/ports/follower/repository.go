package follower

import (
	"context"

	"peyvand/internal/core/follower"
)

// FollowerRepository پورت برای ذخیره‌سازی و بازیابی دنبال‌کنندگان
type FollowerRepository interface {
	// Follow ثبت رابطه؛ در صورت تکراری بودن بدون خطا نادیده گرفته می‌شود
	Follow(ctx context.Context, follower *follower.Follower) error
	Unfollow(ctx context.Context, followerID, followeeID string) error
	GetFollowersByUserID(ctx context.Context, userID string) ([]*follower.Follower, error)
	GetFollowingByUserID(ctx context.Context, followerID string) ([]*follower.Follower, error)
	IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error)
	CountFollowers(ctx context.Context, userID string) (int64, error)
	CountFollowing(ctx context.Context, followerID string) (int64, error)
}

// DTOها برای UseCase
type FollowerDTO struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	FollowerID string `json:"followerId"`
	Username   string `json:"username,omitempty"`
}
