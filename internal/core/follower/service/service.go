package followerapp

import (
	"context"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"peyvand/internal/config"
	"peyvand/internal/core/apperrors"
	followerEntity "peyvand/internal/core/follower"
	"peyvand/internal/core/policy"
	followerPort "peyvand/internal/ports/follower"
	userPort "peyvand/internal/ports/user"
)

type FollowerService struct {
	FollowerRepository followerPort.FollowerRepository
	UserRepository     userPort.UserRepository
}

func NewFollowerService(repo followerPort.FollowerRepository, userRepo userPort.UserRepository) *FollowerService {
	return &FollowerService{
		FollowerRepository: repo,
		UserRepository:     userRepo,
	}
}

// FollowUser دنبال کردن؛ self-follow و فالوی تکراری بی‌اثرند
func (s *FollowerService) FollowUser(ctx context.Context, actor policy.Principal, targetID string) error {
	if !policy.May(actor, policy.ActionEngage, uuid.Nil) {
		return apperrors.ErrUnauthenticated
	}
	if actor.ID.String() == targetID {
		config.Logger.Warn("⚠️ self-follow ignored", zap.String("userID", targetID))
		return nil
	}

	target, err := s.UserRepository.FindByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return apperrors.ErrNotFound
	}

	f := &followerEntity.Follower{
		ID:         uuid.Must(uuid.NewV4()),
		UserID:     target.ID,
		FollowerID: actor.ID,
	}
	return s.FollowerRepository.Follow(ctx, f)
}

// UnfollowUser لغو دنبال کردن؛ اگر رابطه‌ای نباشد بی‌اثر است
func (s *FollowerService) UnfollowUser(ctx context.Context, actor policy.Principal, targetID string) error {
	if !policy.May(actor, policy.ActionEngage, uuid.Nil) {
		return apperrors.ErrUnauthenticated
	}
	if actor.ID.String() == targetID {
		return nil
	}

	target, err := s.UserRepository.FindByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return apperrors.ErrNotFound
	}

	return s.FollowerRepository.Unfollow(ctx, actor.ID.String(), targetID)
}

func (s *FollowerService) GetFollowersByUserID(ctx context.Context, userID string) ([]*followerPort.FollowerDTO, error) {
	followers, err := s.FollowerRepository.GetFollowersByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dtos := make([]*followerPort.FollowerDTO, 0, len(followers))
	for _, f := range followers {
		dtos = append(dtos, &followerPort.FollowerDTO{
			ID:         f.ID.String(),
			UserID:     f.UserID.String(),
			FollowerID: f.FollowerID.String(),
			Username:   f.Follower.Username,
		})
	}
	return dtos, nil
}

func (s *FollowerService) GetFollowingByUserID(ctx context.Context, userID string) ([]*followerPort.FollowerDTO, error) {
	following, err := s.FollowerRepository.GetFollowingByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dtos := make([]*followerPort.FollowerDTO, 0, len(following))
	for _, f := range following {
		dtos = append(dtos, &followerPort.FollowerDTO{
			ID:         f.ID.String(),
			UserID:     f.UserID.String(),
			FollowerID: f.FollowerID.String(),
			Username:   f.User.Username,
		})
	}
	return dtos, nil
}

func (s *FollowerService) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	return s.FollowerRepository.IsFollowing(ctx, followerID, followeeID)
}

// FollowersCount شمارش زنده، جایی ذخیره نمی‌شود
func (s *FollowerService) FollowersCount(ctx context.Context, userID string) (int64, error) {
	return s.FollowerRepository.CountFollowers(ctx, userID)
}

func (s *FollowerService) FollowingsCount(ctx context.Context, userID string) (int64, error) {
	return s.FollowerRepository.CountFollowing(ctx, userID)
}
