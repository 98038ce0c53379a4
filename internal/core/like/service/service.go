package likeapp

import (
	"context"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"peyvand/internal/config"
	"peyvand/internal/core/apperrors"
	likeEntity "peyvand/internal/core/like"
	"peyvand/internal/core/policy"
	likePort "peyvand/internal/ports/like"
	postPort "peyvand/internal/ports/post"
)

type LikeService struct {
	LikeRepository likePort.LikeRepository
	PostRepository postPort.PostRepository
}

func NewLikeService(likeRepo likePort.LikeRepository, postRepo postPort.PostRepository) *LikeService {
	return &LikeService{
		LikeRepository: likeRepo,
		PostRepository: postRepo,
	}
}

// ToggleLike دو حالت بیشتر ندارد: liked و not-liked.
// رکورد موجود حذف می‌شود (آنلایک)، وگرنه درج می‌شود (لایک).
// درج از مسیر ignore-conflict می‌رود تا toggle همزمان همان کاربر
// هیچ‌وقت دو رکورد نسازد و خطای تکراری هم بالا نیاید.
func (s *LikeService) ToggleLike(ctx context.Context, actor policy.Principal, postID string) (bool, error) {
	if !policy.May(actor, policy.ActionEngage, uuid.Nil) {
		return false, apperrors.ErrUnauthenticated
	}

	p, err := s.PostRepository.FindVisibleByID(ctx, actor.ID.String(), postID)
	if err != nil {
		return false, err
	}
	if p == nil {
		return false, apperrors.ErrNotFound
	}

	removed, err := s.LikeRepository.DeleteByUserAndPost(ctx, actor.ID.String(), postID)
	if err != nil {
		return false, err
	}
	if removed {
		config.Logger.Info("post unliked",
			zap.String("postID", postID), zap.String("userID", actor.ID.String()))
		return false, nil
	}

	l := &likeEntity.Like{
		ID:      uuid.Must(uuid.NewV4()),
		PostID:  p.ID,
		UserID:  actor.ID,
		IsLiked: true,
	}
	if err := s.LikeRepository.CreateIgnoreConflict(ctx, l); err != nil {
		return false, err
	}
	config.Logger.Info("post liked",
		zap.String("postID", postID), zap.String("userID", actor.ID.String()))
	return true, nil
}

// ListMyLikes لایک‌های خود کاربر به همراه پست مربوطه
func (s *LikeService) ListMyLikes(ctx context.Context, actor policy.Principal) ([]*likePort.LikeDTO, error) {
	if !actor.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}

	likes, err := s.LikeRepository.ListByUserID(ctx, actor.ID.String())
	if err != nil {
		return nil, err
	}

	dtos := make([]*likePort.LikeDTO, 0, len(likes))
	for _, l := range likes {
		dtos = append(dtos, &likePort.LikeDTO{
			ID:        l.ID.String(),
			PostID:    l.PostID.String(),
			PostTitle: l.Post.Title,
			IsLiked:   l.IsLiked,
		})
	}
	return dtos, nil
}

// IsLiked وضعیت لایک یک پست برای کاربر
func (s *LikeService) IsLiked(ctx context.Context, actor policy.Principal, postID string) (bool, error) {
	if !actor.Authenticated() {
		return false, apperrors.ErrUnauthenticated
	}
	return s.LikeRepository.Exists(ctx, actor.ID.String(), postID)
}
