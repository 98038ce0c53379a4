package commentapp

import (
	"context"
	"time"

	"github.com/gofrs/uuid"

	"peyvand/internal/core/apperrors"
	commentEntity "peyvand/internal/core/comment"
	"peyvand/internal/core/policy"
	commentPort "peyvand/internal/ports/comment"
	postPort "peyvand/internal/ports/post"
)

type CommentService struct {
	CommentRepository commentPort.CommentRepository
	PostRepository    postPort.PostRepository
}

func NewCommentService(commentRepo commentPort.CommentRepository, postRepo postPort.PostRepository) *CommentService {
	return &CommentService{
		CommentRepository: commentRepo,
		PostRepository:    postRepo,
	}
}

// AddComment افزودن کامنت روی پست مرئی؛ مالکیت پست شرط نیست
func (s *CommentService) AddComment(ctx context.Context, actor policy.Principal, postID, content string) error {
	if !policy.May(actor, policy.ActionEngage, uuid.Nil) {
		return apperrors.ErrUnauthenticated
	}
	if content == "" {
		return apperrors.NewValidation("content is required", "content")
	}

	p, err := s.PostRepository.FindVisibleByID(ctx, actor.ID.String(), postID)
	if err != nil {
		return err
	}
	if p == nil {
		return apperrors.ErrNotFound
	}

	c := &commentEntity.Comment{
		ID:      uuid.Must(uuid.NewV4()),
		PostID:  p.ID,
		UserID:  actor.ID,
		Content: content,
	}
	_, err = s.CommentRepository.Create(ctx, c)
	return err
}

// ListMyComments کامنت‌های خود کاربر، جدیدترین اول
func (s *CommentService) ListMyComments(ctx context.Context, actor policy.Principal) ([]*commentPort.CommentDTO, error) {
	if !actor.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}

	comments, err := s.CommentRepository.ListByUserID(ctx, actor.ID.String())
	if err != nil {
		return nil, err
	}

	dtos := make([]*commentPort.CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, toDTO(c))
	}
	return dtos, nil
}

// GetComment فقط کامنت‌های خود کاربر؛ بقیه NotFound
func (s *CommentService) GetComment(ctx context.Context, actor policy.Principal, id string) (*commentPort.CommentDTO, error) {
	c, err := s.ownComment(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

// UpdateComment مالکیت خود کامنت ملاک است، نه مالکیت پست
func (s *CommentService) UpdateComment(ctx context.Context, actor policy.Principal, id, content string) (*commentPort.CommentDTO, error) {
	if content == "" {
		return nil, apperrors.NewValidation("content is required", "content")
	}

	c, err := s.ownComment(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	c.Content = content
	if err := s.CommentRepository.Update(ctx, c); err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (s *CommentService) DeleteComment(ctx context.Context, actor policy.Principal, id string) error {
	c, err := s.ownComment(ctx, actor, id)
	if err != nil {
		return err
	}
	return s.CommentRepository.Delete(ctx, c.ID.String())
}

// ownComment کامنت متعلق به actor؛ کامنت دیگران مثل ناموجود رفتار می‌شود
func (s *CommentService) ownComment(ctx context.Context, actor policy.Principal, id string) (*commentEntity.Comment, error) {
	if !actor.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}

	c, err := s.CommentRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.ErrNotFound
	}
	if !policy.May(actor, policy.ActionUpdate, c.UserID) {
		return nil, apperrors.ErrPermission
	}
	return c, nil
}

func toDTO(c *commentEntity.Comment) *commentPort.CommentDTO {
	return &commentPort.CommentDTO{
		ID:        c.ID.String(),
		PostID:    c.PostID.String(),
		PostTitle: c.Post.Title,
		Content:   c.Content,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
