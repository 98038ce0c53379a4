package postapp

import (
	"context"
	"time"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"peyvand/internal/config"
	"peyvand/internal/core/apperrors"
	"peyvand/internal/core/policy"
	postEntity "peyvand/internal/core/post"
	postPort "peyvand/internal/ports/post"
)

type PostService struct {
	PostRepository postPort.PostRepository
}

func NewPostService(postRepo postPort.PostRepository) *PostService {
	return &PostService{
		PostRepository: postRepo,
	}
}

// CreatePost ایجاد پست؛ مالکیت همیشه به خود actor تحمیل می‌شود
func (s *PostService) CreatePost(ctx context.Context, actor policy.Principal, hashtag, title, content string) (*postPort.PostDTO, error) {
	if !policy.May(actor, policy.ActionCreate, uuid.Nil) {
		return nil, apperrors.ErrUnauthenticated
	}
	if title == "" {
		return nil, apperrors.NewValidation("title is required", "title")
	}
	if hashtag == "" {
		return nil, apperrors.NewValidation("hashtag is required", "hashtag")
	}
	if content == "" {
		return nil, apperrors.NewValidation("content is required", "content")
	}

	p := &postEntity.Post{
		ID:        uuid.Must(uuid.NewV4()),
		Hashtag:   hashtag,
		Title:     title,
		Content:   content,
		CreatedBy: actor.ID,
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	config.Logger.Info("📝 post created",
		zap.String("postID", created.ID.String()),
		zap.String("userID", actor.ID.String()))

	// بازخوانی برای داشتن نام کاربری نویسنده در DTO
	full, err := s.PostRepository.FindByID(ctx, created.ID.String())
	if err != nil || full == nil {
		full = created
	}
	dto := s.toDTO(ctx, full)
	return &dto, nil
}

// ListPosts فید کاربر: پست‌های خودش و دنبال‌شونده‌ها، جدیدترین اول.
// قاعده‌ی visibility قبل از فیلترهای hashtag/username اعمال می‌شود.
func (s *PostService) ListPosts(ctx context.Context, actor policy.Principal, filters postPort.Filters) ([]*postPort.PostDTO, error) {
	if !policy.May(actor, policy.ActionRead, uuid.Nil) {
		return nil, apperrors.ErrUnauthenticated
	}

	posts, err := s.PostRepository.VisibleFeed(ctx, actor.ID.String(), filters)
	if err != nil {
		return nil, err
	}

	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dto := s.toDTO(ctx, p)
		dtos = append(dtos, &dto)
	}
	return dtos, nil
}

// GetPost جزئیات پست؛ پست نامرئی از پست ناموجود قابل تشخیص نیست
func (s *PostService) GetPost(ctx context.Context, actor policy.Principal, id string) (*postPort.PostDTO, error) {
	if !policy.May(actor, policy.ActionRead, uuid.Nil) {
		return nil, apperrors.ErrUnauthenticated
	}

	p, err := s.PostRepository.FindVisibleByID(ctx, actor.ID.String(), id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.ErrNotFound
	}

	dto := s.toDTO(ctx, p)
	return &dto, nil
}

// PostUpdate فیلدهای قابل ویرایش پست؛ CreatedAt هیچ‌وقت عوض نمی‌شود
type PostUpdate struct {
	Hashtag *string
	Title   *string
	Content *string
}

// UpdatePost فقط مالک پست
func (s *PostService) UpdatePost(ctx context.Context, actor policy.Principal, id string, upd PostUpdate) (*postPort.PostDTO, error) {
	p, err := s.ownedPost(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if upd.Hashtag != nil {
		if *upd.Hashtag == "" {
			return nil, apperrors.NewValidation("hashtag is required", "hashtag")
		}
		p.Hashtag = *upd.Hashtag
	}
	if upd.Title != nil {
		if *upd.Title == "" {
			return nil, apperrors.NewValidation("title is required", "title")
		}
		p.Title = *upd.Title
	}
	if upd.Content != nil {
		if *upd.Content == "" {
			return nil, apperrors.NewValidation("content is required", "content")
		}
		p.Content = *upd.Content
	}

	if err := s.PostRepository.Update(ctx, p); err != nil {
		return nil, err
	}
	dto := s.toDTO(ctx, p)
	return &dto, nil
}

// DeletePost فقط مالک پست؛ کامنت‌ها و لایک‌ها هم حذف می‌شوند
func (s *PostService) DeletePost(ctx context.Context, actor policy.Principal, id string) error {
	if _, err := s.ownedPost(ctx, actor, id); err != nil {
		return err
	}
	return s.PostRepository.DeleteCascade(ctx, id)
}

// UpdateImage ثبت مسیر تصویر پست (فقط مالک)
func (s *PostService) UpdateImage(ctx context.Context, actor policy.Principal, id, path string) error {
	p, err := s.ownedPost(ctx, actor, id)
	if err != nil {
		return err
	}
	p.Image = path
	return s.PostRepository.Update(ctx, p)
}

// ownedPost پست مرئی که مالکش actor باشد؛ نامرئی -> NotFound، غیرمالک -> Permission
func (s *PostService) ownedPost(ctx context.Context, actor policy.Principal, id string) (*postEntity.Post, error) {
	if !actor.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}

	p, err := s.PostRepository.FindVisibleByID(ctx, actor.ID.String(), id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.ErrNotFound
	}
	if !policy.May(actor, policy.ActionUpdate, p.CreatedBy) {
		return nil, apperrors.ErrPermission
	}
	return p, nil
}

// toDTO ساخت DTO با شمارش زنده‌ی کامنت و لایک
func (s *PostService) toDTO(ctx context.Context, p *postEntity.Post) postPort.PostDTO {
	comments, _ := s.PostRepository.CountComments(ctx, p.ID.String())
	likes, _ := s.PostRepository.CountLikes(ctx, p.ID.String())

	return postPort.PostDTO{
		ID:            p.ID.String(),
		Hashtag:       p.Hashtag,
		Title:         p.Title,
		Content:       p.Content,
		Image:         p.Image,
		CreatedBy:     p.User.Username,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		CommentsCount: comments,
		LikesCount:    likes,
	}
}
