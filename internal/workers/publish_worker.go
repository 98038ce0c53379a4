package workers

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"peyvand/internal/core/policy"
	postapp "peyvand/internal/core/post/service"
	userapp "peyvand/internal/core/user/service"

	"github.com/gofrs/uuid"
)

// PublishWorker انتشار دوره‌ای یک پست آماده برای کاربران پیکربندی‌شده
type PublishWorker struct {
	UserService *userapp.UserService
	PostService *postapp.PostService
	Usernames   []string
	Interval    time.Duration
	Logger      *zap.Logger
}

func NewPublishWorker(
	userSvc *userapp.UserService,
	postSvc *postapp.PostService,
	usernames []string,
	interval time.Duration,
	logger *zap.Logger,
) *PublishWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &PublishWorker{
		UserService: userSvc,
		PostService: postSvc,
		Usernames:   usernames,
		Interval:    interval,
		Logger:      logger,
	}
}

// Run اجرای حلقه‌ی انتشار تا لغو context
func (w *PublishWorker) Run(ctx context.Context) {
	if len(w.Usernames) == 0 {
		w.Logger.Info("publish worker disabled, no usernames configured")
		return
	}

	w.Logger.Info("🚀 PublishWorker started",
		zap.Int("users", len(w.Usernames)),
		zap.Duration("interval", w.Interval))

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Logger.Info("🛑 Publish worker stopped")
			return
		case <-ticker.C:
			for _, username := range w.Usernames {
				w.publishFor(ctx, username)
			}
		}
	}
}

// publishFor ساخت پست آماده برای یک کاربر
func (w *PublishWorker) publishFor(ctx context.Context, username string) {
	u, err := w.UserService.FindByUsername(ctx, username)
	if err != nil {
		w.Logger.Warn("⚠️ publish target not found", zap.String("username", username), zap.Error(err))
		return
	}

	actor := policy.Principal{ID: uuid.FromStringOrNil(u.ID), IsStaff: u.IsStaff}
	title := "New post"
	content := fmt.Sprintf("%s from %s", title, u.Username)

	p, err := w.PostService.CreatePost(ctx, actor, "Scheduled", title, content)
	if err != nil {
		w.Logger.Error("❌ scheduled publish failed", zap.String("username", username), zap.Error(err))
		return
	}
	w.Logger.Info("✅ scheduled post published",
		zap.String("postID", p.ID), zap.String("username", username))
}
