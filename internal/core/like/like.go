package like

import (
	"time"

	"github.com/gofrs/uuid"

	"peyvand/internal/core/post"
	"peyvand/internal/core/user"
)

// Like وجود رکورد یعنی «لایک شده»؛ آنلایک با حذف رکورد انجام می‌شود
type Like struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	PostID    uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_user_post"`
	Post      post.Post `gorm:"foreignkey:PostID"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_user_post"`
	User      user.User `gorm:"foreignkey:UserID"`
	IsLiked   bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
