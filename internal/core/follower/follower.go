package follower

import (
	"time"

	"github.com/gofrs/uuid"

	"peyvand/internal/core/user"
)

// Follower رابطه‌ی دنبال کردن: FollowerID کاربر UserID را دنبال می‌کند
type Follower struct {
	ID         uuid.UUID `gorm:"primary_key;type:char(36)"`
	UserID     uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_user_follower"`
	User       user.User `gorm:"foreignkey:UserID"`
	FollowerID uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_user_follower"`
	Follower   user.User `gorm:"foreignkey:FollowerID"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}
