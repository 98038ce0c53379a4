package post

import (
	"time"

	"github.com/gofrs/uuid"

	"peyvand/internal/core/user"
)

type Post struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	Hashtag   string    `gorm:"type:varchar(63);not null"`
	Title     string    `gorm:"type:varchar(63);not null"`
	Content   string    `gorm:"type:text;not null"`
	Image     string    `gorm:"type:varchar(255)"`
	CreatedBy uuid.UUID `gorm:"type:char(36);not null;index"`
	User      user.User `gorm:"foreignkey:CreatedBy"` // ارتباط با مدل User
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
