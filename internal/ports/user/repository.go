package user

import (
	"context"

	"peyvand/internal/core/user"
)

// UserRepository پورت برای ذخیره‌سازی و بازیابی کاربران
type UserRepository interface {
	Create(ctx context.Context, user *user.User) (*user.User, error)
	FindByID(ctx context.Context, id string) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	FindByEmailOrUsername(ctx context.Context, email, username string) (*user.User, error)
	Search(ctx context.Context, emailPart, usernamePart string) ([]*user.User, error)
	Update(ctx context.Context, user *user.User) (*user.User, error)
	// DeleteCascade حذف کاربر به همراه پست‌ها، کامنت‌ها، لایک‌ها و روابط فالو
	DeleteCascade(ctx context.Context, id string) error
}

// DTOها برای UseCase
type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresAt    int64  `json:"expiresAt"`
}

type UserDTO struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	Username        string `json:"username"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Bio             string `json:"bio,omitempty"`
	Image           string `json:"image,omitempty"`
	IsStaff         bool   `json:"isStaff"`
	FollowersCount  int64  `json:"followersCount"`
	FollowingsCount int64  `json:"followingsCount"`
}

type UserDetailDTO struct {
	UserDTO
	Followers []string `json:"followers"`
	Follows   []string `json:"follows"`
}
