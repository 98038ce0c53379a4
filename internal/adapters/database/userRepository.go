package database

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"peyvand/internal/config"
	"peyvand/internal/core/comment"
	"peyvand/internal/core/follower"
	"peyvand/internal/core/like"
	"peyvand/internal/core/post"
	"peyvand/internal/core/user"
)

// UserRepositoryDatabase پیاده‌سازی UserRepository برای دیتابیس
type UserRepositoryDatabase struct{}

// NewUserRepositoryDatabase سازنده UserRepositoryDatabase
func NewUserRepositoryDatabase() *UserRepositoryDatabase {
	return &UserRepositoryDatabase{}
}

func (repo *UserRepositoryDatabase) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if err := config.DB.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// FindByID در صورت نبودن رکورد (nil, nil) برمی‌گرداند
func (repo *UserRepositoryDatabase) FindByID(ctx context.Context, id string) (*user.User, error) {
	var u user.User
	if err := config.DB.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	if err := config.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	var u user.User
	if err := config.DB.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByEmailOrUsername(ctx context.Context, email, username string) (*user.User, error) {
	var u user.User
	if err := config.DB.WithContext(ctx).Where("email = ? OR username = ?", email, username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// Search فیلتر زیررشته‌ای بدون حساسیت به حروف روی ایمیل و نام کاربری
func (repo *UserRepositoryDatabase) Search(ctx context.Context, emailPart, usernamePart string) ([]*user.User, error) {
	q := config.DB.WithContext(ctx).Model(&user.User{})
	if emailPart != "" {
		q = q.Where("LOWER(email) LIKE ?", "%"+strings.ToLower(emailPart)+"%")
	}
	if usernamePart != "" {
		q = q.Where("LOWER(username) LIKE ?", "%"+strings.ToLower(usernamePart)+"%")
	}

	var users []*user.User
	if err := q.Order("first_name").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *UserRepositoryDatabase) Update(ctx context.Context, u *user.User) (*user.User, error) {
	if err := config.DB.WithContext(ctx).Save(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteCascade حذف کاربر و همه‌ی داده‌های وابسته در یک تراکنش.
// cascade در سطح دیتابیس driver-dependent است، پس اینجا صریح انجام می‌شود.
func (repo *UserRepositoryDatabase) DeleteCascade(ctx context.Context, id string) error {
	return config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ownPosts := tx.Model(&post.Post{}).Select("id").Where("created_by = ?", id)

		// اول وابسته‌های پست‌های کاربر
		if err := tx.Where("post_id IN (?)", ownPosts).Delete(&like.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id IN (?)", ownPosts).Delete(&comment.Comment{}).Error; err != nil {
			return err
		}
		// بعد رد پای خود کاربر روی پست‌های دیگران
		if err := tx.Where("user_id = ?", id).Delete(&like.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&comment.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("created_by = ?", id).Delete(&post.Post{}).Error; err != nil {
			return err
		}
		// هر دو سمت رابطه‌ی فالو
		if err := tx.Where("user_id = ? OR follower_id = ?", id, id).Delete(&follower.Follower{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&user.User{}).Error
	})
}
