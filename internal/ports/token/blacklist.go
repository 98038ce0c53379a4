package token

import (
	"context"
	"time"
)

// Blacklist لیست سیاه توکن‌های باطل‌شده (خروج کاربر)
type Blacklist interface {
	// Add ثبت jti با عمر باقی‌مانده‌ی توکن
	Add(ctx context.Context, jti string, ttl time.Duration) error
	Contains(ctx context.Context, jti string) (bool, error)
}
