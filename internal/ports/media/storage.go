package media

import (
	"context"
	"io"
)

// Storage پورت ذخیره‌ی فایل‌های رسانه‌ای (تصویر پروفایل و پست)
type Storage interface {
	// Save نوشتن محتوا و برگرداندن مسیر پایدار
	// uploads/<category>/<slug(name)>-<uuid><ext>
	Save(ctx context.Context, category, name, ext string, r io.Reader) (string, error)
}
