package media

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/uuid"
)

// LocalStorage ذخیره‌ی فایل‌های رسانه‌ای روی دیسک محلی
type LocalStorage struct {
	Root string
}

func NewLocalStorage(root string) *LocalStorage {
	return &LocalStorage{Root: root}
}

// Save نوشتن فایل در uploads/<category>/<slug(name)>-<uuid><ext>
// پسوند تصادفی از برخورد نام‌های تکراری جلوگیری می‌کند
func (s *LocalStorage) Save(ctx context.Context, category, name, ext string, r io.Reader) (string, error) {
	rel := filepath.Join("uploads", category, Slugify(name)+"-"+uuid.Must(uuid.NewV4()).String()+ext)
	abs := filepath.Join(s.Root, rel)

	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(abs)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// Slugify حروف کوچک و هر چیز غیر الفبایی-عددی به یک خط تیره
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteRune('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
