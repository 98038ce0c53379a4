package policy

import "github.com/gofrs/uuid"

// Principal هویت حل‌شده‌ی درخواست؛ صفر بودن ID یعنی ناشناس
type Principal struct {
	ID      uuid.UUID
	IsStaff bool
}

var Anonymous = Principal{}

func (p Principal) Authenticated() bool {
	return p.ID != uuid.Nil
}

type Action int

const (
	// ActionRead خواندن لیست یا جزئیات
	ActionRead Action = iota + 1
	// ActionCreate ساخت منبع جدید (مالکیت به خود کاربر تحمیل می‌شود)
	ActionCreate
	// ActionUpdate ویرایش منبع موجود
	ActionUpdate
	// ActionDelete حذف منبع موجود
	ActionDelete
	// ActionEngage فالو/آنفالو/لایک/کامنت
	ActionEngage
)

// May قاعده‌ی دسترسی برای هر عملیات.
// برای Update و Delete مالکیت شیء حرف آخر را می‌زند و staff هم
// دور زدنش نمی‌تواند؛ staff فقط گیت خواندن/نوشتن کلی را رد می‌کند.
func May(p Principal, action Action, ownerID uuid.UUID) bool {
	switch action {
	case ActionRead:
		return p.Authenticated() || p.IsStaff
	case ActionCreate, ActionEngage:
		return p.Authenticated()
	case ActionUpdate, ActionDelete:
		return p.Authenticated() && p.ID == ownerID
	default:
		return false
	}
}

// MayAdminUser حذف حساب کاربری: خود کاربر یا staff
func MayAdminUser(p Principal, targetID uuid.UUID) bool {
	if !p.Authenticated() {
		return false
	}
	return p.IsStaff || p.ID == targetID
}
