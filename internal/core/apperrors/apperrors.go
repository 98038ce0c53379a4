package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// خطاهای پایه‌ی دامنه
var (
	// ErrNotFound منبع وجود ندارد یا برای کاربر قابل مشاهده نیست
	ErrNotFound = errors.New("not found")
	// ErrPermission کاربر احراز شده ولی مجاز به این عملیات نیست
	ErrPermission = errors.New("permission denied")
	// ErrConflict برخورد با قید یکتایی
	ErrConflict = errors.New("conflict")
	// ErrUnauthenticated کاربر احراز نشده است
	ErrUnauthenticated = errors.New("authentication required")
)

// ValidationError ورودی نامعتبر به همراه نام فیلدهای خطادار
type ValidationError struct {
	Fields []string
	Msg    string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", strings.Join(e.Fields, ", "), e.Msg)
}

func NewValidation(msg string, fields ...string) error {
	return &ValidationError{Fields: fields, Msg: msg}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
