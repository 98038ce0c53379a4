package auth

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
)

const (
	KindAccess  = "access"
	KindRefresh = "refresh"

	AccessTTL  = 24 * time.Hour
	RefreshTTL = 7 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

// Claims ادعاهای توکن؛ kind نوع توکن را مشخص می‌کند
type Claims struct {
	jwt.StandardClaims
	Kind  string `json:"kind"`
	Staff bool   `json:"staff,omitempty"`
}

// Generate تولید توکن امضاشده با HS256
func Generate(userID string, staff bool, kind string, ttl time.Duration, key []byte) (string, error) {
	claims := &Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   userID,
			Issuer:    "peyvand",
			Id:        uuid.Must(uuid.NewV4()).String(),
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(ttl).Unix(),
		},
		Kind:  kind,
		Staff: staff,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// Parse اعتبارسنجی امضا و انقضا؛ خروجی claims توکن
func Parse(tokenStr string, key []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return key, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Remaining عمر باقی‌مانده‌ی توکن (برای TTL لیست سیاه)
func (c *Claims) Remaining() time.Duration {
	return time.Until(time.Unix(c.ExpiresAt, 0))
}
