// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"musicschool_backend/internals/configs"
	authModel "musicschool_backend/internals/features/users/auth/model"
	helperAuth "musicschool_backend/internals/helpers/auth"
)

const TokenLifetime = 4 * time.Hour

var ErrMissingJWTSecret = errors.New("JWT secret is not configured")

// SignToken issues the session token: the user's business code plus the role
// tag, expiring after TokenLifetime.
func SignToken(userCode, role string) (string, error) {
	if configs.JWTSecret == "" {
		return "", ErrMissingJWTSecret
	}
	now := time.Now()
	claims := jwt.MapClaims{
		helperAuth.LocUserCode: userCode,
		helperAuth.LocRole:     role,
		"iat":                  now.Unix(),
		"exp":                  now.Add(TokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// BlacklistToken stores the raw token so the auth middleware rejects it for
// the remainder of its lifetime. Expiry falls back to now+TokenLifetime when
// the token cannot be decoded.
func BlacklistToken(db *gorm.DB, rawToken string) error {
	expiredAt := time.Now().Add(TokenLifetime)

	parsed, _, err := jwt.NewParser().ParseUnverified(rawToken, jwt.MapClaims{})
	if err == nil {
		if claims, ok := parsed.Claims.(jwt.MapClaims); ok {
			if exp, ok := claims["exp"].(float64); ok {
				expiredAt = time.Unix(int64(exp), 0)
			}
		}
	}

	entry := authModel.TokenBlacklist{
		Token:     rawToken,
		ExpiredAt: expiredAt,
	}
	return db.Create(&entry).Error
}
