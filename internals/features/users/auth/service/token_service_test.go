// internals/features/users/auth/service/token_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"musicschool_backend/internals/configs"
	helperAuth "musicschool_backend/internals/helpers/auth"
)

func TestSignTokenRoundTrip(t *testing.T) {
	configs.JWTSecret = "test-secret"

	raw, err := SignToken("0007", "instructor")
	if err != nil {
		t.Fatalf("SignToken() error = %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(tok *jwt.Token) (any, error) {
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if !parsed.Valid {
		t.Fatal("token should be valid")
	}
	if got := claims[helperAuth.LocUserCode]; got != "0007" {
		t.Errorf("user code claim = %v, want 0007", got)
	}
	if got := claims[helperAuth.LocRole]; got != "instructor" {
		t.Errorf("role claim = %v, want instructor", got)
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatal("exp claim missing")
	}
	until := time.Until(time.Unix(int64(exp), 0))
	if until < 3*time.Hour+59*time.Minute || until > TokenLifetime {
		t.Errorf("token lifetime = %s, want about %s", until, TokenLifetime)
	}
}

func TestSignTokenRequiresSecret(t *testing.T) {
	configs.JWTSecret = ""
	if _, err := SignToken("0001", "student"); err != ErrMissingJWTSecret {
		t.Errorf("got err %v, want ErrMissingJWTSecret", err)
	}
	configs.JWTSecret = "test-secret"
}
