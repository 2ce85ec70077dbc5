// internals/features/users/auth/service/otp_service.go
package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"musicschool_backend/internals/configs"
)

const (
	otpLifetime      = 5 * time.Minute
	verifiedLifetime = 10 * time.Minute
)

var (
	ErrOTPExpired  = errors.New("otp expired or not requested")
	ErrOTPMismatch = errors.New("otp does not match")
	ErrOTPUnproven = errors.New("otp has not been verified")
)

// Redis backs the OTP store. Codes live for five minutes and are deleted on
// first successful verification.
var Redis *redis.Client

func InitRedis(ctx context.Context) error {
	Redis = redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})
	if err := Redis.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	log.Println("[INFO] Connected to Redis at", configs.RedisAddr)
	return nil
}

func otpKey(username string) string      { return "otp:" + username }
func verifiedKey(username string) string { return "otp:" + username + ":verified" }

// GenerateOTP returns a fresh 6-digit code.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// StoreOTP saves the code under the username, replacing any previous one.
func StoreOTP(ctx context.Context, username, code string) error {
	return Redis.Set(ctx, otpKey(username), code, otpLifetime).Err()
}

// VerifyOTP consumes the stored code and marks the username as verified so
// the password update that follows can be authorized.
func VerifyOTP(ctx context.Context, username, code string) error {
	stored, err := Redis.Get(ctx, otpKey(username)).Result()
	if errors.Is(err, redis.Nil) {
		return ErrOTPExpired
	}
	if err != nil {
		return err
	}
	if stored != code {
		return ErrOTPMismatch
	}
	if err := Redis.Del(ctx, otpKey(username)).Err(); err != nil {
		return err
	}
	return Redis.Set(ctx, verifiedKey(username), "1", verifiedLifetime).Err()
}

// ConsumeVerified checks and clears the verified flag set by VerifyOTP.
func ConsumeVerified(ctx context.Context, username string) error {
	_, err := Redis.Get(ctx, verifiedKey(username)).Result()
	if errors.Is(err, redis.Nil) {
		return ErrOTPUnproven
	}
	if err != nil {
		return err
	}
	return Redis.Del(ctx, verifiedKey(username)).Err()
}
