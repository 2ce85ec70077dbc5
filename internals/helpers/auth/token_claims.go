// file: internals/helpers/auth/token_claims.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ============================================
   Locals keys (set by the auth middleware)
   ============================================ */

const (
	LocUserCode = "sp_user_id" // business code (student/instructor) or admin username
	LocRole     = "type"       // admin | instructor | student
)

var ErrNoUserInToken = errors.New("no user identity in token")

// GetUserCodeFromToken returns the business identifier the middleware decoded
// from the bearer token: student code, instructor code, or admin username.
func GetUserCodeFromToken(c *fiber.Ctx) (string, error) {
	code, _ := c.Locals(LocUserCode).(string)
	if strings.TrimSpace(code) == "" {
		return "", ErrNoUserInToken
	}
	return code, nil
}

// GetRoleFromToken returns the role tag carried by the token.
func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	role, _ := c.Locals(LocRole).(string)
	if strings.TrimSpace(role) == "" {
		return "", ErrNoUserInToken
	}
	return role, nil
}
