// internals/features/users/auth/scheduler/cleanup.go
package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "musicschool_backend/internals/features/users/auth/model"
)

// StartTokenCleanup purges expired blacklist rows on an interval so the
// table does not grow without bound.
func StartTokenCleanup(db *gorm.DB, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			res := db.Unscoped().
				Where("expired_at < ?", time.Now()).
				Delete(&authModel.TokenBlacklist{})
			if res.Error != nil {
				log.Printf("[ERROR] token blacklist cleanup: %v", res.Error)
				continue
			}
			if res.RowsAffected > 0 {
				log.Printf("[INFO] token blacklist cleanup removed %d expired tokens", res.RowsAffected)
			}
		}
	}()
}
