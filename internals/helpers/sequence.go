// file: internals/helpers/sequence.go
package helper

import (
	"fmt"

	"gorm.io/gorm"
)

// Counter keys for the business-code sequences.
const (
	SeqStudents    = "students"
	SeqInstructors = "instructors"
)

// SequenceCounter backs NextSequenceCode. One row per collection.
type SequenceCounter struct {
	CounterKey   string `gorm:"column:counter_key;type:varchar(40);primaryKey"`
	CounterValue int64  `gorm:"column:counter_value;not null;default:0"`
}

func (SequenceCounter) TableName() string { return "counters" }

// FormatSequence renders a counter value as a zero-padded 4-digit code.
// Values above 9999 keep growing without truncation.
func FormatSequence(n int64) string {
	return fmt.Sprintf("%04d", n)
}

// NextSequenceCode atomically increments the counter for key and returns the
// next zero-padded code. The upsert makes concurrent callers serialize on the
// counter row instead of racing a read-max-then-increment query.
func NextSequenceCode(tx *gorm.DB, key string) (string, error) {
	var next int64
	err := tx.Raw(`
		INSERT INTO counters (counter_key, counter_value)
		VALUES (?, 1)
		ON CONFLICT (counter_key)
		DO UPDATE SET counter_value = counters.counter_value + 1
		RETURNING counter_value`, key).Scan(&next).Error
	if err != nil {
		return "", err
	}
	return FormatSequence(next), nil
}

// SeedSequenceCounter fast-forwards a counter to at least floor so codes stay
// monotonic over pre-existing rows. Used at migration time.
func SeedSequenceCounter(tx *gorm.DB, key string, floor int64) error {
	return tx.Exec(`
		INSERT INTO counters (counter_key, counter_value)
		VALUES (?, ?)
		ON CONFLICT (counter_key)
		DO UPDATE SET counter_value = GREATEST(counters.counter_value, EXCLUDED.counter_value)`,
		key, floor).Error
}
