// internals/helpers/sequence_test.go
package helper

import "testing"

func TestFormatSequence(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{1, "0001"},
		{42, "0042"},
		{999, "0999"},
		{1000, "1000"},
		{12345, "12345"},
	}
	for _, tt := range tests {
		if got := FormatSequence(tt.n); got != tt.want {
			t.Errorf("FormatSequence(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
