// internals/features/users/auth/controller/forgot_controller_test.go
package controller

import "testing"

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"student@example.com", "st*****@example.com"},
		{"longname@school.org", "lo*****@school.org"},
		{"ab@x.io", "ab@x.io"},
		{"a@x.io", "a@x.io"},
		{"no-at-sign", "no-at-sign"},
	}
	for _, tt := range tests {
		if got := maskEmail(tt.in); got != tt.want {
			t.Errorf("maskEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
