// internals/features/users/auth/service/password_service_test.go
package service

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hashed == "correct horse battery staple" {
		t.Fatal("hash should not equal the plaintext")
	}
	if !CheckPassword(hashed, "correct horse battery staple") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hashed, "wrong password") {
		t.Error("wrong password accepted")
	}
	if CheckPassword("not a bcrypt hash", "anything") {
		t.Error("garbage hash accepted")
	}
}

func TestGenerateOTP(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateOTP()
		if err != nil {
			t.Fatalf("GenerateOTP() error = %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("GenerateOTP() = %q, want 6 digits", code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("GenerateOTP() = %q, contains non-digit", code)
			}
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Error("50 draws produced a single code, generator looks broken")
	}
}
