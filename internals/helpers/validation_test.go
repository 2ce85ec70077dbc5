// internals/helpers/validation_test.go
package helper

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestValidationErrorsToMap(t *testing.T) {
	type payload struct {
		Email string `json:"email" validate:"required,email"`
		Name  string `json:"name" validate:"required"`
	}

	v := validator.New()
	err := v.Struct(payload{Email: "not-an-email"})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	m := ValidationErrorsToMap(err)
	if len(m["email"]) == 0 {
		t.Error("expected an error for email")
	}
	if len(m["name"]) == 0 {
		t.Error("expected an error for name")
	}
}

func TestValidationErrorsToMapNonValidatorError(t *testing.T) {
	m := ValidationErrorsToMap(nil)
	if len(m) != 0 {
		t.Errorf("nil error should map to empty, got %v", m)
	}
}
