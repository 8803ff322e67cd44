package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

type registerForm struct {
	Name     string `validate:"required,min=2,max=100"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func TestFormatErrorReadableMessages(t *testing.T) {
	v := validator.New()
	err := v.Struct(registerForm{Name: "A", Email: "nope", Password: ""})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	msg := FormatError(err)
	for _, want := range []string{
		"Name must be at least 2 characters",
		"Email must be a valid email address",
		"Password is required",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message %q missing %q", msg, want)
		}
	}
}

func TestFormatErrorPassesThroughOtherErrors(t *testing.T) {
	err := errors.New("plain failure")
	if got := FormatError(err); got != "plain failure" {
		t.Fatalf("got %q", got)
	}
}
