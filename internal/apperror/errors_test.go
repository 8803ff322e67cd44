package apperror

import (
	"errors"
	"net/http"
	"testing"
)

func TestMapErrorToStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrConflict, http.StatusBadRequest},
		{ErrBadRequest, http.StatusBadRequest},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrUnavailable, http.StatusServiceUnavailable},
		{ErrInternal, http.StatusInternalServerError},
		{errors.New("unknown"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := MapErrorToStatus(tt.err); got != tt.want {
			t.Fatalf("MapErrorToStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestNewfWrapsSentinel(t *testing.T) {
	err := Newf(ErrNotFound, "User with ID %d not found", 3)
	if err.Error() != "User with ID 3 not found" {
		t.Fatalf("message = %q", err.Error())
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatal("expected errors.Is to match the sentinel")
	}
	if MapErrorToStatus(err) != http.StatusNotFound {
		t.Fatal("wrapped error should map to the sentinel's status")
	}
}
