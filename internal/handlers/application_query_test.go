package handlers

import (
	"testing"

	"github.com/weblanjutan/jobseeker-api/internal/models"
)

func TestApplicationStatusFromQuery(t *testing.T) {
	for _, target := range []string{
		"/applications",
		"/applications?status=Pending",
		"/applications?status=Accepted",
		"/applications?status=Rejected",
	} {
		c := paginationContext(t, target)
		status, err := applicationStatusFromQuery(c)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", target, err)
		}
		if target == "/applications" && status != "" {
			t.Fatalf("expected empty status for no filter, got %q", status)
		}
	}

	for _, target := range []string{
		"/applications?status=Bogus",
		"/applications?status=pending",
	} {
		c := paginationContext(t, target)
		if _, err := applicationStatusFromQuery(c); err == nil {
			t.Fatalf("expected %q to be rejected", target)
		}
	}
}

func TestApplicationStatusValid(t *testing.T) {
	for _, status := range []models.ApplicationStatus{
		models.ApplicationPending, models.ApplicationAccepted, models.ApplicationRejected,
	} {
		if !status.Valid() {
			t.Fatalf("expected status %q to be valid", status)
		}
	}
	if models.ApplicationStatus("Withdrawn").Valid() {
		t.Fatal("expected unknown status to be invalid")
	}
}
