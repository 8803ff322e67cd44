package auth

import (
	"testing"

	"github.com/weblanjutan/jobseeker-api/internal/models"
)

func TestCan(t *testing.T) {
	tests := []struct {
		name     string
		role     models.Role
		callerID int
		action   Action
		ownerID  int
		want     bool
	}{
		{"admin creates users", models.RoleAdmin, 1, ActionCreateUser, 0, true},
		{"employer cannot create users", models.RoleEmployer, 2, ActionCreateUser, 0, false},
		{"seeker cannot create users", models.RoleJobSeeker, 3, ActionCreateUser, 0, false},

		{"user manages self", models.RoleJobSeeker, 3, ActionManageUser, 3, true},
		{"user cannot manage others", models.RoleJobSeeker, 3, ActionManageUser, 4, false},
		{"admin manages anyone", models.RoleAdmin, 1, ActionManageUser, 4, true},

		{"owner manages profile", models.RoleJobSeeker, 3, ActionManageProfile, 3, true},
		{"stranger cannot manage profile", models.RoleEmployer, 2, ActionManageProfile, 3, false},

		{"employer creates job post", models.RoleEmployer, 2, ActionCreateJobPost, 2, true},
		{"seeker cannot create job post", models.RoleJobSeeker, 3, ActionCreateJobPost, 3, false},
		{"admin cannot create job post", models.RoleAdmin, 1, ActionCreateJobPost, 1, false},
		{"employer manages own post", models.RoleEmployer, 2, ActionManageJobPost, 2, true},
		{"employer cannot manage others post", models.RoleEmployer, 2, ActionManageJobPost, 5, false},
		{"admin manages any post", models.RoleAdmin, 1, ActionManageJobPost, 5, true},

		{"seeker applies as self", models.RoleJobSeeker, 3, ActionCreateApplication, 3, true},
		{"seeker cannot apply as others", models.RoleJobSeeker, 3, ActionCreateApplication, 4, false},
		{"employer cannot apply", models.RoleEmployer, 2, ActionCreateApplication, 2, false},
		{"admin cannot apply as self", models.RoleAdmin, 1, ActionCreateApplication, 1, false},
		{"admin cannot apply for another user", models.RoleAdmin, 1, ActionCreateApplication, 99, false},
		{"seeker manages own application", models.RoleJobSeeker, 3, ActionManageApplication, 3, true},
		{"employer cannot manage application directly", models.RoleEmployer, 2, ActionManageApplication, 3, false},

		{"employer reviews application on own post", models.RoleEmployer, 2, ActionReviewApplication, 2, true},
		{"employer cannot review application on others post", models.RoleEmployer, 2, ActionReviewApplication, 5, false},
		{"seeker cannot review", models.RoleJobSeeker, 3, ActionReviewApplication, 3, false},
		{"admin reviews anything", models.RoleAdmin, 1, ActionReviewApplication, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Can(tt.role, tt.callerID, tt.action, tt.ownerID); got != tt.want {
				t.Fatalf("Can(%s, %d, %v, %d) = %v, want %v", tt.role, tt.callerID, tt.action, tt.ownerID, got, tt.want)
			}
		})
	}
}

func TestRoleValid(t *testing.T) {
	for _, role := range []models.Role{models.RoleAdmin, models.RoleEmployer, models.RoleJobSeeker} {
		if !role.Valid() {
			t.Fatalf("expected role %q to be valid", role)
		}
	}
	if models.Role("Intern").Valid() {
		t.Fatal("expected unknown role to be invalid")
	}
}
