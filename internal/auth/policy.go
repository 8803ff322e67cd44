package auth

import "github.com/weblanjutan/jobseeker-api/internal/models"

// Action names an operation subject to role and ownership checks.
type Action int

const (
	// ActionCreateUser covers admin user creation via POST /users.
	ActionCreateUser Action = iota
	// ActionManageUser covers updating or deleting a user account.
	ActionManageUser
	// ActionManageProfile covers creating, updating or deleting a profile.
	ActionManageProfile
	// ActionCreateJobPost covers posting a new job.
	ActionCreateJobPost
	// ActionManageJobPost covers updating or deleting a job post.
	ActionManageJobPost
	// ActionCreateApplication covers applying to a job.
	ActionCreateApplication
	// ActionManageApplication covers a seeker mutating their own application.
	ActionManageApplication
	// ActionReviewApplication covers an employer updating applications
	// tied to a job post they own.
	ActionReviewApplication
)

// Can is the single policy decision point. ownerID is the user ID that
// owns the resource being acted on (for job posts under review, the
// posting employer). Admins bypass ownership checks on manage and
// review actions, but creating a job post stays Employer-only and
// applying stays JobSeeker-only; an admin account cannot do either.
func Can(role models.Role, callerID int, action Action, ownerID int) bool {
	switch action {
	case ActionCreateJobPost:
		return role == models.RoleEmployer
	case ActionCreateApplication:
		return role == models.RoleJobSeeker && callerID == ownerID
	}

	if role == models.RoleAdmin {
		return true
	}
	switch action {
	case ActionCreateUser:
		return false
	case ActionManageUser, ActionManageProfile:
		return callerID == ownerID
	case ActionManageJobPost:
		return role == models.RoleEmployer && callerID == ownerID
	case ActionManageApplication:
		return role == models.RoleJobSeeker && callerID == ownerID
	case ActionReviewApplication:
		return role == models.RoleEmployer && callerID == ownerID
	}
	return false
}
