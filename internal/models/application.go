package models

import "time"

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "Pending"
	ApplicationAccepted ApplicationStatus = "Accepted"
	ApplicationRejected ApplicationStatus = "Rejected"
)

// Valid reports whether s is one of the known statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

type Application struct {
	ID            int               `bson:"_id" json:"id"`
	UserID        int               `bson:"user_id" json:"user_id"`
	JobPostID     int               `bson:"job_post_id" json:"job_post_id"`
	Status        ApplicationStatus `bson:"status" json:"status"`
	CVData        string            `bson:"cv_data" json:"cv_data"` // base64-encoded document
	CVFilename    string            `bson:"cv_filename" json:"cv_filename"`
	CVContentType string            `bson:"cv_content_type" json:"cv_content_type"`
	CreatedAt     time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt     *time.Time        `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type ApplicationCreate struct {
	UserID        int               `json:"user_id" binding:"required"`
	JobPostID     int               `json:"job_post_id" binding:"required"`
	Status        ApplicationStatus `json:"status" binding:"omitempty,oneof=Pending Accepted Rejected"`
	CVData        string            `json:"cv_data" binding:"required"`
	CVFilename    string            `json:"cv_filename" binding:"required"`
	CVContentType string            `json:"cv_content_type"`
}

type ApplicationUpdate struct {
	Status        *ApplicationStatus `json:"status,omitempty" binding:"omitempty,oneof=Pending Accepted Rejected"`
	CVData        *string            `json:"cv_data,omitempty"`
	CVFilename    *string            `json:"cv_filename,omitempty"`
	CVContentType *string            `json:"cv_content_type,omitempty"`
}
