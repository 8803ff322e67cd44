package models

import "time"

type JobType string

const (
	JobTypeFullTime  JobType = "Full-time"
	JobTypePartTime  JobType = "Part-time"
	JobTypeFreelance JobType = "Freelance"
	JobTypeOther     JobType = "Other"
)

type JobPost struct {
	ID           int        `bson:"_id" json:"id"`
	UserID       int        `bson:"user_id" json:"user_id"`
	Title        string     `bson:"title" json:"title"`
	Company      string     `bson:"company" json:"company"`
	Location     string     `bson:"location" json:"location"`
	JobType      JobType    `bson:"job_type" json:"job_type"`
	Description  string     `bson:"description" json:"description"`
	Requirements []string   `bson:"requirements" json:"requirements"`
	SalaryMin    int        `bson:"salary_min" json:"salary_min"`
	SalaryMax    int        `bson:"salary_max" json:"salary_max"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`

	// Owner details attached on reads, never persisted.
	UserName  string `bson:"-" json:"user_name,omitempty"`
	UserEmail string `bson:"-" json:"user_email,omitempty"`
}

type JobPostCreate struct {
	Title        string   `json:"title" binding:"required,min=5,max=200"`
	Company      string   `json:"company" binding:"required,min=2,max=100"`
	Location     string   `json:"location" binding:"required,min=2,max=100"`
	JobType      JobType  `json:"job_type" binding:"required,oneof=Full-time Part-time Freelance Other"`
	Description  string   `json:"description" binding:"required,min=10"`
	Requirements []string `json:"requirements" binding:"required,min=1"`
	SalaryMin    int      `json:"salary_min" binding:"gte=0"`
	SalaryMax    int      `json:"salary_max" binding:"gte=0,gtefield=SalaryMin"`
}

type JobPostUpdate struct {
	Title        *string   `json:"title,omitempty" binding:"omitempty,min=5,max=200"`
	Company      *string   `json:"company,omitempty" binding:"omitempty,min=2,max=100"`
	Location     *string   `json:"location,omitempty" binding:"omitempty,min=2,max=100"`
	JobType      *JobType  `json:"job_type,omitempty" binding:"omitempty,oneof=Full-time Part-time Freelance Other"`
	Description  *string   `json:"description,omitempty" binding:"omitempty,min=10"`
	Requirements *[]string `json:"requirements,omitempty" binding:"omitempty,min=1"`
	SalaryMin    *int      `json:"salary_min,omitempty" binding:"omitempty,gte=0"`
	SalaryMax    *int      `json:"salary_max,omitempty" binding:"omitempty,gte=0"`
}

// JobPostFilter narrows job-post listings.
type JobPostFilter struct {
	JobType   string
	Title     string
	MinSalary *int
	MaxSalary *int
}
