package models

import "time"

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleEmployer  Role = "Employer"
	RoleJobSeeker Role = "Job Seeker"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployer, RoleJobSeeker:
		return true
	}
	return false
}

type User struct {
	ID             int        `bson:"_id" json:"id"`
	Name           string     `bson:"name" json:"name"`
	Email          string     `bson:"email" json:"email"`
	Role           Role       `bson:"role" json:"role"`
	HashedPassword string     `bson:"hashed_password" json:"-"` // Hide from JSON responses
	CreatedAt      time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt      *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type UserCreate struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Role     Role   `json:"role" binding:"required,oneof=Admin Employer 'Job Seeker'"`
	Password string `json:"password" binding:"required,min=6"`
}

// UserUpdate carries only the fields the caller wants to change.
type UserUpdate struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Role     *Role   `json:"role,omitempty" binding:"omitempty,oneof=Admin Employer 'Job Seeker'"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=6"`
}
