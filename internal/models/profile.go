package models

import "time"

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

type Profile struct {
	ID          int        `bson:"_id" json:"id"`
	UserID      int        `bson:"user_id" json:"user_id"`
	FullName    string     `bson:"full_name" json:"full_name"`
	Phone       string     `bson:"phone" json:"phone"`
	Age         int        `bson:"age" json:"age"`
	Gender      Gender     `bson:"gender" json:"gender"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Skills      []string   `bson:"skills" json:"skills"`
	Experience  string     `bson:"experience,omitempty" json:"experience,omitempty"`
	Education   string     `bson:"education,omitempty" json:"education,omitempty"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type ProfileCreate struct {
	UserID      int      `json:"user_id" binding:"required"`
	FullName    string   `json:"full_name" binding:"required,min=2,max=100"`
	Phone       string   `json:"phone" binding:"required,min=10,max=20"`
	Age         int      `json:"age" binding:"required,gte=18,lte=100"`
	Gender      Gender   `json:"gender" binding:"required,oneof=Male Female"`
	Description string   `json:"description" binding:"max=1000"`
	Skills      []string `json:"skills"`
	Experience  string   `json:"experience" binding:"max=2000"`
	Education   string   `json:"education" binding:"max=1000"`
}

type ProfileUpdate struct {
	FullName    *string   `json:"full_name,omitempty" binding:"omitempty,min=2,max=100"`
	Phone       *string   `json:"phone,omitempty" binding:"omitempty,min=10,max=20"`
	Age         *int      `json:"age,omitempty" binding:"omitempty,gte=18,lte=100"`
	Gender      *Gender   `json:"gender,omitempty" binding:"omitempty,oneof=Male Female"`
	Description *string   `json:"description,omitempty" binding:"omitempty,max=1000"`
	Skills      *[]string `json:"skills,omitempty"`
	Experience  *string   `json:"experience,omitempty" binding:"omitempty,max=2000"`
	Education   *string   `json:"education,omitempty" binding:"omitempty,max=1000"`
}
