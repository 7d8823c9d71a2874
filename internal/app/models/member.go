package models

import "time"

// Member defines the member model based on the 'members' table
type Member struct {
	ID              int64          `json:"id" db:"id" example:"1"`
	Email           string         `json:"email" db:"email" example:"member@buddybridge.kr"`
	Password        string         `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Name            string         `json:"name" db:"name" example:"Kim Minsu"`
	Nickname        string         `json:"nickname" db:"nickname" example:"minsu"`
	ProfileImageURL *string        `json:"profileImageUrl,omitempty" db:"profile_image_url"`
	Age             int            `json:"age" db:"age" example:"25"`
	Gender          Gender         `json:"gender" db:"gender" example:"MALE"`
	DisabilityType  DisabilityType `json:"disabilityType" db:"disability_type" example:"VISUAL"`
	CreatedAt       time.Time      `json:"createdAt" db:"created_at"`
	ModifiedAt      time.Time      `json:"modifiedAt" db:"modified_at"`
}
