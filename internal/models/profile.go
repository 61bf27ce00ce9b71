package models

import "time"

type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2024-01-01T00:00:00Z"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"userId" example:"1"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE" json:"-" swaggerignore:"true"`
	Fname     string    `gorm:"not null" json:"fname" example:"Jane"`
	Lname     string    `gorm:"not null" json:"lname" example:"Doe"`
	Height    float64   `json:"height" example:"1.75"`
	Weight    float64   `json:"weight" example:"70"`
	Birthdate time.Time `json:"birthdate" example:"1990-05-01T00:00:00Z"`
	Age       int       `json:"age" example:"34"`
	Gender    string    `gorm:"type:varchar(8);not null" json:"gender" example:"female"`
	UserImage string    `json:"userImage" example:"https://storage.example.com/fitnessforge/profileImages/a.png"`
}

// DefaultProfile is the placeholder profile every account starts with.
func DefaultProfile(userID uint, now time.Time) *Profile {
	return &Profile{
		UserID:    userID,
		Fname:     "First name",
		Lname:     "Last name",
		Birthdate: now,
		Gender:    "male",
	}
}
