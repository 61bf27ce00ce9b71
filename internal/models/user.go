package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2024-01-01T00:00:00Z"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username" example:"jdoe"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email" example:"jdoe@example.com"`
	Password  string    `gorm:"not null" json:"-" swaggerignore:"true"`
}
