package models

import "time"

type Workout struct {
	ID            uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt     time.Time `json:"createdAt" example:"2024-01-01T00:00:00Z"`
	UserID        uint      `gorm:"not null;index:idx_workouts_user_time,priority:1" json:"userId" example:"1"`
	User          *User     `gorm:"constraint:OnDelete:CASCADE" json:"-" swaggerignore:"true"`
	TypeOfWorkout string    `gorm:"not null" json:"typeOfWorkout" example:"strength"`
	Muscle        string    `gorm:"not null" json:"muscle" example:"biceps"`
	DateTime      time.Time `gorm:"not null;index:idx_workouts_user_time,priority:2" json:"dateTime" example:"2024-01-01T18:30:00Z"`
}
