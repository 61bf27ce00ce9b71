package models

import "time"

type MeasurementType string

const (
	MeasurementWeight MeasurementType = "weight"
	MeasurementBMI    MeasurementType = "bmi"
)

func (t MeasurementType) Valid() bool {
	return t == MeasurementWeight || t == MeasurementBMI
}

// Measurement is one append-only entry of a user's weight or BMI series.
type Measurement struct {
	ID        uint            `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time       `json:"createdAt" example:"2024-01-01T00:00:00Z"`
	UserID    uint            `gorm:"not null;index:idx_measurements_user_type_time,priority:1" json:"userId" example:"1"`
	User      *User           `gorm:"constraint:OnDelete:CASCADE" json:"-" swaggerignore:"true"`
	Type      MeasurementType `gorm:"type:varchar(16);not null;index:idx_measurements_user_type_time,priority:2" json:"type" example:"weight"`
	Value     float64         `gorm:"not null" json:"value" example:"70.5"`
	DateTime  time.Time       `gorm:"not null;index:idx_measurements_user_type_time,priority:3" json:"dateTime" example:"2024-01-01T08:00:00Z"`
}
