package models

import "time"

type Patient struct {
	PatientID   string    `gorm:"primaryKey" json:"patient_id"`
	Name        string    `json:"name" validate:"required"`
	DateOfBirth string    `json:"date_of_birth" validate:"required"`
	Gender      string    `json:"gender" validate:"required"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// PatientUpdate carries the fields of a partial patient update. Nil means
// the field is untouched.
type PatientUpdate struct {
	Name        *string `json:"name"`
	DateOfBirth *string `json:"date_of_birth"`
	Gender      *string `json:"gender"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
}
