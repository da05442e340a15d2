package models

import "time"

type Doctor struct {
	DoctorID       string    `gorm:"primaryKey" json:"doctor_id"`
	Name           string    `json:"name" validate:"required"`
	Specialization string    `json:"specialization" validate:"required"`
	Qualification  string    `json:"qualification"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type DoctorUpdate struct {
	Name           *string `json:"name"`
	Specialization *string `json:"specialization"`
	Qualification  *string `json:"qualification"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
}
