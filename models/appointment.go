package models

import "time"

// Appointment statuses form a closed set.
const (
	AppointmentScheduled = "Scheduled"
	AppointmentCompleted = "Completed"
	AppointmentCancelled = "Cancelled"
)

type Appointment struct {
	AppointmentID   string    `gorm:"primaryKey" json:"appointment_id"`
	PatientID       string    `gorm:"index" json:"patient_id" validate:"required"`
	DoctorID        string    `gorm:"index" json:"doctor_id" validate:"required"`
	AppointmentDate string    `json:"appointment_date" validate:"required"`
	AppointmentTime string    `json:"appointment_time"`
	Status          string    `json:"status" validate:"oneof=Scheduled Completed Cancelled"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type AppointmentUpdate struct {
	PatientID       *string `json:"patient_id"`
	DoctorID        *string `json:"doctor_id"`
	AppointmentDate *string `json:"appointment_date"`
	AppointmentTime *string `json:"appointment_time"`
	Status          *string `json:"status"`
	Notes           *string `json:"notes"`
}

// AppointmentView is an appointment joined with the referenced patient and
// doctor names for display. A dangling reference resolves to "N/A".
type AppointmentView struct {
	Appointment `gorm:"embedded"`
	PatientName string `json:"patient_name"`
	DoctorName  string `json:"doctor_name"`
}
