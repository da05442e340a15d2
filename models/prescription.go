package models

import "time"

type Prescription struct {
	PrescriptionID   string         `gorm:"primaryKey" json:"prescription_id"`
	PatientID        string         `gorm:"index" json:"patient_id" validate:"required"`
	DoctorID         string         `gorm:"index" json:"doctor_id" validate:"required"`
	AppointmentID    string         `json:"appointment_id"`
	PrescriptionDate string         `json:"prescription_date" validate:"required"`
	Diagnosis        string         `json:"diagnosis"`
	Notes            string         `json:"notes"`
	Weight           string         `json:"weight"`
	Height           string         `json:"height"`
	BP               string         `json:"bp"`
	SPO2             string         `json:"spo2"`
	HR               string         `json:"hr"`
	RR               string         `json:"rr"`
	FollowUpDate     string         `json:"follow_up_date"`
	Items            []MedicineItem `gorm:"foreignKey:PrescriptionID;references:PrescriptionID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// MedicineItem is owned by its prescription and has no identity of its own.
// The autoincrement key preserves the order items were submitted in.
type MedicineItem struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	PrescriptionID string `gorm:"index" json:"-"`
	MedicineName   string `json:"medicine_name" validate:"required"`
	Dosage         string `json:"dosage" validate:"required"`
	Frequency      string `json:"frequency" validate:"required"`
	Duration       string `json:"duration" validate:"required"`
	Instructions   string `json:"instructions"`
	Purpose        string `json:"purpose"`
}

func (MedicineItem) TableName() string { return "prescription_items" }

// PrescriptionView joins patient and doctor names for display.
type PrescriptionView struct {
	Prescription `gorm:"embedded"`
	PatientName  string `json:"patient_name"`
	DoctorName   string `json:"doctor_name"`
}
