package models

import "time"

// Bill payment statuses form a closed set.
const (
	PaymentPending   = "Pending"
	PaymentPaid      = "Paid"
	PaymentCancelled = "Cancelled"
)

type Bill struct {
	BillID          string    `gorm:"primaryKey" json:"bill_id"`
	PatientID       string    `gorm:"index" json:"patient_id" validate:"required"`
	AppointmentID   string    `json:"appointment_id"`
	BillDate        string    `json:"bill_date" validate:"required"`
	ConsultationFee float64   `json:"consultation_fee"`
	MedicineCost    float64   `json:"medicine_cost"`
	OtherCharges    float64   `json:"other_charges"`
	TotalAmount     float64   `json:"total_amount"`
	PaymentStatus   string    `json:"payment_status" validate:"oneof=Pending Paid Cancelled"`
	PaymentMethod   string    `json:"payment_method"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Bill) TableName() string { return "billing" }

type BillUpdate struct {
	PatientID       *string  `json:"patient_id"`
	AppointmentID   *string  `json:"appointment_id"`
	BillDate        *string  `json:"bill_date"`
	ConsultationFee *float64 `json:"consultation_fee"`
	MedicineCost    *float64 `json:"medicine_cost"`
	OtherCharges    *float64 `json:"other_charges"`
	PaymentStatus   *string  `json:"payment_status"`
	PaymentMethod   *string  `json:"payment_method"`
	Notes           *string  `json:"notes"`
}

// BillView joins the patient name for display.
type BillView struct {
	Bill        `gorm:"embedded"`
	PatientName string `json:"patient_name"`
}
