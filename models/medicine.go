package models

import "time"

// Medicine is a catalog row backing the prescription autocomplete. Catalog
// rows are referenced by name only, never foreign-keyed.
type Medicine struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	MedicineName string    `gorm:"index" json:"medicine_name" validate:"required"`
	CompanyName  string    `json:"company_name"`
	DosageMg     string    `json:"dosage_mg"`
	DosageForm   string    `json:"dosage_form"`
	Category     string    `json:"category"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Medicine) TableName() string { return "medicines_master" }

type MedicineUpdate struct {
	MedicineName *string `json:"medicine_name"`
	CompanyName  *string `json:"company_name"`
	DosageMg     *string `json:"dosage_mg"`
	DosageForm   *string `json:"dosage_form"`
	Category     *string `json:"category"`
}
