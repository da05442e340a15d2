package store

import (
	"gorm.io/gorm"

	"clinicore/models"
)

const billSelect = `billing.*,
COALESCE(patients.name, 'N/A') AS patient_name`

func billView(db *gorm.DB) *gorm.DB {
	return db.Table("billing").
		Select(billSelect).
		Joins("LEFT JOIN patients ON patients.patient_id = billing.patient_id")
}

func checkBillRefs(tx *gorm.DB, bill *models.Bill) error {
	ok, err := refExists(tx, &models.Patient{}, "patient_id", bill.PatientID)
	if err != nil {
		return err
	}
	if !ok {
		return referentialErr("patient", bill.PatientID)
	}
	if bill.AppointmentID != "" {
		ok, err = refExists(tx, &models.Appointment{}, "appointment_id", bill.AppointmentID)
		if err != nil {
			return err
		}
		if !ok {
			return referentialErr("appointment", bill.AppointmentID)
		}
	}
	return nil
}

// CreateBill validates, recomputes the total from its components and
// inserts. The submitted total_amount is never trusted.
func (s *Store) CreateBill(bill *models.Bill) error {
	bill.BillID = EnsureID(bill.BillID, PrefixBill)
	if bill.PaymentStatus == "" {
		bill.PaymentStatus = models.PaymentPending
	}
	bill.TotalAmount = bill.ConsultationFee + bill.MedicineCost + bill.OtherCharges
	if err := checkStruct(bill); err != nil {
		return err
	}
	if err := checkDate("bill_date", bill.BillDate); err != nil {
		return err
	}
	return s.tx(func(tx *gorm.DB) error {
		taken, err := refExists(tx, &models.Bill{}, "bill_id", bill.BillID)
		if err != nil {
			return err
		}
		if taken {
			return duplicateErr("bill", bill.BillID)
		}
		if err := checkBillRefs(tx, bill); err != nil {
			return err
		}
		return tx.Create(bill).Error
	})
}

func (s *Store) GetBill(id string) (*models.BillView, error) {
	var view models.BillView
	err := s.read(func(db *gorm.DB) error {
		return billView(db).Where("billing.bill_id = ?", id).Take(&view).Error
	})
	if isNotFound(err) {
		return nil, notFoundErr("bill", id)
	}
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// UpdateBill applies a partial update. Touching any fee component
// invalidates total_amount, so the total is recomputed from the resulting
// components on every update.
func (s *Store) UpdateBill(id string, upd models.BillUpdate) (*models.Bill, error) {
	var bill models.Bill
	err := s.tx(func(tx *gorm.DB) error {
		if err := tx.Where("bill_id = ?", id).First(&bill).Error; err != nil {
			if isNotFound(err) {
				return notFoundErr("bill", id)
			}
			return err
		}
		applyString(&bill.PatientID, upd.PatientID)
		applyString(&bill.AppointmentID, upd.AppointmentID)
		applyString(&bill.BillDate, upd.BillDate)
		applyFloat(&bill.ConsultationFee, upd.ConsultationFee)
		applyFloat(&bill.MedicineCost, upd.MedicineCost)
		applyFloat(&bill.OtherCharges, upd.OtherCharges)
		applyString(&bill.PaymentStatus, upd.PaymentStatus)
		applyString(&bill.PaymentMethod, upd.PaymentMethod)
		applyString(&bill.Notes, upd.Notes)
		bill.TotalAmount = bill.ConsultationFee + bill.MedicineCost + bill.OtherCharges
		if err := checkStruct(&bill); err != nil {
			return err
		}
		if err := checkDate("bill_date", bill.BillDate); err != nil {
			return err
		}
		if upd.PatientID != nil || upd.AppointmentID != nil {
			if err := checkBillRefs(tx, &bill); err != nil {
				return err
			}
		}
		return tx.Save(&bill).Error
	})
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

// DeleteBill hard-deletes a bill; nothing cascades.
func (s *Store) DeleteBill(id string) error {
	return s.tx(func(tx *gorm.DB) error {
		res := tx.Where("bill_id = ?", id).Delete(&models.Bill{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return notFoundErr("bill", id)
		}
		return nil
	})
}

func (s *Store) ListBills(opts models.ListOptions) ([]models.BillView, error) {
	views := []models.BillView{}
	err := s.read(func(db *gorm.DB) error {
		q := applyFilters(billView(db), opts,
			[]string{"billing.bill_id", "patients.name"},
			"billing.bill_date", "billing.payment_status")
		return q.Order("billing.bill_id ASC").Scan(&views).Error
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
