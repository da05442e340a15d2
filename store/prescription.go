package store

import (
	"gorm.io/gorm"

	"clinicore/models"
)

const prescriptionSelect = `prescriptions.*,
COALESCE(patients.name, 'N/A') AS patient_name,
COALESCE(doctors.name || ' (' || doctors.specialization || ')', 'N/A') AS doctor_name`

func prescriptionView(db *gorm.DB) *gorm.DB {
	return db.Table("prescriptions").
		Select(prescriptionSelect).
		Joins("LEFT JOIN patients ON patients.patient_id = prescriptions.patient_id").
		Joins("LEFT JOIN doctors ON doctors.doctor_id = prescriptions.doctor_id")
}

func checkPrescription(p *models.Prescription) error {
	if err := checkStruct(p); err != nil {
		return err
	}
	for i := range p.Items {
		if err := checkStruct(&p.Items[i]); err != nil {
			return err
		}
	}
	if err := checkDate("prescription_date", p.PrescriptionDate); err != nil {
		return err
	}
	return checkDate("follow_up_date", p.FollowUpDate)
}

func checkPrescriptionRefs(tx *gorm.DB, p *models.Prescription) error {
	ok, err := refExists(tx, &models.Patient{}, "patient_id", p.PatientID)
	if err != nil {
		return err
	}
	if !ok {
		return referentialErr("patient", p.PatientID)
	}
	ok, err = refExists(tx, &models.Doctor{}, "doctor_id", p.DoctorID)
	if err != nil {
		return err
	}
	if !ok {
		return referentialErr("doctor", p.DoctorID)
	}
	if p.AppointmentID != "" {
		ok, err = refExists(tx, &models.Appointment{}, "appointment_id", p.AppointmentID)
		if err != nil {
			return err
		}
		if !ok {
			return referentialErr("appointment", p.AppointmentID)
		}
	}
	return nil
}

// CreatePrescription inserts the header and its ordered medicine items as one
// transaction; a prescription is never persisted with only part of its items.
func (s *Store) CreatePrescription(p *models.Prescription) error {
	p.PrescriptionID = EnsureID(p.PrescriptionID, PrefixPrescription)
	if err := checkPrescription(p); err != nil {
		return err
	}
	return s.tx(func(tx *gorm.DB) error {
		taken, err := refExists(tx, &models.Prescription{}, "prescription_id", p.PrescriptionID)
		if err != nil {
			return err
		}
		if taken {
			return duplicateErr("prescription", p.PrescriptionID)
		}
		if err := checkPrescriptionRefs(tx, p); err != nil {
			return err
		}
		if err := tx.Omit("Items").Create(p).Error; err != nil {
			return err
		}
		return createItems(tx, p)
	})
}

// createItems inserts items one by one so the autoincrement key reflects
// submission order.
func createItems(tx *gorm.DB, p *models.Prescription) error {
	for i := range p.Items {
		p.Items[i].ID = 0
		p.Items[i].PrescriptionID = p.PrescriptionID
		if err := tx.Create(&p.Items[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetPrescription returns the joined view with its items in submission order.
func (s *Store) GetPrescription(id string) (*models.PrescriptionView, error) {
	var view models.PrescriptionView
	err := s.read(func(db *gorm.DB) error {
		if err := prescriptionView(db).Where("prescriptions.prescription_id = ?", id).Take(&view).Error; err != nil {
			return err
		}
		return db.Where("prescription_id = ?", id).Order("id ASC").Find(&view.Items).Error
	})
	if isNotFound(err) {
		return nil, notFoundErr("prescription", id)
	}
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// UpdatePrescription replaces the header and the whole item list in one
// transaction.
func (s *Store) UpdatePrescription(id string, p *models.Prescription) error {
	p.PrescriptionID = id
	if err := checkPrescription(p); err != nil {
		return err
	}
	return s.tx(func(tx *gorm.DB) error {
		var existing models.Prescription
		if err := tx.Where("prescription_id = ?", id).First(&existing).Error; err != nil {
			if isNotFound(err) {
				return notFoundErr("prescription", id)
			}
			return err
		}
		if err := checkPrescriptionRefs(tx, p); err != nil {
			return err
		}
		p.CreatedAt = existing.CreatedAt
		if err := tx.Omit("Items").Save(p).Error; err != nil {
			return err
		}
		if err := tx.Where("prescription_id = ?", id).Delete(&models.MedicineItem{}).Error; err != nil {
			return err
		}
		return createItems(tx, p)
	})
}

// DeletePrescription removes the header and every owned item; nothing of the
// prescription stays queryable afterwards.
func (s *Store) DeletePrescription(id string) error {
	return s.tx(func(tx *gorm.DB) error {
		res := tx.Where("prescription_id = ?", id).Delete(&models.Prescription{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return notFoundErr("prescription", id)
		}
		return tx.Where("prescription_id = ?", id).Delete(&models.MedicineItem{}).Error
	})
}

func (s *Store) ListPrescriptions(opts models.ListOptions) ([]models.PrescriptionView, error) {
	views := []models.PrescriptionView{}
	err := s.read(func(db *gorm.DB) error {
		q := applyFilters(prescriptionView(db), opts,
			[]string{"prescriptions.prescription_id", "patients.name", "doctors.name", "prescriptions.diagnosis"},
			"prescriptions.prescription_date", "")
		return q.Order("prescriptions.prescription_id ASC").Scan(&views).Error
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
