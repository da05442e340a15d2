package store

import (
	"gorm.io/gorm"

	"clinicore/models"
)

// CreatePatient validates and durably inserts a new patient. A supplied
// patient_id is honored after uniqueness checking; otherwise one is
// synthesized.
func (s *Store) CreatePatient(patient *models.Patient) error {
	patient.PatientID = EnsureID(patient.PatientID, PrefixPatient)
	if err := checkStruct(patient); err != nil {
		return err
	}
	if err := checkDate("date_of_birth", patient.DateOfBirth); err != nil {
		return err
	}
	return s.tx(func(tx *gorm.DB) error {
		taken, err := refExists(tx, &models.Patient{}, "patient_id", patient.PatientID)
		if err != nil {
			return err
		}
		if taken {
			return duplicateErr("patient", patient.PatientID)
		}
		return tx.Create(patient).Error
	})
}

func (s *Store) GetPatient(id string) (*models.Patient, error) {
	var patient models.Patient
	err := s.read(func(db *gorm.DB) error {
		return db.Where("patient_id = ?", id).First(&patient).Error
	})
	if isNotFound(err) {
		return nil, notFoundErr("patient", id)
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// UpdatePatient applies a partial update, re-validating the resulting record.
func (s *Store) UpdatePatient(id string, upd models.PatientUpdate) (*models.Patient, error) {
	var patient models.Patient
	err := s.tx(func(tx *gorm.DB) error {
		if err := tx.Where("patient_id = ?", id).First(&patient).Error; err != nil {
			if isNotFound(err) {
				return notFoundErr("patient", id)
			}
			return err
		}
		applyString(&patient.Name, upd.Name)
		applyString(&patient.DateOfBirth, upd.DateOfBirth)
		applyString(&patient.Gender, upd.Gender)
		applyString(&patient.Phone, upd.Phone)
		applyString(&patient.Email, upd.Email)
		applyString(&patient.Address, upd.Address)
		if err := checkStruct(&patient); err != nil {
			return err
		}
		if err := checkDate("date_of_birth", patient.DateOfBirth); err != nil {
			return err
		}
		return tx.Save(&patient).Error
	})
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// ListPatients returns patients matching opts, ordered by patient_id so
// equal inputs always produce the same sequence.
func (s *Store) ListPatients(opts models.ListOptions) ([]models.Patient, error) {
	patients := []models.Patient{}
	err := s.read(func(db *gorm.DB) error {
		q := applyFilters(db.Model(&models.Patient{}), opts,
			[]string{"patient_id", "name", "phone"}, "date_of_birth", "")
		return q.Order("patient_id ASC").Find(&patients).Error
	})
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func applyFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
