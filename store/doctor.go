package store

import (
	"gorm.io/gorm"

	"clinicore/models"
)

func (s *Store) CreateDoctor(doctor *models.Doctor) error {
	doctor.DoctorID = EnsureID(doctor.DoctorID, PrefixDoctor)
	if err := checkStruct(doctor); err != nil {
		return err
	}
	return s.tx(func(tx *gorm.DB) error {
		taken, err := refExists(tx, &models.Doctor{}, "doctor_id", doctor.DoctorID)
		if err != nil {
			return err
		}
		if taken {
			return duplicateErr("doctor", doctor.DoctorID)
		}
		return tx.Create(doctor).Error
	})
}

func (s *Store) GetDoctor(id string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := s.read(func(db *gorm.DB) error {
		return db.Where("doctor_id = ?", id).First(&doctor).Error
	})
	if isNotFound(err) {
		return nil, notFoundErr("doctor", id)
	}
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (s *Store) UpdateDoctor(id string, upd models.DoctorUpdate) (*models.Doctor, error) {
	var doctor models.Doctor
	err := s.tx(func(tx *gorm.DB) error {
		if err := tx.Where("doctor_id = ?", id).First(&doctor).Error; err != nil {
			if isNotFound(err) {
				return notFoundErr("doctor", id)
			}
			return err
		}
		applyString(&doctor.Name, upd.Name)
		applyString(&doctor.Specialization, upd.Specialization)
		applyString(&doctor.Qualification, upd.Qualification)
		applyString(&doctor.Phone, upd.Phone)
		applyString(&doctor.Email, upd.Email)
		if err := checkStruct(&doctor); err != nil {
			return err
		}
		return tx.Save(&doctor).Error
	})
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

// DeleteDoctor hard-deletes a doctor. Appointments and prescriptions keep
// their doctor_id; reads resolve the dangling reference to "N/A" instead of
// failing.
func (s *Store) DeleteDoctor(id string) error {
	return s.tx(func(tx *gorm.DB) error {
		res := tx.Where("doctor_id = ?", id).Delete(&models.Doctor{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return notFoundErr("doctor", id)
		}
		return nil
	})
}

func (s *Store) ListDoctors(opts models.ListOptions) ([]models.Doctor, error) {
	doctors := []models.Doctor{}
	err := s.read(func(db *gorm.DB) error {
		q := applyFilters(db.Model(&models.Doctor{}), opts,
			[]string{"doctor_id", "name", "specialization"}, "", "")
		return q.Order("doctor_id ASC").Find(&doctors).Error
	})
	if err != nil {
		return nil, err
	}
	return doctors, nil
}
