package store

import (
	"gorm.io/gorm"

	"clinicore/models"
)

// The medicine catalog backs the prescription autocomplete. Rows are
// referenced by name only, so there is one row per name/dosage variant and
// no foreign keys point here.

func (s *Store) CreateMedicine(medicine *models.Medicine) error {
	if err := checkStruct(medicine); err != nil {
		return err
	}
	return s.tx(func(tx *gorm.DB) error {
		return tx.Create(medicine).Error
	})
}

func (s *Store) GetMedicine(id uint) (*models.Medicine, error) {
	var medicine models.Medicine
	err := s.read(func(db *gorm.DB) error {
		return db.First(&medicine, id).Error
	})
	if isNotFound(err) {
		return nil, &Error{Kind: KindNotFound, Message: "medicine not found"}
	}
	if err != nil {
		return nil, err
	}
	return &medicine, nil
}

func (s *Store) UpdateMedicine(id uint, upd models.MedicineUpdate) (*models.Medicine, error) {
	var medicine models.Medicine
	err := s.tx(func(tx *gorm.DB) error {
		if err := tx.First(&medicine, id).Error; err != nil {
			if isNotFound(err) {
				return &Error{Kind: KindNotFound, Message: "medicine not found"}
			}
			return err
		}
		applyString(&medicine.MedicineName, upd.MedicineName)
		applyString(&medicine.CompanyName, upd.CompanyName)
		applyString(&medicine.DosageMg, upd.DosageMg)
		applyString(&medicine.DosageForm, upd.DosageForm)
		applyString(&medicine.Category, upd.Category)
		if err := checkStruct(&medicine); err != nil {
			return err
		}
		return tx.Save(&medicine).Error
	})
	if err != nil {
		return nil, err
	}
	return &medicine, nil
}

func (s *Store) ListMedicines(opts models.ListOptions) ([]models.Medicine, error) {
	medicines := []models.Medicine{}
	err := s.read(func(db *gorm.DB) error {
		q := applyFilters(db.Model(&models.Medicine{}), opts,
			[]string{"medicine_name", "company_name", "category"}, "", "")
		return q.Order("medicine_name ASC, id ASC").Find(&medicines).Error
	})
	if err != nil {
		return nil, err
	}
	return medicines, nil
}

// MedicineNames returns the distinct catalog names for autocomplete.
func (s *Store) MedicineNames() ([]string, error) {
	names := []string{}
	err := s.read(func(db *gorm.DB) error {
		return db.Model(&models.Medicine{}).
			Distinct("medicine_name").
			Order("medicine_name ASC").
			Pluck("medicine_name", &names).Error
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// DosagesFor returns the known dosages of a catalog name.
func (s *Store) DosagesFor(name string) ([]string, error) {
	dosages := []string{}
	err := s.read(func(db *gorm.DB) error {
		return db.Model(&models.Medicine{}).
			Where("medicine_name = ? AND dosage_mg <> ''", name).
			Distinct("dosage_mg").
			Order("dosage_mg ASC").
			Pluck("dosage_mg", &dosages).Error
	})
	if err != nil {
		return nil, err
	}
	return dosages, nil
}
