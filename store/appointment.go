package store

import (
	"gorm.io/gorm"

	"clinicore/models"
)

// appointmentSelect resolves the weak patient/doctor references to display
// names at read time. A dangling reference becomes the literal "N/A".
const appointmentSelect = `appointments.*,
COALESCE(patients.name, 'N/A') AS patient_name,
COALESCE(doctors.name || ' (' || doctors.specialization || ')', 'N/A') AS doctor_name`

func appointmentView(db *gorm.DB) *gorm.DB {
	return db.Table("appointments").
		Select(appointmentSelect).
		Joins("LEFT JOIN patients ON patients.patient_id = appointments.patient_id").
		Joins("LEFT JOIN doctors ON doctors.doctor_id = appointments.doctor_id")
}

// CreateAppointment validates the record, checks that both references
// resolve and inserts. Status defaults to Scheduled.
func (s *Store) CreateAppointment(appointment *models.Appointment) error {
	appointment.AppointmentID = EnsureID(appointment.AppointmentID, PrefixAppointment)
	if appointment.Status == "" {
		appointment.Status = models.AppointmentScheduled
	}
	if err := checkStruct(appointment); err != nil {
		return err
	}
	if err := checkDate("appointment_date", appointment.AppointmentDate); err != nil {
		return err
	}
	return s.tx(func(tx *gorm.DB) error {
		taken, err := refExists(tx, &models.Appointment{}, "appointment_id", appointment.AppointmentID)
		if err != nil {
			return err
		}
		if taken {
			return duplicateErr("appointment", appointment.AppointmentID)
		}
		if err := checkAppointmentRefs(tx, appointment.PatientID, appointment.DoctorID); err != nil {
			return err
		}
		return tx.Create(appointment).Error
	})
}

func checkAppointmentRefs(tx *gorm.DB, patientID, doctorID string) error {
	ok, err := refExists(tx, &models.Patient{}, "patient_id", patientID)
	if err != nil {
		return err
	}
	if !ok {
		return referentialErr("patient", patientID)
	}
	ok, err = refExists(tx, &models.Doctor{}, "doctor_id", doctorID)
	if err != nil {
		return err
	}
	if !ok {
		return referentialErr("doctor", doctorID)
	}
	return nil
}

// GetAppointment returns the appointment joined with patient and doctor
// display names.
func (s *Store) GetAppointment(id string) (*models.AppointmentView, error) {
	var view models.AppointmentView
	err := s.read(func(db *gorm.DB) error {
		return appointmentView(db).Where("appointments.appointment_id = ?", id).Take(&view).Error
	})
	if isNotFound(err) {
		return nil, notFoundErr("appointment", id)
	}
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *Store) UpdateAppointment(id string, upd models.AppointmentUpdate) (*models.Appointment, error) {
	var appointment models.Appointment
	err := s.tx(func(tx *gorm.DB) error {
		if err := tx.Where("appointment_id = ?", id).First(&appointment).Error; err != nil {
			if isNotFound(err) {
				return notFoundErr("appointment", id)
			}
			return err
		}
		applyString(&appointment.PatientID, upd.PatientID)
		applyString(&appointment.DoctorID, upd.DoctorID)
		applyString(&appointment.AppointmentDate, upd.AppointmentDate)
		applyString(&appointment.AppointmentTime, upd.AppointmentTime)
		applyString(&appointment.Status, upd.Status)
		applyString(&appointment.Notes, upd.Notes)
		if err := checkStruct(&appointment); err != nil {
			return err
		}
		if err := checkDate("appointment_date", appointment.AppointmentDate); err != nil {
			return err
		}
		// Only a changed reference is re-checked; an existing dangling one
		// is tolerated.
		if upd.PatientID != nil {
			ok, err := refExists(tx, &models.Patient{}, "patient_id", appointment.PatientID)
			if err != nil {
				return err
			}
			if !ok {
				return referentialErr("patient", appointment.PatientID)
			}
		}
		if upd.DoctorID != nil {
			ok, err := refExists(tx, &models.Doctor{}, "doctor_id", appointment.DoctorID)
			if err != nil {
				return err
			}
			if !ok {
				return referentialErr("doctor", appointment.DoctorID)
			}
		}
		return tx.Save(&appointment).Error
	})
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (s *Store) ListAppointments(opts models.ListOptions) ([]models.AppointmentView, error) {
	views := []models.AppointmentView{}
	err := s.read(func(db *gorm.DB) error {
		q := applyFilters(appointmentView(db), opts,
			[]string{"appointments.appointment_id", "patients.name", "doctors.name"},
			"appointments.appointment_date", "appointments.status")
		return q.Order("appointments.appointment_id ASC").Scan(&views).Error
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
