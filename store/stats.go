package store

import (
	"gorm.io/gorm"

	"clinicore/models"
)

// Aggregate computes the dashboard statistics freshly on every call; nothing
// is cached or maintained incrementally. Patient and doctor totals are
// cumulative, while revenue and appointment counts respect the window:
// revenue sums total_amount over Paid bills by bill_date, inclusive on both
// ends.
func (s *Store) Aggregate(window models.StatsWindow) (*models.Statistics, error) {
	stats := &models.Statistics{}
	err := s.read(func(db *gorm.DB) error {
		if err := db.Model(&models.Patient{}).Count(&stats.TotalPatients).Error; err != nil {
			return err
		}
		if err := db.Model(&models.Doctor{}).Count(&stats.TotalDoctors).Error; err != nil {
			return err
		}

		billed := windowed(db.Model(&models.Bill{}), "bill_date", window).
			Where("payment_status = ?", models.PaymentPaid)
		if err := billed.Select("COALESCE(SUM(total_amount), 0)").Scan(&stats.TotalRevenue).Error; err != nil {
			return err
		}

		byStatus := map[string]*int64{
			models.AppointmentScheduled: &stats.ScheduledAppointments,
			models.AppointmentCompleted: &stats.CompletedAppointments,
			models.AppointmentCancelled: &stats.CancelledAppointments,
		}
		for status, dst := range byStatus {
			q := windowed(db.Model(&models.Appointment{}), "appointment_date", window).
				Where("status = ?", status)
			if err := q.Count(dst).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func windowed(q *gorm.DB, dateCol string, window models.StatsWindow) *gorm.DB {
	if window.From != "" {
		q = q.Where(dateCol+" >= ?", window.From)
	}
	if window.To != "" {
		q = q.Where(dateCol+" <= ?", window.To)
	}
	return q
}
