package models

// DateLayout is the storage format for every date column. ISO dates compare
// lexicographically, so inclusive range filters are plain string comparisons.
const DateLayout = "2006-01-02"

// ListOptions configures list queries. Zero-valued options are ignored, and
// callers may pass options an entity has no column for; those are ignored too.
type ListOptions struct {
	Text   string `form:"search" json:"search"`
	Date   string `form:"date" json:"date"`
	From   string `form:"from" json:"from"`
	To     string `form:"to" json:"to"`
	Status string `form:"status" json:"status"`
}

// StatsWindow scopes statistics aggregation. The zero value means all time.
type StatsWindow struct {
	From string `form:"from" json:"from"`
	To   string `form:"to" json:"to"`
}

// All reports whether the window is unbounded.
func (w StatsWindow) All() bool {
	return w.From == "" && w.To == ""
}

// Statistics is the freshly computed dashboard aggregate.
type Statistics struct {
	TotalPatients         int64   `json:"total_patients"`
	TotalDoctors          int64   `json:"total_doctors"`
	TotalRevenue          float64 `json:"total_revenue"`
	ScheduledAppointments int64   `json:"scheduled_appointments"`
	CompletedAppointments int64   `json:"completed_appointments"`
	CancelledAppointments int64   `json:"cancelled_appointments"`
}
