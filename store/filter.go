package store

import (
	"strings"

	"gorm.io/gorm"

	"clinicore/models"
)

// applyFilters narrows q by the recognized list options. textCols are the
// columns substring-matched (case-insensitively) by Text, dateCol is the
// entity's primary date column and statusCol its status column; an empty
// column name means the entity has no such field and the option is ignored,
// as are options the caller left zero.
func applyFilters(q *gorm.DB, opts models.ListOptions, textCols []string, dateCol, statusCol string) *gorm.DB {
	if text := strings.TrimSpace(opts.Text); text != "" && len(textCols) > 0 {
		pattern := "%" + strings.ToLower(text) + "%"
		clauses := make([]string, len(textCols))
		args := make([]interface{}, len(textCols))
		for i, col := range textCols {
			clauses[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = pattern
		}
		q = q.Where(strings.Join(clauses, " OR "), args...)
	}
	if dateCol != "" {
		if opts.Date != "" {
			q = q.Where(dateCol+" = ?", opts.Date)
		}
		if opts.From != "" {
			q = q.Where(dateCol+" >= ?", opts.From)
		}
		if opts.To != "" {
			q = q.Where(dateCol+" <= ?", opts.To)
		}
	}
	if statusCol != "" && opts.Status != "" {
		q = q.Where(statusCol+" = ?", opts.Status)
	}
	return q
}

// refExists checks that a weak reference resolves to a row.
func refExists(tx *gorm.DB, model interface{}, col, id string) (bool, error) {
	var count int64
	if err := tx.Model(model).Where(col+" = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
