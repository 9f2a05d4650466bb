package reporting

import (
	"time"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
)

// CalendarMonth lays the active records of a month out on a Monday-first grid.
// Every day of the month is present, empty days included.
func CalendarMonth(records []models.ProductionRecord, year int, month time.Month) models.CalendarMonth {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cal := models.CalendarMonth{
		Year:          year,
		Month:         int(month),
		LeadingBlanks: (int(first.Weekday()) + 6) % 7,
		Days:          make([]models.CalendarDay, daysInMonth),
	}
	for i := range cal.Days {
		cal.Days[i] = models.CalendarDay{
			Date:  first.AddDate(0, 0, i),
			Items: make([]models.ProductionRecord, 0),
		}
	}

	for _, record := range records {
		if !models.IsActive(record) {
			continue
		}
		day := models.NormalizeDate(record.Date)
		if day.Year() != year || day.Month() != month {
			continue
		}
		cell := &cal.Days[day.Day()-1]
		cell.Items = append(cell.Items, record)
		cell.Quantity += record.Quantity
	}
	return cal
}
