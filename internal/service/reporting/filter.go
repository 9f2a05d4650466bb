package reporting

import (
	"slices"
	"strings"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
)

// FilterRecords returns the records matching every criterion of filter, sorted by date.
// Records sharing a date keep their input order. The input slice is not modified.
func FilterRecords(records []models.ProductionRecord, filter models.FilterSpec) []models.ProductionRecord {
	search := strings.ToLower(filter.Search)

	out := make([]models.ProductionRecord, 0, len(records))
	for _, record := range records {
		if matches(record, filter, search) {
			out = append(out, record)
		}
	}

	slices.SortStableFunc(out, func(a, b models.ProductionRecord) int {
		return a.Date.Compare(b.Date)
	})
	return out
}

// Matches reports whether record satisfies every criterion of filter.
func Matches(record models.ProductionRecord, filter models.FilterSpec) bool {
	return matches(record, filter, strings.ToLower(filter.Search))
}

func matches(record models.ProductionRecord, filter models.FilterSpec, search string) bool {
	if record.Date.Year() != filter.Year {
		return false
	}
	if filter.Month != models.AllMonths && int(record.Date.Month()) != filter.Month {
		return false
	}
	if search != "" && !strings.Contains(strings.ToLower(record.Title), search) {
		return false
	}
	if filter.Type != "" && record.Type != filter.Type {
		return false
	}

	switch filter.Arrival {
	case models.ArrivalArrived:
		return record.ProductStatus == models.ProductArrived
	case models.ArrivalNotArrived:
		return record.ProductStatus == models.ProductNotArrived
	default:
		return true
	}
}
