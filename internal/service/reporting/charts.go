package reporting

import (
	"slices"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
)

// ChartData derives the dashboard chart series from a filtered view.
// Only active records are charted.
func ChartData(records []models.ProductionRecord) models.Charts {
	return models.Charts{
		StatusDistribution: statusDistribution(records),
		TypeDistribution:   typeDistribution(records),
		Timeline:           timeline(records),
	}
}

func statusDistribution(records []models.ProductionRecord) []models.StatusCount {
	out := make([]models.StatusCount, 0)
	index := make(map[models.VideoStatus]int)
	for _, record := range records {
		if !models.IsActive(record) {
			continue
		}
		i, ok := index[record.Status]
		if !ok {
			i = len(out)
			index[record.Status] = i
			out = append(out, models.StatusCount{Status: record.Status})
		}
		out[i].Count++
	}
	return out
}

// typeDistribution sums quantities per type, largest first. Ties keep first-seen order.
func typeDistribution(records []models.ProductionRecord) []models.TypeTotal {
	totals := SumByType(records)
	slices.SortStableFunc(totals, func(a, b models.TypeTotal) int {
		return b.Quantity - a.Quantity
	})
	return totals
}

func timeline(records []models.ProductionRecord) []models.DailyVolume {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b models.ProductionRecord) int {
		return a.Date.Compare(b.Date)
	})

	out := make([]models.DailyVolume, 0)
	for _, record := range sorted {
		if !models.IsActive(record) {
			continue
		}
		day := models.NormalizeDate(record.Date)
		if len(out) == 0 || !out[len(out)-1].Date.Equal(day) {
			out = append(out, models.DailyVolume{Date: day})
		}
		point := &out[len(out)-1]
		point.Total += record.Quantity
		if record.IsCompleted {
			point.Completed += record.Quantity
		}
	}
	return out
}
