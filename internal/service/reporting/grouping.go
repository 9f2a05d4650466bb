package reporting

import (
	"strconv"
	"strings"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
)

// GroupByWeek partitions a date-sorted list into runs sharing a week label.
// It is a single pass: a new group opens whenever the label changes, so an
// unsorted input can yield the same label twice in non-adjacent groups.
func GroupByWeek(sorted []models.ProductionRecord) []models.WeeklyGroup {
	groups := make([]models.WeeklyGroup, 0)

	var (
		currentLabel string
		current      []models.ProductionRecord
	)
	flush := func() {
		if len(current) == 0 {
			return
		}
		groups = append(groups, newWeeklyGroup(currentLabel, current))
	}

	for _, record := range sorted {
		label := WeekLabel(record.Date)
		if label != currentLabel {
			flush()
			currentLabel = label
			current = []models.ProductionRecord{record}
			continue
		}
		current = append(current, record)
	}
	flush()

	return groups
}

func newWeeklyGroup(label string, items []models.ProductionRecord) models.WeeklyGroup {
	totals := SumByType(items)
	return models.WeeklyGroup{
		Label:      label,
		Start:      WeekStart(items[0].Date),
		End:        WeekEnd(items[0].Date),
		Items:      items,
		Summary:    FormatSummary(totals),
		TypeTotals: totals,
	}
}

// SumByType sums quantities per type over active records, in first-seen order.
func SumByType(records []models.ProductionRecord) []models.TypeTotal {
	totals := make([]models.TypeTotal, 0)
	index := make(map[models.VideoType]int)
	for _, record := range records {
		if !models.IsActive(record) {
			continue
		}
		i, ok := index[record.Type]
		if !ok {
			i = len(totals)
			index[record.Type] = i
			totals = append(totals, models.TypeTotal{Type: record.Type})
		}
		totals[i].Quantity += record.Quantity
	}
	return totals
}

// FormatSummary renders totals as "2 Video, 1 Animasyon".
func FormatSummary(totals []models.TypeTotal) string {
	parts := make([]string, 0, len(totals))
	for _, t := range totals {
		parts = append(parts, strconv.Itoa(t.Quantity)+" "+string(t.Type))
	}
	return strings.Join(parts, ", ")
}
