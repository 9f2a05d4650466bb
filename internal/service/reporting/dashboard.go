package reporting

import "github.com/1005Studio/1005ManagmentV02/internal/domain/models"

// Snapshot is one consistent read of the records every view is derived from.
type Snapshot struct {
	Records       []models.ProductionRecord
	Subscriptions []models.Subscription
}

// Compute derives every dashboard view from the same snapshot.
func Compute(snapshot Snapshot, filter models.FilterSpec) models.Dashboard {
	filtered := FilterRecords(snapshot.Records, filter)
	return models.Dashboard{
		Filter:  filter,
		Records: filtered,
		Weeks:   GroupByWeek(filtered),
		Stats:   ComputeStats(filtered),
		Totals:  ComputeTotals(filtered, snapshot.Subscriptions),
		Charts:  ChartData(filtered),
	}
}
