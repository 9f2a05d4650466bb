package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
)

// ComputeStats counts the records of a filtered view. Cancelled and repeated
// records are left out of every counter.
func ComputeStats(records []models.ProductionRecord) models.Stats {
	stats := models.Stats{TypeCounts: make(map[models.VideoType]int)}

	for _, record := range records {
		// Completed already rules out cancelled and repeated work.
		if record.Status == models.StatusCompleted && !record.IsInvoiced {
			stats.PendingInvoiceCount++
		}

		if !models.IsActive(record) {
			continue
		}

		stats.ActiveTotal++
		stats.TypeCounts[record.Type]++

		switch record.ProductStatus {
		case models.ProductArrived:
			stats.ArrivedCount++
		case models.ProductNotArrived:
			stats.NotArrivedCount++
			if !record.IsCompleted {
				stats.MissingProductCount++
			}
		}
	}

	return stats
}

// InvoicedAmount sums price times quantity over active, invoiced records.
func InvoicedAmount(records []models.ProductionRecord) decimal.Decimal {
	total := decimal.Zero
	for _, record := range records {
		if record.IsInvoiced && models.IsActive(record) {
			total = total.Add(record.Amount())
		}
	}
	return total
}

// MonthlySubscriptionCost sums the monthly-equivalent cost of every subscription.
func MonthlySubscriptionCost(subscriptions []models.Subscription) decimal.Decimal {
	total := decimal.Zero
	for _, sub := range subscriptions {
		total = total.Add(sub.MonthlyCost())
	}
	return total
}

// ComputeTotals derives revenue, subscription cost and net profit. Amounts are not rounded.
func ComputeTotals(records []models.ProductionRecord, subscriptions []models.Subscription) models.Totals {
	revenue := InvoicedAmount(records)
	cost := MonthlySubscriptionCost(subscriptions)
	return models.Totals{
		TotalInvoiceAmount:      revenue,
		MonthlySubscriptionCost: cost,
		NetProfit:               revenue.Sub(cost),
	}
}
