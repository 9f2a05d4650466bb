package reporting

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
)

// RecordsInWeek selects the records falling in the Monday-Sunday window of date, sorted by date.
func RecordsInWeek(records []models.ProductionRecord, date time.Time) []models.ProductionRecord {
	start := WeekStart(date)
	end := start.AddDate(0, 0, 7)

	out := make([]models.ProductionRecord, 0)
	for _, record := range records {
		day := models.NormalizeDate(record.Date)
		if !day.Before(start) && day.Before(end) {
			out = append(out, record)
		}
	}
	slices.SortStableFunc(out, func(a, b models.ProductionRecord) int {
		return a.Date.Compare(b.Date)
	})
	return out
}

// WeekInvoice builds the billing breakdown of one week's records: invoiced active
// records, sorted by date, with per-line and total amounts.
func WeekInvoice(label string, items []models.ProductionRecord) models.WeekInvoice {
	invoice := models.WeekInvoice{
		Label:       label,
		Lines:       make([]models.InvoiceLine, 0),
		TotalAmount: decimal.Zero,
	}

	billed := make([]models.ProductionRecord, 0, len(items))
	for _, item := range items {
		if item.IsInvoiced && models.IsActive(item) {
			billed = append(billed, item)
		}
	}
	slices.SortStableFunc(billed, func(a, b models.ProductionRecord) int {
		return a.Date.Compare(b.Date)
	})

	for _, item := range billed {
		price, _ := models.UnitPrice(item.Type)
		amount := item.Amount()
		invoice.Lines = append(invoice.Lines, models.InvoiceLine{
			Date:      item.Date,
			Title:     item.Title,
			Type:      item.Type,
			Quantity:  item.Quantity,
			UnitPrice: price,
			Amount:    amount,
		})
		invoice.TotalQuantity += item.Quantity
		invoice.TotalAmount = invoice.TotalAmount.Add(amount)
	}
	return invoice
}

// WeekMissingProducts lists the active records of a week whose product has not arrived.
// Completion is not consulted: a finished job still shows if its product never came.
func WeekMissingProducts(label string, items []models.ProductionRecord) models.MissingProducts {
	missing := models.MissingProducts{Label: label, Items: make([]models.ProductionRecord, 0)}
	for _, item := range items {
		if item.ProductStatus == models.ProductNotArrived && models.IsActive(item) {
			missing.Items = append(missing.Items, item)
		}
	}
	return missing
}
