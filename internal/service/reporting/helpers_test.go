package reporting

import (
	"time"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

type recordOption func(*models.ProductionRecord)

func withStatus(s models.VideoStatus) recordOption {
	return func(r *models.ProductionRecord) { r.Status = s }
}

func invoiced() recordOption {
	return func(r *models.ProductionRecord) { r.IsInvoiced = true }
}

func completed() recordOption {
	return func(r *models.ProductionRecord) {
		r.IsCompleted = true
		r.Status = models.StatusCompleted
	}
}

func notArrived() recordOption {
	return func(r *models.ProductionRecord) { r.ProductStatus = models.ProductNotArrived }
}

func titled(title string) recordOption {
	return func(r *models.ProductionRecord) { r.Title = title }
}

func record(id, date string, t models.VideoType, qty int, opts ...recordOption) models.ProductionRecord {
	r := models.ProductionRecord{
		ID:            id,
		Date:          day(date),
		Title:         "Proje " + id,
		Quantity:      qty,
		Type:          t,
		Status:        models.StatusPlanned,
		ProductStatus: models.ProductArrived,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func ids(records []models.ProductionRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}
