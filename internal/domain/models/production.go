package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VideoType enumerates the billable work categories.
type VideoType string

const (
	TypeVideo      VideoType = "Video"
	TypeAnimation  VideoType = "Animasyon"
	TypeRedActual  VideoType = "Kırmızı Aktüel"
	TypeLowerThird VideoType = "Altbant"
	TypeLifestyle  VideoType = "Lifestyle"
)

// VideoTypes lists every work category in display order.
var VideoTypes = []VideoType{TypeVideo, TypeAnimation, TypeRedActual, TypeLowerThird, TypeLifestyle}

var unitPrices = map[VideoType]decimal.Decimal{
	TypeVideo:      decimal.NewFromInt(30000),
	TypeAnimation:  decimal.NewFromInt(20000),
	TypeRedActual:  decimal.NewFromInt(35000),
	TypeLowerThird: decimal.NewFromInt(20000),
	TypeLifestyle:  decimal.NewFromInt(30000),
}

// UnitPrice returns the fixed price of one deliverable of the given type.
// Unknown types report a zero price and false.
func UnitPrice(t VideoType) (decimal.Decimal, bool) {
	price, ok := unitPrices[t]
	if !ok {
		return decimal.Zero, false
	}
	return price, true
}

// Valid reports whether t belongs to the closed set of work categories.
func (t VideoType) Valid() bool {
	_, ok := unitPrices[t]
	return ok
}

// VideoStatus enumerates workflow states of a production record.
type VideoStatus string

const (
	StatusPlanned   VideoStatus = "Planlama"
	StatusShooting  VideoStatus = "Çekim"
	StatusEditing   VideoStatus = "Kurgu"
	StatusReview    VideoStatus = "Revize"
	StatusCompleted VideoStatus = "Tamamlandı"
	StatusCancelled VideoStatus = "Gelmedi"
	StatusRepeat    VideoStatus = "Tekrar"
)

// VideoStatuses lists every workflow state in pipeline order.
var VideoStatuses = []VideoStatus{
	StatusPlanned, StatusShooting, StatusEditing, StatusReview,
	StatusCompleted, StatusCancelled, StatusRepeat,
}

// Valid reports whether s is a known workflow state.
func (s VideoStatus) Valid() bool {
	for _, known := range VideoStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ProductStatus tracks whether the physical product needed for a shoot is on site.
type ProductStatus string

const (
	ProductNotArrived ProductStatus = "Gelmedi"
	ProductArrived    ProductStatus = "Geldi"
)

// Valid reports whether p is a known product state.
func (p ProductStatus) Valid() bool {
	return p == ProductArrived || p == ProductNotArrived
}

// Toggle flips between arrived and not arrived.
func (p ProductStatus) Toggle() ProductStatus {
	if p == ProductArrived {
		return ProductNotArrived
	}
	return ProductArrived
}

// ProductionRecord is one scheduled unit of work (a video, an animation, a lower-third...).
type ProductionRecord struct {
	ID            string        `bson:"_id" json:"id"`
	Date          time.Time     `bson:"date" json:"date"`
	Title         string        `bson:"title" json:"title"`
	Quantity      int           `bson:"quantity" json:"quantity"`
	Type          VideoType     `bson:"type" json:"type"`
	Status        VideoStatus   `bson:"status" json:"status"`
	ProductStatus ProductStatus `bson:"product_status" json:"product_status"`
	IsCompleted   bool          `bson:"is_completed" json:"is_completed"`
	IsInvoiced    bool          `bson:"is_invoiced" json:"is_invoiced"`
	IsPinned      bool          `bson:"is_pinned" json:"is_pinned"`
	Notes         string        `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
}

// Key returns the storage identifier.
// Key implements repository.Document.
func (r ProductionRecord) Key() string { return r.ID }

// WithKey returns a copy carrying the given storage identifier.
func (r ProductionRecord) WithKey(id string) ProductionRecord {
	r.ID = id
	return r
}

// IsActive reports whether the record takes part in counts and revenue.
// Cancelled and repeated work stays in storage but is invisible to every aggregate.
func IsActive(r ProductionRecord) bool {
	return r.Status != StatusCancelled && r.Status != StatusRepeat
}

// Amount is the billable value of the record: unit price times quantity.
func (r ProductionRecord) Amount() decimal.Decimal {
	price, _ := UnitPrice(r.Type)
	return price.Mul(decimal.NewFromInt(int64(r.Quantity)))
}

// NormalizeDate truncates t to its calendar day at 00:00 UTC.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
