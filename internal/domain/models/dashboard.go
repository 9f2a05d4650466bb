package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TypeTotal is the quantity of one work category inside a week.
type TypeTotal struct {
	Type     VideoType `json:"type"`
	Quantity int       `json:"quantity"`
}

// WeeklyGroup is a contiguous run of records that fall in the same Monday-Sunday window.
type WeeklyGroup struct {
	Label      string             `json:"label"`
	Start      time.Time          `json:"start"`
	End        time.Time          `json:"end"`
	Items      []ProductionRecord `json:"items"`
	Summary    string             `json:"summary"`
	TypeTotals []TypeTotal        `json:"type_totals"`
}

// Stats holds the record counters of a filtered view.
type Stats struct {
	ActiveTotal         int               `json:"active_total"`
	ArrivedCount        int               `json:"arrived_count"`
	NotArrivedCount     int               `json:"not_arrived_count"`
	TypeCounts          map[VideoType]int `json:"type_counts"`
	PendingInvoiceCount int               `json:"pending_invoice_count"`
	MissingProductCount int               `json:"missing_product_count"`
}

// Totals holds the financial figures of a filtered view, in the base currency.
type Totals struct {
	TotalInvoiceAmount      decimal.Decimal `json:"total_invoice_amount"`
	MonthlySubscriptionCost decimal.Decimal `json:"monthly_subscription_cost"`
	NetProfit               decimal.Decimal `json:"net_profit"`
}

// StatusCount is one slice of the status distribution chart.
type StatusCount struct {
	Status VideoStatus `json:"status"`
	Count  int         `json:"count"`
}

// DailyVolume is one point of the production timeline chart.
type DailyVolume struct {
	Date      time.Time `json:"date"`
	Total     int       `json:"total"`
	Completed int       `json:"completed"`
}

// Charts is the data behind the dashboard charts.
type Charts struct {
	StatusDistribution []StatusCount `json:"status_distribution"`
	TypeDistribution   []TypeTotal   `json:"type_distribution"`
	Timeline           []DailyVolume `json:"timeline"`
}

// Dashboard bundles every view derived from one snapshot and one filter.
type Dashboard struct {
	Filter      FilterSpec         `json:"filter"`
	Records     []ProductionRecord `json:"records"`
	Weeks       []WeeklyGroup      `json:"weeks"`
	Stats       Stats              `json:"stats"`
	Totals      Totals             `json:"totals"`
	Charts      Charts             `json:"charts"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// InvoiceLine is one billed row of a weekly invoice.
type InvoiceLine struct {
	Date      time.Time       `json:"date"`
	Title     string          `json:"title"`
	Type      VideoType       `json:"type"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Amount    decimal.Decimal `json:"amount"`
}

// WeekInvoice is the billing breakdown of one week.
type WeekInvoice struct {
	Label         string          `json:"label"`
	Lines         []InvoiceLine   `json:"lines"`
	TotalQuantity int             `json:"total_quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// MissingProducts lists the records of one week still waiting for their product.
type MissingProducts struct {
	Label string             `json:"label"`
	Items []ProductionRecord `json:"items"`
}

// CalendarDay is the set of active records scheduled on one day.
type CalendarDay struct {
	Date     time.Time          `json:"date"`
	Quantity int                `json:"quantity"`
	Items    []ProductionRecord `json:"items"`
}

// CalendarMonth is a Monday-first month grid.
type CalendarMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	// LeadingBlanks is the number of empty cells before the 1st in a Monday-first grid.
	LeadingBlanks int           `json:"leading_blanks"`
	Days          []CalendarDay `json:"days"`
}
