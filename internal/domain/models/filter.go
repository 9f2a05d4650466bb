package models

import (
	"fmt"
	"strings"
	"time"
)

// AllMonths selects every month of the filtered year.
const AllMonths = -1

// ArrivalFilter restricts records by the arrival state of their product.
type ArrivalFilter string

const (
	ArrivalAll        ArrivalFilter = "ALL"
	ArrivalArrived    ArrivalFilter = "ARRIVED"
	ArrivalNotArrived ArrivalFilter = "NOT_ARRIVED"
)

// ParseArrivalFilter maps a case-insensitive name onto an ArrivalFilter, empty meaning ALL.
func ParseArrivalFilter(value string) (ArrivalFilter, error) {
	switch ArrivalFilter(strings.ToUpper(strings.TrimSpace(value))) {
	case "", ArrivalAll:
		return ArrivalAll, nil
	case ArrivalArrived:
		return ArrivalArrived, nil
	case ArrivalNotArrived:
		return ArrivalNotArrived, nil
	default:
		return "", fmt.Errorf("unknown arrival filter %q", value)
	}
}

// FilterSpec selects the production records shown on the dashboard.
type FilterSpec struct {
	Year    int           `json:"year"`
	Month   int           `json:"month"` // 1-12, or AllMonths
	Search  string        `json:"search,omitempty"`
	Type    VideoType     `json:"type,omitempty"` // empty means any type
	Arrival ArrivalFilter `json:"arrival"`
}

// Period is a month of a year, or a whole year when Month is AllMonths.
type Period struct {
	Year  int `bson:"year" json:"year"`
	Month int `bson:"month" json:"month"`
}

// PeriodOf returns the monthly period containing t.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: int(t.Month())}
}

// Validate checks the month range.
func (p Period) Validate() error {
	if p.Month == AllMonths {
		return nil
	}
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("month %d out of range", p.Month)
	}
	return nil
}

// IsWholeYear reports whether the period spans the full year.
func (p Period) IsWholeYear() bool {
	return p.Month == AllMonths
}

// Shift moves the period by delta months, wrapping the year.
// A whole-year period moves by whole years.
func (p Period) Shift(delta int) Period {
	if p.IsWholeYear() {
		return Period{Year: p.Year + delta, Month: AllMonths}
	}
	index := p.Year*12 + (p.Month - 1) + delta
	year := index / 12
	month := index%12 + 1
	if index < 0 && index%12 != 0 {
		year--
		month += 12
	}
	return Period{Year: year, Month: month}
}

// Filter builds a FilterSpec for the period with no further restrictions.
func (p Period) Filter() FilterSpec {
	return FilterSpec{Year: p.Year, Month: p.Month, Arrival: ArrivalAll}
}

// Label renders the period the way the dashboard header shows it.
func (p Period) Label() string {
	if p.IsWholeYear() {
		return fmt.Sprintf("%d TÜM YIL", p.Year)
	}
	return fmt.Sprintf("%s %d", MonthName(time.Month(p.Month)), p.Year)
}

var monthNamesTR = [...]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

// MonthName returns the Turkish name of m.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNamesTR[m-1]
}
