package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
)

const dateLayout = "2006-01-02"

// filterFromQuery builds a FilterSpec from year, month, search, type and arrival.
// Missing year or month fall back to the active period; month=all selects the whole year.
func filterFromQuery(c *gin.Context, active models.Period) (models.FilterSpec, error) {
	filter := models.FilterSpec{
		Year:   active.Year,
		Month:  active.Month,
		Search: c.Query("search"),
	}

	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return models.FilterSpec{}, fmt.Errorf("%w: year %q", errBadRequest, raw)
		}
		filter.Year = year
	}

	if raw := c.Query("month"); raw != "" {
		month, err := parseMonth(raw)
		if err != nil {
			return models.FilterSpec{}, err
		}
		filter.Month = month
	}

	if raw := c.Query("type"); raw != "" {
		t := models.VideoType(raw)
		if !t.Valid() {
			return models.FilterSpec{}, fmt.Errorf("%w: type %q", errBadRequest, raw)
		}
		filter.Type = t
	}

	arrival, err := models.ParseArrivalFilter(c.Query("arrival"))
	if err != nil {
		return models.FilterSpec{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	filter.Arrival = arrival

	return filter, nil
}

func parseMonth(raw string) (int, error) {
	if strings.EqualFold(raw, "all") {
		return models.AllMonths, nil
	}
	month, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: month %q", errBadRequest, raw)
	}
	if err := (models.Period{Month: month}).Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return month, nil
}

// dateFromQuery parses the date parameter, defaulting to today in loc.
func dateFromQuery(c *gin.Context, loc *time.Location, now time.Time) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return models.NormalizeDate(now.In(loc)), nil
	}
	return parseDate(raw)
}

func parseDate(raw string) (time.Time, error) {
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", errBadRequest, raw)
	}
	return date, nil
}
