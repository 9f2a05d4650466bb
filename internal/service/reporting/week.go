package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
)

// WeekStart returns the Monday of the week containing date, at 00:00 UTC.
func WeekStart(date time.Time) time.Time {
	day := models.NormalizeDate(date)
	daysSinceMonday := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -daysSinceMonday)
}

// WeekEnd returns the Sunday closing the week containing date.
func WeekEnd(date time.Time) time.Time {
	return WeekStart(date).AddDate(0, 0, 6)
}

// WeekLabel renders the Monday-Sunday window of date, e.g. "3 HAZIRAN - 9 HAZIRAN HAFTASI".
func WeekLabel(date time.Time) string {
	start := WeekStart(date)
	end := start.AddDate(0, 0, 6)
	label := fmt.Sprintf("%d %s - %d %s HAFTASI",
		start.Day(), models.MonthName(start.Month()),
		end.Day(), models.MonthName(end.Month()),
	)
	return strings.ToUpper(label)
}
