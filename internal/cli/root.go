// Package cli implements the studioctl operator commands.
package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
)

// Reporting serves the derived views printed by the commands.
type Reporting interface {
	Dashboard(ctx context.Context, filter models.FilterSpec) (*models.Dashboard, error)
	Week(ctx context.Context, date time.Time) (models.WeeklyGroup, error)
	WeekInvoice(ctx context.Context, date time.Time) (models.WeekInvoice, error)
	WeekMissing(ctx context.Context, date time.Time) (models.MissingProducts, error)
	Calendar(ctx context.Context, year int, month time.Month) (models.CalendarMonth, error)
}

// Periods reads and moves the active dashboard period.
type Periods interface {
	ActivePeriod(ctx context.Context) (models.Period, error)
	SetActivePeriod(ctx context.Context, period models.Period) (models.Period, error)
	ShiftMonth(ctx context.Context, delta int) (models.Period, error)
	ShiftYear(ctx context.Context, delta int) (models.Period, error)
	CompleteMonth(ctx context.Context) (models.Period, error)
}

// InvoiceExporter archives a weekly invoice.
type InvoiceExporter interface {
	Export(ctx context.Context, invoice models.WeekInvoice) error
}

// App holds the services the commands run against.
// Exporter and SendDigest are nil when their integrations are not configured.
type App struct {
	Reporting  Reporting
	Periods    Periods
	Exporter   InvoiceExporter
	SendDigest func(ctx context.Context) error
	Location   *time.Location
	Now        func() time.Time
}

// NewRootCmd creates the top-level "studioctl" command.
func NewRootCmd(app *App) *cobra.Command {
	if app.Location == nil {
		app.Location = time.UTC
	}
	if app.Now == nil {
		app.Now = time.Now
	}

	root := &cobra.Command{
		Use:           "studioctl",
		Short:         "Operate the 1005 Studio production dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newReportCmd(app),
		newWeekCmd(app),
		newMissingCmd(app),
		newInvoiceCmd(app),
		newCalendarCmd(app),
		newPeriodCmd(app),
		newDigestCmd(app),
	)

	return root
}

func (a *App) today() time.Time {
	return models.NormalizeDate(a.Now().In(a.Location))
}

// dateFlag parses a YYYY-MM-DD flag value, defaulting to today.
func (a *App) dateFlag(raw string) (time.Time, error) {
	if raw == "" {
		return a.today(), nil
	}
	return time.Parse("2006-01-02", raw)
}
