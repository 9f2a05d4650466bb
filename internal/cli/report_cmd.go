package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
	"github.com/1005Studio/1005ManagmentV02/internal/service/reporting"
)

func newReportCmd(app *App) *cobra.Command {
	var (
		year, month           int
		search, kind, arrival string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the dashboard summary of a month or year",
		Long:  "Print the dashboard summary. Without --year/--month the active period is used; --month=-1 selects the whole year.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			period, err := app.Periods.ActivePeriod(ctx)
			if err != nil {
				return fmt.Errorf("loading active period: %w", err)
			}
			if cmd.Flags().Changed("year") {
				period.Year = year
			}
			if cmd.Flags().Changed("month") {
				period.Month = month
			}
			if err := period.Validate(); err != nil {
				return err
			}

			filter := period.Filter()
			filter.Search = search
			if kind != "" {
				filter.Type = models.VideoType(kind)
				if !filter.Type.Valid() {
					return fmt.Errorf("unknown type %q", kind)
				}
			}
			if filter.Arrival, err = models.ParseArrivalFilter(arrival); err != nil {
				return err
			}

			dashboard, err := app.Reporting.Dashboard(ctx, filter)
			if err != nil {
				return fmt.Errorf("computing dashboard: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), reporting.Digest(strings.ToUpper(period.Label()), dashboard))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "year to report")
	cmd.Flags().IntVar(&month, "month", 0, "month to report (1-12, -1 for the whole year)")
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive title filter")
	cmd.Flags().StringVar(&kind, "type", "", "work category filter")
	cmd.Flags().StringVar(&arrival, "arrival", "", "ALL, ARRIVED or NOT_ARRIVED")
	return cmd
}

func newWeekCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Print the week containing a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := app.dateFlag(date)
			if err != nil {
				return err
			}
			group, err := app.Reporting.Week(cmd.Context(), day)
			if err != nil {
				return fmt.Errorf("computing week: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), reporting.WeekDigest(group))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "any day of the week, YYYY-MM-DD (default today)")
	return cmd
}

func newMissingCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "missing",
		Short: "List the week's records whose product has not arrived",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := app.dateFlag(date)
			if err != nil {
				return err
			}
			missing, err := app.Reporting.WeekMissing(cmd.Context(), day)
			if err != nil {
				return fmt.Errorf("computing missing products: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), reporting.MissingDigest(missing))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "any day of the week, YYYY-MM-DD (default today)")
	return cmd
}

func newInvoiceCmd(app *App) *cobra.Command {
	var (
		date   string
		export bool
	)

	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Print the billing breakdown of a week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if export && app.Exporter == nil {
				return fmt.Errorf("invoice export is not configured")
			}

			day, err := app.dateFlag(date)
			if err != nil {
				return err
			}
			invoice, err := app.Reporting.WeekInvoice(cmd.Context(), day)
			if err != nil {
				return fmt.Errorf("computing invoice: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, invoice.Label)
			for _, line := range invoice.Lines {
				fmt.Fprintf(out, "%s  %-30s %-15s %3d x %s = %s\n",
					line.Date.Format("02.01.2006"), line.Title, line.Type, line.Quantity,
					reporting.FormatAmount(line.UnitPrice), reporting.FormatAmount(line.Amount))
			}
			fmt.Fprintf(out, "TOPLAM: %d adet, %s\n", invoice.TotalQuantity, reporting.FormatAmount(invoice.TotalAmount))

			if export {
				if err := app.Exporter.Export(cmd.Context(), invoice); err != nil {
					return fmt.Errorf("exporting invoice: %w", err)
				}
				fmt.Fprintln(out, "exported")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "any day of the week, YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&export, "export", false, "append the breakdown to the invoice spreadsheet")
	return cmd
}

func newCalendarCmd(app *App) *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print the scheduled quantity of every day of a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			today := app.today()
			if !cmd.Flags().Changed("year") {
				year = today.Year()
			}
			if !cmd.Flags().Changed("month") {
				month = int(today.Month())
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("month %d out of range", month)
			}

			grid, err := app.Reporting.Calendar(cmd.Context(), year, time.Month(month))
			if err != nil {
				return fmt.Errorf("computing calendar: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %d\n", models.MonthName(time.Month(grid.Month)), grid.Year)
			for _, day := range grid.Days {
				if day.Quantity == 0 {
					continue
				}
				titles := make([]string, 0, len(day.Items))
				for _, item := range day.Items {
					titles = append(titles, item.Title)
				}
				fmt.Fprintf(out, "%s  %2d  %s\n", day.Date.Format("02.01"), day.Quantity, strings.Join(titles, ", "))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "calendar year (default current)")
	cmd.Flags().IntVar(&month, "month", 0, "calendar month 1-12 (default current)")
	return cmd
}
