package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
)

func newPeriodCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "period",
		Short: "Show or move the active dashboard period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			period, err := app.Periods.ActivePeriod(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), period.Label())
			return nil
		},
	}

	cmd.AddCommand(newPeriodSetCmd(app), newPeriodShiftCmd(app), newPeriodCompleteCmd(app))
	return cmd
}

func newPeriodSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set YEAR MONTH",
		Short: "Select a month (1-12) or the whole year (-1)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[0])
			}
			month, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid month %q", args[1])
			}

			period, err := app.Periods.SetActivePeriod(cmd.Context(), models.Period{Year: year, Month: month})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), period.Label())
			return nil
		},
	}
}

func newPeriodShiftCmd(app *App) *cobra.Command {
	var years bool

	cmd := &cobra.Command{
		Use:   "shift DELTA",
		Short: "Move the active period by DELTA months (or years with --years)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid delta %q", args[0])
			}

			shift := app.Periods.ShiftMonth
			if years {
				shift = app.Periods.ShiftYear
			}
			period, err := shift(cmd.Context(), delta)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), period.Label())
			return nil
		},
	}

	cmd.Flags().BoolVar(&years, "years", false, "shift by years instead of months")
	return cmd
}

func newPeriodCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete",
		Short: "Close the active month and move to the next one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			period, err := app.Periods.CompleteMonth(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), period.Label())
			return nil
		},
	}
}

func newDigestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "digest",
		Short: "Send the weekly digest now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.SendDigest == nil {
				return fmt.Errorf("digest delivery is not configured")
			}
			if err := app.SendDigest(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "digest sent")
			return nil
		},
	}
}
