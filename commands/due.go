package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/property-leasing/schedule"
)

func DueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "due",
		Short: "Show rentals and payments falling due",
		RunE: func(cmd *cobra.Command, args []string) error {
			asOfFlag, _ := cmd.Flags().GetString("as-of")
			window, _ := cmd.Flags().GetInt("window")

			return withApp(cmd, func(a *app) error {
				asOf, err := orToday(a, asOfFlag)
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("window") {
					window = a.cfg.DueWindowDays
				}

				rentals, err := a.ctrl.DueRentals(cmd.Context(), asOf, window)
				if err != nil {
					return err
				}
				payments, err := a.ctrl.DuePayments(cmd.Context(), asOf)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Rentals due within %d days of %s:\n", window, asOf)
				if len(rentals) == 0 {
					fmt.Fprintln(out, "  none")
				}
				for _, r := range rentals {
					fmt.Fprintf(out, "  rental %-4d  %-40s  %-20s  due %s (%d days)\n",
						r.ID, propertyName(r), clientName(r), r.NextDueDate, r.DaysUntilDue(asOf))
				}

				fmt.Fprintf(out, "Payments due as of %s:\n", asOf)
				if len(payments) == 0 {
					fmt.Fprintln(out, "  none")
				}
				for _, p := range payments {
					client := fmt.Sprintf("client %d", p.ClientID)
					if p.Client != nil {
						client = p.Client.Name
					}
					fmt.Fprintf(out, "  payment %-4d  %-20s  %s  due %s (%d days overdue)\n",
						p.ID, client, p.Amount.StringFixed(2), p.NextDue, schedule.DaysBetween(p.NextDue, asOf))
				}
				return nil
			})
		},
	}

	cmd.Flags().String("as-of", "", "Reference date (YYYY-MM-DD), defaults to today")
	cmd.Flags().Int("window", 30, "Days ahead to look for rental due dates")
	return cmd
}
