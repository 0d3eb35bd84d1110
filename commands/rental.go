package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/property-leasing/models"
)

func RentalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rental",
		Short: "Manage rentals",
	}
	cmd.AddCommand(rentalListCmd(), rentalEndCmd(), rentalSweepCmd())
	return cmd
}

func rentalListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List currently rented properties, or every rental of one client",
		RunE: func(cmd *cobra.Command, args []string) error {
			clientID, _ := cmd.Flags().GetString("client")

			return withApp(cmd, func(a *app) error {
				var (
					rentals []models.Rental
					err     error
				)
				if clientID != "" {
					id, perr := parseID("client", clientID)
					if perr != nil {
						return perr
					}
					rentals, err = a.ctrl.RentalsForClient(cmd.Context(), id)
				} else {
					rentals, err = a.ctrl.ActiveRentals(cmd.Context())
				}
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(rentals) == 0 {
					fmt.Fprintln(out, "No rentals found.")
					return nil
				}
				today := a.ctrl.Today()
				fmt.Fprintf(out, "%-6s  %-40s  %-20s  %-10s  %-10s  %-8s  %s\n",
					"ID", "Property", "Client", "Start", "End", "Status", "Days left")
				for _, r := range rentals {
					fmt.Fprintf(out, "%-6d  %-40s  %-20s  %-10s  %-10s  %-8s  %d\n",
						r.ID, propertyName(r), clientName(r), r.StartDate, r.EndDate, r.Status, max(r.RemainingDays(today), 0))
				}
				return nil
			})
		},
	}
	cmd.Flags().String("client", "", "Client ID whose rentals to list")
	return cmd
}

func rentalEndCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end [id]",
		Short: "End a rental and make its property available",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("rental", args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, func(a *app) error {
				r, err := a.ctrl.EndRental(cmd.Context(), id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Rental %d ended, %s is available again\n", r.ID, r.Property.DisplayName())
				return nil
			})
		},
	}
}

func rentalSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "End every active rental whose end date has passed",
		RunE: func(cmd *cobra.Command, args []string) error {
			asOfFlag, _ := cmd.Flags().GetString("as-of")
			return withApp(cmd, func(a *app) error {
				asOf, err := orToday(a, asOfFlag)
				if err != nil {
					return err
				}
				ended, err := a.ctrl.EndExpired(cmd.Context(), asOf)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, r := range ended {
					fmt.Fprintf(out, "Rental %d ended (end date %s)\n", r.ID, r.EndDate)
				}
				fmt.Fprintf(out, "%d rental(s) ended as of %s\n", len(ended), asOf)
				return nil
			})
		},
	}
	cmd.Flags().String("as-of", "", "Reference date (YYYY-MM-DD), defaults to today")
	return cmd
}

func propertyName(r models.Rental) string {
	if r.Property == nil {
		return fmt.Sprintf("property %d", r.PropertyID)
	}
	return r.Property.DisplayName()
}

func clientName(r models.Rental) string {
	if r.Client == nil {
		return fmt.Sprintf("client %d", r.ClientID)
	}
	return r.Client.Name
}
