package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/property-leasing/lifecycle"
	"github.com/beesaferoot/property-leasing/models"
)

func RentCmd() *cobra.Command {
	var (
		clientID                          string
		name, email, phone, address, note string
		start, end, method, frequency     string
	)

	cmd := &cobra.Command{
		Use:   "rent [property-id]",
		Short: "Rent a property to a new or existing client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			propertyID, err := parseID("property", args[0])
			if err != nil {
				return err
			}

			client := &models.Client{}
			if clientID != "" {
				if client.ID, err = parseID("client", clientID); err != nil {
					return err
				}
			} else if client, err = models.NewClient(name, email, phone, address, note); err != nil {
				return err
			}

			req := lifecycle.RentRequest{
				PropertyID:       propertyID,
				Client:           client,
				PaymentMethod:    models.PaymentMethod(method),
				PaymentFrequency: models.Frequency(frequency),
			}
			if req.StartDate, err = models.ParseDate(start); err != nil {
				return err
			}
			if req.EndDate, err = models.ParseDate(end); err != nil {
				return err
			}

			return withApp(cmd, func(a *app) error {
				r, err := a.ctrl.Rent(cmd.Context(), req)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Rental %d created: %s rented to %s\n", r.ID, r.Property.DisplayName(), r.Client.Name)
				fmt.Fprintf(out, "Duration: %d months | Total: %s | Next due: %s\n",
					r.DurationMonths, r.TotalAmount.StringFixed(2), r.NextDueDate)
				return nil
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&clientID, "client-id", "", "Existing client ID")
	flags.StringVar(&name, "name", "", "New client name")
	flags.StringVar(&email, "email", "", "New client email")
	flags.StringVar(&phone, "phone", "", "New client phone")
	flags.StringVar(&address, "client-address", "", "New client address")
	flags.StringVar(&note, "notes", "", "New client notes")
	flags.StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	flags.StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	flags.StringVar(&method, "method", string(models.Cash), "Payment method (cash, credit_card, bank_transfer, check)")
	flags.StringVar(&frequency, "frequency", string(models.Monthly), "Payment frequency (monthly or yearly)")
	return cmd
}
