package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/property-leasing/lifecycle"
	"github.com/beesaferoot/property-leasing/models"
)

func PayCmd() *cobra.Command {
	var clientID, propertyID, amount, paidOn, frequency, notes string

	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Record a payment received from a client",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := lifecycle.PaymentRequest{
				Frequency: models.Frequency(frequency),
				Notes:     notes,
			}
			var err error
			if req.ClientID, err = parseID("client", clientID); err != nil {
				return err
			}
			if propertyID != "" {
				id, err := parseID("property", propertyID)
				if err != nil {
					return err
				}
				req.PropertyID = &id
			}
			if req.Amount, err = parseAmount("amount", amount); err != nil {
				return err
			}
			if req.PaidOn, err = parseOptionalDate(paidOn); err != nil {
				return err
			}

			return withApp(cmd, func(a *app) error {
				p, err := a.ctrl.RecordPayment(cmd.Context(), req)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Payment %d recorded (receipt %s): %s paid on %s, next payment due %s\n",
					p.ID, p.Reference, p.Amount.StringFixed(2), p.PaidOn, p.NextDue)
				return nil
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&clientID, "client-id", "", "Paying client ID")
	flags.StringVar(&propertyID, "property-id", "", "Property the payment is for")
	flags.StringVar(&amount, "amount", "", "Amount received")
	flags.StringVar(&paidOn, "paid-on", "", "Payment date (YYYY-MM-DD), defaults to today")
	flags.StringVar(&frequency, "frequency", string(models.Monthly), "Payment frequency (monthly or yearly)")
	flags.StringVar(&notes, "notes", "", "Notes")
	_ = cmd.MarkFlagRequired("client-id")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
