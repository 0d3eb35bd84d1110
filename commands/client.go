package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func ClientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Inspect clients",
	}
	cmd.AddCommand(clientListCmd())
	return cmd
}

func clientListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List clients with their rentals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				clients, err := a.ctrl.Clients(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(clients) == 0 {
					fmt.Fprintln(out, "No clients found.")
					return nil
				}
				for _, c := range clients {
					fmt.Fprintf(out, "%d: %s\n", c.ID, c.ContactInfo())
					for _, r := range c.Rentals {
						name := fmt.Sprintf("property %d", r.PropertyID)
						if r.Property != nil {
							name = r.Property.DisplayName()
						}
						fmt.Fprintf(out, "    rental %d  %-40s  %s to %s  %s\n",
							r.ID, name, r.StartDate, r.EndDate, r.Status)
					}
				}
				return nil
			})
		},
	}
}
