package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/beesaferoot/property-leasing/commands"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:          "leasing",
		Short:        "Property leasing: properties, clients, rentals and payments",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		commands.InitCmd(),
		commands.PropertyCmd(),
		commands.ClientCmd(),
		commands.RentCmd(),
		commands.RentalCmd(),
		commands.PayCmd(),
		commands.DueCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
