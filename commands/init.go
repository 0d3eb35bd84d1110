package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the leasing tables and the picture directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				if a.cfg.PictureBackend == "dir" {
					if err := os.MkdirAll(a.cfg.PicturesDir, 0755); err != nil {
						return fmt.Errorf("failed to create picture directory: %w", err)
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Leasing database initialized (%s: %s)\n", a.cfg.DatabaseDriver, a.cfg.DatabaseURL)
				return nil
			})
		},
	}
}
