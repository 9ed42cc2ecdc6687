package system

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caresetu/caresetu_backend/config"
	"github.com/caresetu/caresetu_backend/pkg/database"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the application database if it does not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg := config.MustReadConfig(configPath)

		if err := database.InitializeDatabase(cfg); err != nil {
			return err
		}

		fmt.Printf("database %q is ready\n", cfg.Database.DBName)
		return nil
	},
}
