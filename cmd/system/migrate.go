package system

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caresetu/caresetu_backend/config"
	"github.com/caresetu/caresetu_backend/pkg/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the ent schema to the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg := config.MustReadConfig(configPath)

		client, err := database.NewEntClient(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect: %w", err)
		}
		defer client.Close()

		if err := database.MigrateEnt(context.Background(), client); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		fmt.Println("schema migration complete")
		return nil
	},
}
