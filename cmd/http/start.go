package http

import (
	"log/slog"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/caresetu/caresetu_backend/config"
	"github.com/caresetu/caresetu_backend/internal/app"
	"github.com/caresetu/caresetu_backend/pkg/logs"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the API server",
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg := config.MustReadConfig(configPath)

		logger := logs.New(cfg)
		slog.SetDefault(logger)

		fxApp := fx.New(
			fx.Supply(cfg),
			app.InfraModule,
			app.ServiceModule,
			app.WorkerModule,
		)
		fxApp.Run()
	},
}
