// Package cli holds the coursehub command tree. Running the binary with no
// subcommand serves the API.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coursehub/config"
	"coursehub/database"
	"coursehub/logging"
	"coursehub/server"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var migrateOnStart bool

var RootCommand = &cobra.Command{
	Use:   "coursehub",
	Short: "Run the coursehub API",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadConfig()
		logging.Setup(config.AppConfig)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.AppConfig
		database.ConnectDb(cfg)
		if migrateOnStart {
			if err := database.Migrate(database.Database.Db); err != nil {
				logging.Fatal().Err(err).Msg("Failed to migrate database")
			}
		}

		app := server.NewApp(cfg)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		go func() {
			<-ctx.Done()
			logging.Info().Msg("Shutting down the server")
			if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
				logging.Warn().Err(err).Msg("Server did not shut down gracefully")
			}
		}()

		logging.Info().Str("port", cfg.Port).Msg("Serving the API")
		if err := app.Listen(":" + cfg.Port); err != nil {
			logging.Fatal().Err(err).Msg("Server shut down unexpectedly")
		}
	},
}

func init() {
	RootCommand.Flags().BoolVar(&migrateOnStart, "migrate", true, "run migrations before serving")
}

func Execute() {
	if err := RootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
