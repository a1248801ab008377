package cli

import (
	"coursehub/config"
	"coursehub/database"
	"coursehub/database/seed"
	"coursehub/logging"

	"github.com/spf13/cobra"
)

var migrateCommand = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Run: func(cmd *cobra.Command, args []string) {
		database.ConnectDb(config.AppConfig)
		if err := database.Migrate(database.Database.Db); err != nil {
			logging.Fatal().Err(err).Msg("Failed to migrate database")
		}
	},
}

var seedCommand = &cobra.Command{
	Use:   "seed",
	Short: "Load demo users and courses",
	Long:  "Migrates the schema and loads the demo admin, author and student accounts with two published courses. Safe to run repeatedly.",
	Run: func(cmd *cobra.Command, args []string) {
		database.ConnectDb(config.AppConfig)
		db := database.Database.Db
		if err := database.Migrate(db); err != nil {
			logging.Fatal().Err(err).Msg("Failed to migrate database")
		}
		if err := seed.Run(db); err != nil {
			logging.Fatal().Err(err).Msg("Failed to seed database")
		}
		logging.Info().Msg("Seed completed")
	},
}

func init() {
	RootCommand.AddCommand(migrateCommand)
	RootCommand.AddCommand(seedCommand)
}
