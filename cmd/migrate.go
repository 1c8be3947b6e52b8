package cmd

import (
	"log"

	"lab-inventory/core/config"
	"lab-inventory/core/database"
	"lab-inventory/core/logger"

	equipmentmodels "lab-inventory/feature/equipment/models"
	reagentmodels "lab-inventory/feature/reagent/models"
	recordmodels "lab-inventory/feature/record/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the inventory schema",
	Long:  `Runs GORM AutoMigrate for all inventory tables against the configured database.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}

		err = db.AutoMigrate(
			&reagentmodels.Reagent{},
			&reagentmodels.ReagentBatch{},
			&equipmentmodels.Equipment{},
			&equipmentmodels.MaintenanceLog{},
			&recordmodels.Record{},
		)
		if err != nil {
			logg.Fatal("Migration failed", zap.Error(err))
		}

		logg.Info("Migration complete")
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
