package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"lab-inventory/core/config"
	"lab-inventory/core/database"
	"lab-inventory/core/loader"
	"lab-inventory/core/logger"
	"lab-inventory/core/middleware/rayid"
	"lab-inventory/core/storage"

	"lab-inventory/feature/dashboard"
	"lab-inventory/feature/equipment"
	"lab-inventory/feature/reagent"
	"lab-inventory/feature/record"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "lab-inventory/docs/swagger"
)

// @title Lab Inventory API
// @version 1.0
// @description REST backend for the laboratory inventory tracker.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the inventory server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		logg.Info("Connected to inventory database",
			zap.String("driver", cfg.Database.Driver))

		// 4. Initialize Export Archive Storage (optional)
		var store storage.Client
		if cfg.Storage.Enabled {
			store, err = storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			logg.Info("Export archival enabled", zap.String("bucket", cfg.Storage.Bucket))
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// Middleware Registration
		// RayID first so everything downstream is traceable.
		app.Use(rayid.New())

		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.Server.AllowedOrigins(),
			AllowHeaders: "Origin, Content-Type, Accept",
			AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		}))

		// Request logging with Zap + RayID.
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 6. Register Features
		recorder := record.NewRecorder(db, logg)

		mgr := loader.NewManager()
		mgr.Register(dashboard.NewFeature(db, logg))
		mgr.Register(reagent.NewFeature(db, logg, recorder))
		mgr.Register(equipment.NewFeature(db, logg, recorder))
		mgr.Register(record.NewFeature(db, logg, store, cfg.Storage.Bucket))

		api := app.Group("/api")
		if err := mgr.LoadAll(api); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
