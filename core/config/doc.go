// Package config provides configuration management for the inventory service.
//
// It utilizes Viper for loading configuration from environment variables
// and a local .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, CORS origins)
//   - Database: Postgres connection details (sqlite for tests)
//   - Storage: S3/MinIO credentials for export archival
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
