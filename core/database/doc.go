// Package database handles database connections.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly
// configure connections to the inventory store. Postgres is the production
// driver; sqlite is supported so tests can run against an in-memory database
// through the same code path.
//
// # Connect
//
// The generic Connect function establishes a connection to the database. Schema
// ownership stays with the feature packages: each feature declares its GORM
// models and the migrate command runs AutoMigrate over all of them.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
