package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"farmassist/entities"
)

// Open opens the sqlite store, migrates the schema and bounds the underlying
// connection pool. An exhausted pool queues callers on a free connection
// instead of failing.
func Open(path string, maxConns int) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Crop{},
		&entities.Solution{},
		&entities.Guide{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("db handle: %v", err)
	}
	if maxConns <= 0 {
		maxConns = 10
	}
	sqlDB.SetMaxOpenConns(maxConns)
	sqlDB.SetMaxIdleConns(maxConns)

	return db
}
