// Package db opens the application's persistent store.
package db

import (
	"fmt"
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hr_backend/internal/config"
	authentity "hr_backend/internal/feature/auth/domain/entity"
	employeeentity "hr_backend/internal/feature/employees/domain/entity"
)

// connectDeadline bounds the startup retry loop.
const connectDeadline = 60 * time.Second

// BuildDSN assembles the Postgres connection string from config.
func BuildDSN(cfg *config.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
}

// OpenDB connects to Postgres, retrying until the deadline in case the
// database container is still coming up. With RUN_MIGRATIONS=true it also
// migrates the schema. Unrecoverable failures are fatal: the process is
// useless without its store.
func OpenDB(cfg *config.Config) *gorm.DB {
	dsn := BuildDSN(cfg)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(connectDeadline)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after %v: %v", connectDeadline, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(
			&authentity.User{},
			&employeeentity.Employee{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
