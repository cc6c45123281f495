package db

import (
	"log"
	"time"

	"fundraising-backend/internal/domain/allocation"
	"fundraising-backend/internal/domain/audit"
	"fundraising-backend/internal/domain/church"
	"fundraising-backend/internal/domain/donor"
	"fundraising-backend/internal/domain/payment"
	"fundraising-backend/internal/domain/pledge"
	"fundraising-backend/internal/domain/user"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

// OpenGormWithDialector exists so tests can swap in a mocked connection.
func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

// Migrate applies the full schema up front. Every column is known at
// deploy time; nothing probes the schema at request time.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&church.Church{},
		&church.Representative{},
		&donor.Donor{},
		&pledge.Pledge{},
		&payment.Payment{},
		&user.User{},
		&audit.Log{},
		&allocation.Batch{},
	)
}
