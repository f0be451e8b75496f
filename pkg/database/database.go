package database

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tenders/internal/domain/entity"
)

func NewDBConnection(config *Config) (*gorm.DB, error) {
	dsn, err := BuildDSN(config)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(postgres.Open(dsn), GormConfig())
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database connection could not be obtained: %w", err)
	}
	if config.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	}
	if config.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	}
	if config.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)
	}

	log.Info().Msg("successfully connected to the database")

	return db, nil
}

func GormConfig() *gorm.Config {
	return &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	}
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates the enum types and brings every table up to date.
func Migrate(db *gorm.DB) error {
	for name, values := range entity.EnumTypes {
		if err := db.Exec(enumStatement(name, values)).Error; err != nil {
			return fmt.Errorf("create enum %s: %w", name, err)
		}
	}
	err := db.AutoMigrate(
		&entity.Employee{},
		&entity.Organization{},
		&entity.OrganizationResponsible{},
		&entity.Tender{},
		&entity.TenderVersion{},
		&entity.Bid{},
		&entity.BidVersion{},
		&entity.BidDecision{},
		&entity.BidFeedback{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

func enumStatement(name string, values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return fmt.Sprintf(
		"DO $$ BEGIN CREATE TYPE %s AS ENUM (%s); EXCEPTION WHEN duplicate_object THEN NULL; END $$;",
		name, strings.Join(quoted, ", "))
}
