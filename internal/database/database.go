package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/khalsafoundry/pothi/internal/entities"
	"github.com/khalsafoundry/pothi/internal/logging"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate all entities
	err = db.AutoMigrate(
		&entities.Source{},
		&entities.Section{},
		&entities.Subsection{},
		&entities.Writer{},
		&entities.Language{},
		&entities.Publication{},
		&entities.LineType{},
		&entities.TranslationSource{},
		&entities.Shabad{},
		&entities.Line{},
		&entities.Content{},
		&entities.Translation{},
		&entities.Transliteration{},
		&entities.Bani{},
		&entities.BaniLine{},
		&entities.CompileRun{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logging.Info("database initialized", "path", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
