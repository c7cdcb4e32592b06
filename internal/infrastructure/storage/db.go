package storage

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to the sqlite database at path and runs migrations.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the food_library and meals tables and backfills any columns
// missing from databases created by older builds. Adding columns is
// idempotent: existing ones are left alone, so running this repeatedly is
// safe.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&foodRow{}, &mealRow{}); err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}

	for _, model := range []interface{}{&foodRow{}, &mealRow{}} {
		if err := ensureColumns(db, model); err != nil {
			return err
		}
	}
	return nil
}

// ensureColumns adds every schema column that is absent from the live table.
func ensureColumns(db *gorm.DB, model interface{}) error {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return fmt.Errorf("failed to parse model schema: %w", err)
	}

	migrator := db.Migrator()
	for _, field := range stmt.Schema.Fields {
		if field.DBName == "" {
			continue
		}
		if migrator.HasColumn(model, field.DBName) {
			continue
		}
		if err := migrator.AddColumn(model, field.DBName); err != nil {
			return fmt.Errorf("failed to add column %s.%s: %w", stmt.Schema.Table, field.DBName, err)
		}
	}
	return nil
}
