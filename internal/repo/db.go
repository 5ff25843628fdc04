package repo

import (
	"fmt"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"clonestore/internal/model"
)

// searchTableDDL creates the full-text projection. It lives outside
// AutoMigrate because gorm cannot express virtual tables; the statement is
// idempotent like the rest of the schema.
const searchTableDDL = `CREATE VIRTUAL TABLE IF NOT EXISTS search USING fts5(id, type, createdBy, initials, labNotes, description, misc)`

// InitDB opens the embedded database file through the pure-Go SQLite driver
// and creates the schema idempotently.
func InitDB(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates all tables and the search index if they do not exist yet.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Plasmid{},
		&model.SelectionMarker{},
		&model.PlasmidFeature{},
		&model.PlasmidORF{},
		&model.Microorganism{},
		&model.GenericObject{},
		&model.StorageSlot{},
		&model.IDCounter{},
		&model.Printer{},
		&model.Session{},
	)
	if err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	if err := db.Exec(searchTableDDL).Error; err != nil {
		return fmt.Errorf("create search table: %w", err)
	}
	return nil
}
