package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LedgerBlob is the single-row table holding the serialized ledger state.
type LedgerBlob struct {
	Namespace string    `gorm:"primaryKey"`
	Data      []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// SQLiteAdapter stores the ledger blob in a local SQLite database.
type SQLiteAdapter struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) the database at path and migrates the blob
// table. Use ":memory:" for an ephemeral store.
func OpenSQLite(path string) (*SQLiteAdapter, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger database: %w", err)
	}
	if err := db.AutoMigrate(&LedgerBlob{}); err != nil {
		return nil, fmt.Errorf("failed to migrate ledger database: %w", err)
	}
	return &SQLiteAdapter{db: db}, nil
}

// Save upserts the blob under the fixed namespace.
func (a *SQLiteAdapter) Save(data []byte) error {
	blob := LedgerBlob{
		Namespace: Namespace,
		Data:      data,
		UpdatedAt: time.Now(),
	}
	return a.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&blob).Error
}

// Load returns the stored blob, or (nil, nil) when no save exists yet.
func (a *SQLiteAdapter) Load() ([]byte, error) {
	var blob LedgerBlob
	err := a.db.First(&blob, "namespace = ?", Namespace).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return blob.Data, nil
}

// Close closes the underlying database connection.
func (a *SQLiteAdapter) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
