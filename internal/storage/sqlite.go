// Package storage implements the durable side of the store: a tiny key-value
// table in sqlite holding the invoice collection and the business profile as
// JSON blobs. Corrupt blobs are discarded, never surfaced: a broken payload
// costs the stored data under that key, not the application.
package storage

import (
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/diewo77/invoice-lite/internal/models"
)

// Storage keys. The version suffix leaves room for a future format change.
const (
	keyInvoices = "iml_invoices_v1"
	keyBusiness = "iml_business_v1"
)

// Record is one key-value row.
type Record struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value []byte `gorm:"not null"`
}

func (Record) TableName() string { return "kv_records" }

// SQLite is a store.Adapter backed by a sqlite database file.
type SQLite struct {
	db *gorm.DB
}

// Open opens (and if necessary creates) the database at dsn and ensures the
// kv table exists. Use "file:name?mode=memory&cache=shared" for tests.
func Open(dsn string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// ReadInvoices returns the stored invoice collection. A missing or corrupt
// payload yields an empty collection.
func (s *SQLite) ReadInvoices() ([]models.Invoice, error) {
	raw, err := s.read(keyInvoices)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []models.Invoice{}, nil
	}
	var invs []models.Invoice
	if err := json.Unmarshal(raw, &invs); err != nil {
		log.Warn().Err(err).Str("key", keyInvoices).Msg("discarding corrupt invoice payload")
		return []models.Invoice{}, nil
	}
	if invs == nil {
		invs = []models.Invoice{}
	}
	return invs, nil
}

// WriteInvoices replaces the stored invoice collection.
func (s *SQLite) WriteInvoices(invs []models.Invoice) error {
	if invs == nil {
		invs = []models.Invoice{}
	}
	raw, err := json.Marshal(invs)
	if err != nil {
		return err
	}
	return s.write(keyInvoices, raw)
}

// ReadProfile returns the stored business profile. A missing or corrupt
// payload yields the default profile.
func (s *SQLite) ReadProfile() (models.BusinessProfile, error) {
	raw, err := s.read(keyBusiness)
	if err != nil {
		return models.BusinessProfile{}, err
	}
	if raw == nil {
		return models.DefaultBusinessProfile(), nil
	}
	var p models.BusinessProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		log.Warn().Err(err).Str("key", keyBusiness).Msg("discarding corrupt profile payload")
		return models.DefaultBusinessProfile(), nil
	}
	return p.Normalized(), nil
}

// WriteProfile replaces the stored business profile.
func (s *SQLite) WriteProfile(p models.BusinessProfile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.write(keyBusiness, raw)
}

// ClearAll removes both keys, returning subsequent reads to their defaults.
func (s *SQLite) ClearAll() error {
	return s.db.Where("key IN ?", []string{keyInvoices, keyBusiness}).Delete(&Record{}).Error
}

func (s *SQLite) read(key string) ([]byte, error) {
	var rec Record
	err := s.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec.Value, nil
}

func (s *SQLite) write(key string, value []byte) error {
	rec := Record{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error
}
