package storage

import (
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Collection is the single backing table: one row per collection key, the
// whole collection serialized into Value.
type Collection struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}

// GormStore persists collections to a sqlite database through gorm.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the collections table and returns the store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Collection{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

// Load reads and unmarshals one collection. A missing row, or a row whose
// value no longer parses, both come back as ErrNotFound so the caller falls
// back to defaults; a corrupt collection must not take the others down.
func (s *GormStore) Load(key string, out any) error {
	var row Collection
	if err := s.db.First(&row, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		logrus.WithError(err).WithField("key", key).Warn("storage: load failed")
		return ErrNotFound
	}
	if err := json.Unmarshal([]byte(row.Value), out); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("storage: malformed collection value")
		return ErrNotFound
	}
	return nil
}

// Save replaces one collection's value.
func (s *GormStore) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.db.Save(&Collection{Key: key, Value: string(raw)}).Error
}
