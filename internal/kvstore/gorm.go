package kvstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is the row shape behind GormStore.
type KVEntry struct {
	Key   string `gorm:"primaryKey;size:255;column:key"`
	Value []byte `gorm:"column:value"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

// GormStore persists blobs in a relational table, one row per key. Used when
// STORAGE_BACKEND is postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_entries: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry KVEntry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return entry.Value, true, nil
}

func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	entry := KVEntry{Key: key, Value: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&entry).Error
}
