package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"planner/internal/model"
)

// GormStore keeps documents in the kv_entries table through gorm.
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates the kv_entries table when it is missing
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(&model.KVEntry{})
}

// Get retrieves the document stored under key
func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry model.KVEntry
	result := s.db.WithContext(ctx).Where("key = ?", key).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, result.Error
	}
	return []byte(entry.Value), nil
}

// Set inserts or overwrites the document stored under key
func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	entry := model.KVEntry{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

// Delete removes the document stored under key
func (s *GormStore) Delete(ctx context.Context, key string) error {
	result := s.db.WithContext(ctx).Where("key = ?", key).Delete(&model.KVEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrKeyNotFound
	}
	return nil
}

// Scan retrieves every document whose key starts with prefix, ordered by key
func (s *GormStore) Scan(ctx context.Context, prefix string) ([]Entry, error) {
	var rows []model.KVEntry
	result := s.db.WithContext(ctx).
		Where(`key LIKE ? ESCAPE '\'`, escapeLike(prefix)+"%").
		Order("key").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry{Key: row.Key, Value: []byte(row.Value)})
	}
	return entries, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
