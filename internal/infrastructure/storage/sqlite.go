package storage

import (
	"context"
	"errors"
	"fmt"
	"sandbox-core/pkg/logger"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// KeyValue - строка таблицы настроек
type KeyValue struct {
	Key       string `gorm:"primaryKey;column:name;size:128"`
	Value     string
	UpdatedAt time.Time
}

// SQLiteStore - key/value поверх SQLite (чистый Go драйвер, без cgo)
type SQLiteStore struct {
	db *gorm.DB
}

// OpenSQLite открывает файл базы. Пустой путь - база в памяти.
func OpenSQLite(path string) (*SQLiteStore, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", dsn, err)
	}
	if err := db.AutoMigrate(&KeyValue{}); err != nil {
		return nil, fmt.Errorf("migrate key/value table: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "storage",
		"driver":    "sqlite",
		"path":      dsn,
	}).Info("Key/value store opened.")
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	var kv KeyValue
	err := s.db.WithContext(ctx).Where("name = ?", key).Take(&kv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get %q: %w", key, err)
	}
	return kv.Value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	kv := KeyValue{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&kv).Error
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
