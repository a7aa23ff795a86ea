package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// ErrNotFound - ключа нет в хранилище
var ErrNotFound = errors.New("key not found")

// Store - плоское key/value хранилище (аналог PlayerPrefs).
// Ядро симуляции о нём не знает, им пользуется только хост.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// GetInt читает целое. Отсутствующий ключ даёт значение по умолчанию.
func GetInt(ctx context.Context, s Store, key string, def int) (int, error) {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return def, nil
	}
	if err != nil {
		return def, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def, fmt.Errorf("key %q: %w", key, err)
	}
	return v, nil
}

// SetInt сохраняет целое
func SetInt(ctx context.Context, s Store, key string, v int) error {
	return s.Set(ctx, key, strconv.Itoa(v))
}
